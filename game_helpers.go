package main

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles everything the driving loop owns
type game struct {
	config   utils.Config
	board    *model.Board
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
	recorder *utils.Recorder
	rng      *rand.Rand
	logger   *slog.Logger

	stagnantCount  int
	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, logger *slog.Logger) (*game, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		renderer: model.NewTerminalRenderer(config.RenderStyle),
		history:  model.NewHistory(0),
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
	}

	board, err := newSeededBoard(config, g.rng)
	if err != nil {
		return nil, err
	}
	g.board = board

	if g.recorder, err = utils.CreateRecorder(config.TelemetryPath); err != nil {
		return nil, err
	}

	logger.Info("game initialized",
		"columns", board.Columns(),
		"rows", board.Rows(),
		"pattern", config.Pattern,
		"seed", seed,
		"living", board.Population(),
	)
	return g, nil
}

// newSeededBoard builds a board and seeds it with the configured pattern
func newSeededBoard(config utils.Config, rng *rand.Rand) (*model.Board, error) {
	board, err := model.NewBoard(config.Columns, config.Rows)
	if err != nil {
		return nil, err
	}
	if err = model.SeedPattern(board, config.Pattern, config.RandomDensity, rng); err != nil {
		return nil, errors.Wrapf(err, "[newSeededBoard] failed to seed %q", config.Pattern)
	}
	return board, nil
}

// updateGameState records the current generation and reports whether it is stagnant
func (g *game) updateGameState(generation int, frameDuration time.Duration) (int, bool, error) {
	living := g.board.Population()
	g.stats.Update(generation, living, frameDuration)

	if generation > 0 {
		last := g.board.LastTransition()
		g.stats.AddTransition(last.Births, last.Deaths)
	}
	rec := utils.GenerationRecord{
		Generation: g.board.Generation(),
		Population: living,
		Births:     g.board.LastTransition().Births,
		Deaths:     g.board.LastTransition().Deaths,
	}
	if err := g.recorder.Write(rec); err != nil {
		return living, false, err
	}

	fingerprint := g.board.Fingerprint()
	isStagnant := g.history.IsStagnant(fingerprint)
	g.history.Record(fingerprint)

	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	return living, isStagnant, nil
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(generation, living int, isStagnant bool) {
	status := "active"
	switch {
	case living == 0:
		status = "extinct"
	case isStagnant:
		status = "stagnant"
	}

	density := float64(living) / float64(g.board.Columns()*g.board.Rows()) * 100
	g.logger.Debug("generation",
		"gen", generation,
		"living", living,
		"density_pct", density,
		"status", status,
		"since_restart", generation-g.lastRestartGen,
	)
}

// checkRestartConditions determines if the game should restart
func (g *game) checkRestartConditions(living int) (bool, string) {
	if living == 0 {
		return true, "extinction"
	}
	if g.config.StagnationThreshold > 0 && g.stagnantCount >= g.config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame replaces the board with a freshly seeded one
func (g *game) restartGame(generation int, reason string) error {
	board, err := newSeededBoard(g.config, g.rng)
	if err != nil {
		return err
	}
	g.board = board
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = generation

	g.logger.Info("restarted", "reason", reason, "gen", generation, "living", board.Population())
	return nil
}

// close flushes telemetry and logs the final stats
func (g *game) close() {
	if err := g.recorder.Close(); err != nil {
		g.logger.Error("closing telemetry", "err", err)
	}
	g.logger.Info("final stats", "stats", g.stats)
}
