package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "", "JSON or YAML config file (empty = use defaults)")
	columns := flag.Int("columns", 0, "Board width, overrides config")
	rows := flag.Int("rows", 0, "Board height, overrides config")
	generations := flag.Int("generations", -1, "Generations to run (0 = forever), overrides config")
	pattern := flag.String("pattern", "", fmt.Sprintf("Initial pattern %v, overrides config", model.PatternNames()))
	style := flag.String("style", "", "Render style (blocks, binary), overrides config")
	telemetry := flag.String("telemetry", "", "CSV path for per-generation telemetry, overrides config")
	quiet := flag.Bool("quiet", false, "Only log warnings and errors")
	flag.Parse()

	config := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %+v\n", err)
			os.Exit(1)
		}
		config = loaded
	}
	applyFlags(&config, *columns, *rows, *generations, *pattern, *style, *telemetry, *quiet)

	level := slog.LevelInfo
	if config.Quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	g, err := initializeGame(config, logger)
	if err != nil {
		logger.Error("initializing game", "err", err)
		os.Exit(1)
	}
	defer g.close()

	if err = run(g); err != nil {
		logger.Error("simulation stopped", "err", err)
	}
}

func applyFlags(config *utils.Config, columns, rows, generations int, pattern, style, telemetry string, quiet bool) {
	if columns > 0 {
		config.Columns = columns
	}
	if rows > 0 {
		config.Rows = rows
	}
	if generations >= 0 {
		config.MaxGenerations = generations
	}
	if pattern != "" {
		config.Pattern = pattern
	}
	if style != "" {
		config.RenderStyle = model.Style(style)
	}
	if telemetry != "" {
		config.TelemetryPath = telemetry
	}
	if quiet {
		config.Quiet = true
	}
}

// run drives the board until max generations, a signal, or an error
func run(g *game) error {
	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case sig := <-sigChan:
			g.logger.Info("shutting down", "signal", sig.String(), "gen", generation)
			return nil
		default:
		}

		frameStart := time.Now()
		if !g.config.Quiet {
			if err := g.renderer.Clear(); err != nil {
				return err
			}
			if err := g.renderer.Render(g.board); err != nil {
				return err
			}
		}

		living, isStagnant, err := g.updateGameState(generation, frameStart.Sub(lastFrameTime))
		if err != nil {
			return err
		}
		lastFrameTime = frameStart
		g.displayGameStatus(generation, living, isStagnant)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			g.logger.Info("reached maximum generations", "limit", g.config.MaxGenerations)
			return nil
		}

		if shouldRestart, reason := g.checkRestartConditions(living); shouldRestart {
			if !g.config.AutoRestart {
				g.logger.Info("simulation ended", "reason", reason, "gen", generation)
				return nil
			}
			if err = g.restartGame(generation, reason); err != nil {
				return err
			}
		}

		g.board.Step()
		generation++

		// Wait before next frame
		time.Sleep(time.Duration(g.config.FrameRate))
	}
}
