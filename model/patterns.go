package model

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for a pattern name that is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

const (
	PatternBlock    = "block"
	PatternBlinker  = "blinker"
	PatternGlider   = "glider"
	PatternDiagonal = "diagonal"
	PatternRandom   = "random"
)

var patterns = map[string][]Coord{
	PatternBlock:   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PatternBlinker: {{0, 0}, {1, 0}, {2, 0}},
	PatternGlider:  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
}

// PatternNames lists every name accepted by SeedPattern, sorted
func PatternNames() []string {
	names := []string{PatternDiagonal, PatternRandom}
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern returns a copy of the named fixed pattern, anchored at the origin
func Pattern(name string) ([]Coord, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q", name)
	}
	return append([]Coord(nil), cells...), nil
}

// Place translates a pattern by at, failing if any cell leaves a columns x rows board
func Place(pattern []Coord, at Coord, columns, rows int) ([]Coord, error) {
	placed := make([]Coord, len(pattern))
	for i, c := range pattern {
		p := Coord{X: c.X + at.X, Y: c.Y + at.Y}
		if p.X < 0 || p.X >= columns || p.Y < 0 || p.Y >= rows {
			return nil, errors.Wrapf(ErrOutOfBounds, "[Place] %v on %dx%d board", p, columns, rows)
		}
		placed[i] = p
	}
	return placed, nil
}

// Diagonal returns a line of cells running down-right through the middle of the board,
// spanning roughly the central quarter of the shorter side
func Diagonal(columns, rows int) []Coord {
	side := min(columns, rows)
	length := max(1, side/4)
	start := (side - length) / 2

	cells := make([]Coord, 0, length)
	for i := start; i < start+length; i++ {
		cells = append(cells, Coord{X: i, Y: i})
	}
	return cells
}

// RandomCells picks each cell alive with probability density
func RandomCells(columns, rows int, density float64, rng *rand.Rand) []Coord {
	var cells []Coord
	for y := range rows {
		for x := range columns {
			if rng.Float64() < density {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}

// SeedPattern seeds b with the named pattern. Fixed patterns are centred on the board.
func SeedPattern(b *Board, name string, density float64, rng *rand.Rand) error {
	var cells []Coord
	switch name {
	case PatternDiagonal:
		cells = Diagonal(b.Columns(), b.Rows())
	case PatternRandom:
		cells = RandomCells(b.Columns(), b.Rows(), density, rng)
	default:
		pattern, err := Pattern(name)
		if err != nil {
			return err
		}
		if cells, err = Place(pattern, Coord{X: b.Columns()/2 - 1, Y: b.Rows()/2 - 1}, b.Columns(), b.Rows()); err != nil {
			return errors.Wrapf(err, "[SeedPattern] %q does not fit", name)
		}
	}
	return b.Seed(cells...)
}
