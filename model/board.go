package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

var (
	// ErrInvalidDimensions is returned when a board is built with a non-positive size
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	// ErrOutOfBounds is returned when a coordinate lies outside the board
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// minCellsPerWorker keeps small boards on a single goroutine
const minCellsPerWorker = 256

// Coord identifies a single cell on the board
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// mooreOffsets are the eight neighbor positions around a cell
var mooreOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Transition summarises the most recent generation change
type Transition struct {
	Births int
	Deaths int
}

// Board holds the live cells of a toroidal grid and advances them one generation at a time.
// Neighbors are counted with wraparound: the left edge touches the right edge and the top edge
// touches the bottom edge.
type Board struct {
	columns    int
	rows       int
	generation int
	live       map[Coord]struct{}
	last       Transition
	sets       *cellSetPool
}

// NewBoard creates an empty board with the given dimensions
func NewBoard(columns, rows int) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] columns=%d rows=%d", columns, rows)
	}
	sets := newCellSetPool()
	return &Board{
		columns: columns,
		rows:    rows,
		live:    sets.Get(),
		sets:    sets,
	}, nil
}

// Columns returns the width of the board
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the height of the board
func (b *Board) Rows() int {
	return b.rows
}

// Generation returns the number of completed steps
func (b *Board) Generation() int {
	return b.generation
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.live)
}

// LastTransition returns the births and deaths of the latest Step
func (b *Board) LastTransition() Transition {
	return b.last
}

// InBounds reports whether c lies on the board
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.columns && c.Y >= 0 && c.Y < b.rows
}

// Seed marks the given cells alive. Either every cell is inserted or none is.
func (b *Board) Seed(cells ...Coord) error {
	for _, c := range cells {
		if !b.InBounds(c) {
			return errors.Wrapf(ErrOutOfBounds, "[Seed] %v on %dx%d board", c, b.columns, b.rows)
		}
	}
	for _, c := range cells {
		b.live[c] = struct{}{}
	}
	return nil
}

// IsAlive reports whether c is a live cell
func (b *Board) IsAlive(c Coord) bool {
	_, ok := b.live[c]
	return ok
}

// NeighborCount counts the live cells in the Moore neighborhood of c, wrapping at the edges
func (b *Board) NeighborCount(c Coord) int {
	return b.neighborCount(b.live, c)
}

func (b *Board) neighborCount(snapshot map[Coord]struct{}, c Coord) (count int) {
	for _, off := range mooreOffsets {
		if _, ok := snapshot[b.wrap(c.X+off.X, c.Y+off.Y)]; ok {
			count++
		}
	}
	return
}

func (b *Board) wrap(x, y int) Coord {
	return Coord{X: ((x % b.columns) + b.columns) % b.columns, Y: ((y % b.rows) + b.rows) % b.rows}
}

// candidates returns every cell that could be alive next generation: the live cells and their neighbors
func (b *Board) candidates() []Coord {
	seen := make(map[Coord]struct{}, len(b.live)*9)
	out := make([]Coord, 0, len(b.live)*9)
	for c := range b.live {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
		for _, off := range mooreOffsets {
			n := b.wrap(c.X+off.X, c.Y+off.Y)
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				out = append(out, n)
			}
		}
	}
	return out
}

// Step computes the next generation from the current one and installs it.
// Every decision reads the same snapshot; the new set replaces the old one only once all
// candidates have been evaluated.
func (b *Board) Step() {
	var (
		snapshot   = b.live
		candidates = b.candidates()
		numWorkers = max(1, min(runtime.NumCPU(), len(candidates)/minCellsPerWorker))
		perWorker  = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		results    = make([][]Coord, numWorkers)
		eg         errgroup.Group
	)

	for i := range numWorkers {
		var (
			start = i * perWorker
			end   = min(start+perWorker, len(candidates))
		)
		if start >= end {
			break
		}

		eg.Go(func() error {
			var alive []Coord
			for _, c := range candidates[start:end] {
				_, wasAlive := snapshot[c]
				if rules.ApplyConwayRules(b.neighborCount(snapshot, c), wasAlive) {
					alive = append(alive, c)
				}
			}
			results[i] = alive
			return nil
		})
	}
	// workers never return an error
	_ = eg.Wait()

	var (
		next      = b.sets.Get()
		survivors int
	)
	for _, part := range results {
		for _, c := range part {
			if !b.InBounds(c) {
				panic(fmt.Sprintf("model: step produced %v outside %dx%d board", c, b.columns, b.rows))
			}
			if _, ok := snapshot[c]; ok {
				survivors++
			}
			next[c] = struct{}{}
		}
	}

	b.last = Transition{
		Births: len(next) - survivors,
		Deaths: len(snapshot) - survivors,
	}
	b.live = next
	b.generation++
	b.sets.Put(snapshot)
}

// LiveCells returns a copy of the live cells in no particular order
func (b *Board) LiveCells() []Coord {
	cells := make([]Coord, 0, len(b.live))
	for c := range b.live {
		cells = append(cells, c)
	}
	return cells
}

// Fingerprint returns an MD5 digest of the live set, independent of iteration order
func (b *Board) Fingerprint() string {
	cells := b.LiveCells()
	slices.SortFunc(cells, func(a, c Coord) int {
		if a.Y != c.Y {
			return a.Y - c.Y
		}
		return a.X - c.X
	})

	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
