package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	binaryAlive = " 1 "
	binaryDead  = " 0 "

	ansiClear = "\033[H\033[2J"
)

// Style selects how a TerminalRenderer draws cells
type Style string

const (
	// StyleBlocks draws one text row per board row using block glyphs
	StyleBlocks Style = "blocks"
	// StyleBinary draws one text line per column with 1 for live and 0 for dead cells
	StyleBinary Style = "binary"
)

// Valid reports whether s names a known style
func (s Style) Valid() bool {
	return s == StyleBlocks || s == StyleBinary
}

// Renderer displays a board between generations. Implementations only read the board.
type Renderer interface {
	Render(b *Board) error
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out   io.Writer
	Style Style
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer(style Style) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Style: style}
}

// Render draws the board's live cells
func (r *TerminalRenderer) Render(b *Board) error {
	live := make(map[Coord]struct{}, b.Population())
	for _, c := range b.LiveCells() {
		live[c] = struct{}{}
	}
	isLive := func(x, y int) bool {
		_, ok := live[Coord{X: x, Y: y}]
		return ok
	}

	w := bufio.NewWriter(r.Out)
	switch r.Style {
	case StyleBinary:
		for x := range b.Columns() {
			for y := range b.Rows() {
				if isLive(x, y) {
					w.WriteString(binaryAlive)
				} else {
					w.WriteString(binaryDead)
				}
			}
			w.WriteByte('\n')
		}
	default:
		for y := range b.Rows() {
			for x := range b.Columns() {
				if isLive(x, y) {
					w.WriteString(gridPosBlock)
				} else {
					w.WriteString(gridPosEmpty)
				}
			}
			w.WriteByte('\n')
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[Render] failed to flush output")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, ansiClear); err != nil {
		return errors.Wrap(err, "[Clear] failed to write clear sequence")
	}
	return nil
}
