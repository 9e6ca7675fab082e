package game

import (
	"errors"
	"fmt"
)

var (
	ErrRowOutOfRange = errors.New("game: grid row out of range")
	ErrRowWritten    = errors.New("game: grid row already written")
)

// Grid is the append-only result grid. Each row is written at most once.
type Grid struct {
	surface Surface
	written []bool
}

// NewGrid returns an empty grid with the given row capacity.
func NewGrid(s Surface, rows int) *Grid {
	return &Grid{surface: s, written: make([]bool, rows)}
}

// Rows returns the grid capacity.
func (g *Grid) Rows() int { return len(g.written) }

// RowFor maps the attempts left after a guess to the row that guess occupies.
// The result may be out of range for stale verdicts; WriteRow rejects those.
func (g *Grid) RowFor(attemptsLeft int) int {
	return len(g.written) - attemptsLeft - 1
}

// Written reports whether row has been written.
func (g *Grid) Written(row int) bool {
	return row >= 0 && row < len(g.written) && g.written[row]
}

// Filled counts written rows.
func (g *Grid) Filled() int {
	n := 0
	for _, w := range g.written {
		if w {
			n++
		}
	}
	return n
}

// WriteRow writes guess into row, styling each column by correct.
func (g *Grid) WriteRow(row int, guess string, correct [WordLen]bool) error {
	if row < 0 || row >= len(g.written) {
		return fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, len(g.written))
	}
	if g.written[row] {
		return fmt.Errorf("%w: row %d", ErrRowWritten, row)
	}
	if len(guess) != WordLen {
		return fmt.Errorf("game: guess %q is not %d letters", guess, WordLen)
	}
	for col := 0; col < WordLen; col++ {
		style := CellWrong
		if correct[col] {
			style = CellCorrect
		}
		g.surface.WriteGridCell(row, col, guess[col:col+1], style)
	}
	g.written[row] = true
	return nil
}
