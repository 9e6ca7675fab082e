// internal/game/types.go
//
// Core type definitions for the guess-input state machine.
// Defines:
//   - State: lifecycle state of the single game instance.
//   - Verdict: the checker's answer for one guess.
//   - Cell: style of one result grid cell.
//   - Key: a keystroke delivered to a letter slot.

package game

import (
	"github.com/robalobadob/cheez/internal/words"
)

// WordLen is the number of letter slots and grid columns.
const WordLen = words.Length

// DefaultMaxAttempts is the grid capacity used when none is configured.
const DefaultMaxAttempts = 5

// State is the lifecycle state of a game.
type State int

const (
	AcceptingInput  State = iota // slots enabled, waiting for the player
	AwaitingVerdict              // one check in flight, slots disabled
	Finished                     // won or lost; terminal
)

func (s State) String() string {
	switch s {
	case AcceptingInput:
		return "accepting_input"
	case AwaitingVerdict:
		return "awaiting_verdict"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Verdict is the outcome of checking one guess.
type Verdict struct {
	AttemptsLeft   int           // remaining attempts after this guess
	LettersCorrect [WordLen]bool // per-column correctness
}

// AllCorrect reports whether the guess matched in every column.
func (v Verdict) AllCorrect() bool { return words.AllCorrect(v.LettersCorrect) }

// Cell is the style of a grid cell.
type Cell int

const (
	CellEmpty Cell = iota
	CellCorrect
	CellWrong
)

func (c Cell) String() string {
	switch c {
	case CellCorrect:
		return "correct"
	case CellWrong:
		return "wrong"
	}
	return ""
}

// CodeBackspace is the Key.Code of the delete-previous key.
const CodeBackspace = "Backspace"

// Key is one keystroke. Code names physical keys (Backspace); Text carries the
// produced character, if any.
type Key struct {
	Code string
	Text string
}

// Letter builds a Key for a typed character.
func Letter(r rune) Key { return Key{Text: string(r)} }

// Backspace builds the delete-previous Key.
func Backspace() Key { return Key{Code: CodeBackspace} }
