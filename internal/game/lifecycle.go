// internal/game/lifecycle.go
//
// Three-state lifecycle of a game:
//
//	AcceptingInput --BeginSubmission--> AwaitingVerdict
//	AwaitingVerdict --Abort-----------> AcceptingInput   (transport failure)
//	AwaitingVerdict --Resolve---------> AcceptingInput   (wrong, attempts remain)
//	AwaitingVerdict --Resolve---------> Finished         (all correct or none left)
//
// Finished is terminal.

package game

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a transition is not allowed from the
// current state. The state is left unchanged.
var ErrIllegalTransition = errors.New("game: illegal state transition")

// Outcome is the result of resolving a verdict.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	}
	return "continue"
}

// Lifecycle owns the game state. The zero value is in AcceptingInput.
type Lifecycle struct {
	state   State
	outcome Outcome
}

func (l *Lifecycle) State() State { return l.state }

// Outcome reports how a finished game ended; OutcomeContinue otherwise.
func (l *Lifecycle) Outcome() Outcome { return l.outcome }

// BeginSubmission moves AcceptingInput to AwaitingVerdict.
func (l *Lifecycle) BeginSubmission() error {
	return l.move(AcceptingInput, AwaitingVerdict)
}

// Abort returns a pending submission to AcceptingInput without consuming an
// attempt.
func (l *Lifecycle) Abort() error {
	return l.move(AwaitingVerdict, AcceptingInput)
}

// Resolve applies a verdict to a pending submission.
func (l *Lifecycle) Resolve(allCorrect bool, attemptsLeft int) (Outcome, error) {
	var (
		next State
		out  Outcome
	)
	switch {
	case allCorrect:
		next, out = Finished, OutcomeWon
	case attemptsLeft <= 0:
		next, out = Finished, OutcomeLost
	default:
		next, out = AcceptingInput, OutcomeContinue
	}
	if err := l.move(AwaitingVerdict, next); err != nil {
		return OutcomeContinue, err
	}
	l.outcome = out
	return out, nil
}

func (l *Lifecycle) move(from, to State) error {
	if l.state != from {
		return fmt.Errorf("%w: %s -> %s (want %s)", ErrIllegalTransition, l.state, to, from)
	}
	l.state = to
	return nil
}
