// Package checker provides the two game.Checker implementations: a local
// comparison against a known target and a remote verdict service client.
package checker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/cheez/internal/game"
	"github.com/robalobadob/cheez/internal/words"
)

// ErrExhausted is returned by Local once every attempt has been used.
var ErrExhausted = errors.New("checker: no attempts left")

// Local checks guesses against a target held in memory.
type Local struct {
	mu           sync.Mutex
	target       string
	attemptsLeft int
}

var _ game.Checker = (*Local)(nil)

// NewLocal returns a checker for target with maxAttempts attempts.
func NewLocal(target string, maxAttempts int) (*Local, error) {
	w, err := words.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("checker: target: %w", err)
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("checker: max attempts %d must be positive", maxAttempts)
	}
	return &Local{target: w, attemptsLeft: maxAttempts}, nil
}

// Check consumes one attempt and compares guess column by column.
func (l *Local) Check(ctx context.Context, guess string) (game.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return game.Verdict{}, err
	}
	w, err := words.Parse(guess)
	if err != nil {
		return game.Verdict{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.attemptsLeft <= 0 {
		return game.Verdict{}, ErrExhausted
	}
	l.attemptsLeft--
	return game.Verdict{
		AttemptsLeft:   l.attemptsLeft,
		LettersCorrect: words.Check(l.target, w),
	}, nil
}

// AttemptsLeft reports the remaining attempts.
func (l *Local) AttemptsLeft() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.attemptsLeft
}
