// internal/verdict/verdict.go
//
// Server-side verdicts for the remote checker.
// Responsibilities:
//   - Validate the guessed word (length, A–Z).
//   - Compare it with the configured target column by column.
//   - Record the attempt in the ledger and report the attempts left.
//
// Sessions are keyed by the opaque ID the client sends; an unknown ID simply
// has no attempts recorded yet.

package verdict

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cheez/internal/store"
	"github.com/robalobadob/cheez/internal/words"
)

var (
	ErrInvalidWord    = errors.New("verdict: invalid word")
	ErrInvalidSession = errors.New("verdict: missing session id")
	ErrGameOver       = errors.New("verdict: game over")
)

// Result is the verdict for one guess.
type Result struct {
	AttemptsLeft   int
	LettersCorrect [words.Length]bool
	Won            bool
}

// Service checks guesses against one target word.
type Service struct {
	store       store.Store
	target      string
	maxAttempts int
}

// New returns a service. target must be a valid word.
func New(st store.Store, target string, maxAttempts int) (*Service, error) {
	w, err := words.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("verdict: target: %w", err)
	}
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("verdict: max attempts %d must be positive", maxAttempts)
	}
	return &Service{store: st, target: w, maxAttempts: maxAttempts}, nil
}

// MaxAttempts returns the per-session attempt limit.
func (s *Service) MaxAttempts() int { return s.maxAttempts }

// Check scores word for session id and consumes one attempt.
func (s *Service) Check(ctx context.Context, id, word string) (Result, error) {
	if id == "" {
		return Result{}, ErrInvalidSession
	}
	w, err := words.Parse(word)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}

	correct := words.Check(s.target, w)
	won := words.AllCorrect(correct)
	sess, err := s.store.Append(ctx, id, store.Attempt{Word: w, Won: won}, s.maxAttempts)
	if errors.Is(err, store.ErrSessionOver) {
		return Result{}, fmt.Errorf("%w: session %s", ErrGameOver, id)
	}
	if err != nil {
		return Result{}, fmt.Errorf("verdict: record attempt: %w", err)
	}

	res := Result{
		AttemptsLeft:   s.maxAttempts - sess.Used,
		LettersCorrect: correct,
		Won:            won,
	}
	log.Debug().Str("session", id).Int("attempt", sess.Used).Bool("won", won).Msg("guess checked")
	return res, nil
}

// Status is the progress of one session.
type Status struct {
	AttemptsLeft int
	Won          bool
	Finished     bool
}

// Status reports a session's progress. Unknown sessions have every attempt left.
func (s *Service) Status(ctx context.Context, id string) (Status, error) {
	if id == "" {
		return Status{}, ErrInvalidSession
	}
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Status{AttemptsLeft: s.maxAttempts}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("verdict: load session: %w", err)
	}
	left := s.maxAttempts - sess.Used
	if left < 0 {
		left = 0
	}
	return Status{AttemptsLeft: left, Won: sess.Won, Finished: sess.Won || left == 0}, nil
}
