// internal/game/game.go
//
// Game wires the merger, grid and lifecycle to a checker.
//
// Flow:
//   - a letter typed into the last slot triggers submit();
//   - submit() moves to AwaitingVerdict, disables the slots and checks the
//     guess on a separate goroutine;
//   - the result is posted back through Dispatch and applied on the loop.
//
// Every method except Close must be called on the event loop.

package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cheez/internal/words"
)

// Status messages.
const (
	MsgWon        = "You won!"
	MsgLost       = "You lost! No more attempts left!"
	MsgIncomplete = "Enter all five letters"
	MsgRetry      = "Could not check that guess, try again"
)

// Options configures a Game. Surface, Checker and Dispatch are required.
type Options struct {
	Surface     Surface
	Checker     Checker
	Dispatch    Dispatch
	MaxAttempts int             // grid rows; DefaultMaxAttempts when 0
	Effect      Effect          // optional penalty effect
	Logger      *zerolog.Logger // defaults to the global logger
}

// Game is one game instance.
type Game struct {
	surface  Surface
	checker  Checker
	dispatch Dispatch
	effect   Effect
	log      zerolog.Logger

	life   Lifecycle
	merger *Merger
	grid   *Grid

	ctx    context.Context
	cancel context.CancelFunc
}

// New validates opts and builds a game. Call Start before delivering keys.
func New(opts Options) (*Game, error) {
	if opts.Surface == nil || opts.Checker == nil || opts.Dispatch == nil {
		return nil, errors.New("game: surface, checker and dispatch are required")
	}
	rows := opts.MaxAttempts
	if rows == 0 {
		rows = DefaultMaxAttempts
	}
	if rows < 0 {
		return nil, fmt.Errorf("game: max attempts %d must be positive", rows)
	}
	lg := log.Logger
	if opts.Logger != nil {
		lg = *opts.Logger
	}
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		surface:  opts.Surface,
		checker:  opts.Checker,
		dispatch: opts.Dispatch,
		effect:   opts.Effect,
		log:      lg.With().Str("component", "game").Logger(),
		grid:     NewGrid(opts.Surface, rows),
		ctx:      ctx,
		cancel:   cancel,
	}
	g.merger = NewMerger(opts.Surface, g.submit)
	return g, nil
}

// Start enables input and shows the opening status.
func (g *Game) Start() {
	g.merger.Clear()
	g.merger.Enable()
	g.surface.SetStatusText(attemptsLeftText(g.grid.Rows()))
}

// Close cancels any in-flight check or effect. Results arriving afterwards
// are dropped. Safe to call from any goroutine.
func (g *Game) Close() { g.cancel() }

// HandleKey delivers a key event aimed at slot i.
func (g *Game) HandleKey(i int, k Key) KeyResult { return g.merger.HandleKey(i, k) }

// State returns the lifecycle state.
func (g *Game) State() State { return g.life.State() }

// Outcome returns how the game ended, if it has.
func (g *Game) Outcome() Outcome { return g.life.Outcome() }

// Focus moves focus to slot i, as a pointer click would. It does nothing
// while input is disabled or when i is out of range.
func (g *Game) Focus(i int) {
	if !g.merger.Enabled() {
		return
	}
	g.merger.Focus(i)
}

// Focused returns the focused slot index.
func (g *Game) Focused() int { return g.merger.Focused() }

// InputEnabled reports whether the slots accept keys.
func (g *Game) InputEnabled() bool { return g.merger.Enabled() }

// RowsFilled counts written grid rows.
func (g *Game) RowsFilled() int { return g.grid.Filled() }

// MaxAttempts returns the grid capacity.
func (g *Game) MaxAttempts() int { return g.grid.Rows() }

func (g *Game) submit() {
	guess := g.merger.Word()
	g.merger.Clear()

	if g.life.State() == Finished {
		g.merger.Focus(0)
		return
	}
	if !words.Valid(guess) {
		g.merger.Focus(0)
		g.surface.SetStatusText(MsgIncomplete)
		return
	}
	if err := g.life.BeginSubmission(); err != nil {
		g.log.Error().Err(err).Msg("submit")
		return
	}
	g.merger.Disable()

	ctx := g.ctx
	go func() {
		v, err := g.checker.Check(ctx, guess)
		g.dispatch(func() {
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				g.fail(guess, err)
				return
			}
			g.apply(guess, v)
		})
	}()
}

// fail recovers from a transport failure; the guess is discarded.
func (g *Game) fail(guess string, err error) {
	if aerr := g.life.Abort(); aerr != nil {
		g.log.Warn().Err(aerr).Str("guess", guess).Msg("check failed outside of a pending submission")
		return
	}
	g.log.Warn().Err(err).Str("guess", guess).Msg("check failed; guess discarded")
	g.surface.SetStatusText(MsgRetry)
	g.merger.Enable()
}

func (g *Game) apply(guess string, v Verdict) {
	if st := g.life.State(); st != AwaitingVerdict {
		g.log.Warn().Str("state", st.String()).Str("guess", guess).Msg("verdict without pending submission dropped")
		return
	}
	row := g.grid.RowFor(v.AttemptsLeft)
	if err := g.grid.WriteRow(row, guess, v.LettersCorrect); err != nil {
		// Client and server disagree on the attempt count. Input stays
		// disabled rather than pretending the turn was normal.
		g.log.Error().Err(err).
			Str("guess", guess).
			Int("attemptsLeft", v.AttemptsLeft).
			Int("row", row).
			Msg("stale verdict discarded")
		return
	}

	out, err := g.life.Resolve(v.AllCorrect(), v.AttemptsLeft)
	if err != nil {
		g.log.Error().Err(err).Msg("resolve verdict")
		return
	}
	g.log.Debug().Str("guess", guess).Int("row", row).Str("outcome", out.String()).Msg("verdict applied")

	switch out {
	case OutcomeWon:
		g.surface.SetStatusText(MsgWon)
	case OutcomeLost:
		g.surface.SetStatusText(MsgLost)
		g.penalize(0)
	default:
		g.surface.SetStatusText(attemptsLeftText(v.AttemptsLeft))
		g.penalize(v.AttemptsLeft)
	}
}

// penalize plays the effect, then re-enables input unless the game finished
// meanwhile. Without an effect input comes back immediately (when allowed).
func (g *Game) penalize(attemptsLeft int) {
	if g.effect == nil {
		g.resume()
		return
	}
	g.merger.Disable()
	g.effect.Show(attemptsLeft)
	ctx := g.ctx
	go func() {
		werr := g.effect.Wait(ctx)
		g.dispatch(func() {
			if werr != nil || ctx.Err() != nil {
				return
			}
			g.effect.Hide()
			g.resume()
		})
	}()
}

func (g *Game) resume() {
	if g.life.State() == Finished {
		return
	}
	g.merger.Enable()
}

func attemptsLeftText(n int) string {
	if n == 1 {
		return "You have 1 attempt left"
	}
	return fmt.Sprintf("You have %d attempts left", n)
}
