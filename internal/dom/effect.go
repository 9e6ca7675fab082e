//go:build js && wasm

package dom

import (
	"context"
	"sync"
	"syscall/js"
	"time"

	"github.com/robalobadob/cheez/internal/game"
)

// Effect plays the page's pandora-box-open CSS animation as the penalty.
// Wait returns on the container's animationend event, or after Fallback if
// the event never fires (stylesheet missing, animations disabled).
type Effect struct {
	Surface  *Surface
	Fallback time.Duration

	mu   sync.Mutex
	done chan struct{}
	fn   js.Func
}

var _ game.Effect = (*Effect)(nil)

// NewEffect attaches an animationend listener to the surface's container.
// Call Release when the page is torn down.
func NewEffect(s *Surface) *Effect {
	e := &Effect{Surface: s, Fallback: 3 * time.Second}
	e.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		e.mu.Lock()
		if e.done != nil {
			close(e.done)
			e.done = nil
		}
		e.mu.Unlock()
		return nil
	})
	s.container.Call("addEventListener", "animationend", e.fn)
	return e
}

func (e *Effect) Show(attemptsLeft int) {
	e.mu.Lock()
	e.done = make(chan struct{})
	e.mu.Unlock()
	e.Surface.ShowPenalty(game.PenaltyText(attemptsLeft))
}

func (e *Effect) Wait(ctx context.Context) error {
	e.mu.Lock()
	done := e.done
	e.mu.Unlock()
	if done == nil {
		return nil
	}
	t := time.NewTimer(e.Fallback)
	defer t.Stop()
	select {
	case <-done:
	case <-t.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (e *Effect) Hide() {
	e.mu.Lock()
	e.done = nil
	e.mu.Unlock()
	e.Surface.HidePenalty()
}

// Release removes the animationend listener.
func (e *Effect) Release() {
	e.Surface.container.Call("removeEventListener", "animationend", e.fn)
	e.fn.Release()
}
