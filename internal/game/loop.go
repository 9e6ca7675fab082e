package game

import (
	"context"
)

// Loop runs posted functions one at a time, in order, on the goroutine that
// calls Run. It stands in for a UI thread on surfaces that lack one.
type Loop struct {
	fns chan func()
}

// NewLoop returns a loop whose queue holds up to backlog pending functions
// before Post blocks.
func NewLoop(backlog int) *Loop {
	if backlog < 1 {
		backlog = 1
	}
	return &Loop{fns: make(chan func(), backlog)}
}

// Post queues fn. It is safe for concurrent use.
func (l *Loop) Post(fn func()) { l.fns <- fn }

// Dispatch returns Post as a Dispatch hook.
func (l *Loop) Dispatch() Dispatch { return l.Post }

// Run executes queued functions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-l.fns:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
