package game

import (
	"context"
	"fmt"
	"time"
)

// Effect is the transient penalty feedback shown after a wrong guess.
//
// Show and Hide run on the event loop. Wait runs off the loop and returns when
// the effect has finished or ctx is done.
type Effect interface {
	Show(attemptsLeft int)
	Wait(ctx context.Context) error
	Hide()
}

// PenaltySurface is implemented by surfaces that can overlay penalty text.
type PenaltySurface interface {
	ShowPenalty(text string)
	HidePenalty()
}

// PenaltyText is the overlay text for a penalty with attemptsLeft remaining.
func PenaltyText(attemptsLeft int) string {
	if attemptsLeft <= 0 {
		return "YOU LOST"
	}
	return fmt.Sprintf("%d ATTEMPTS REMAIN", attemptsLeft)
}

// TimedPenalty overlays PenaltyText for a fixed duration.
type TimedPenalty struct {
	Surface  PenaltySurface
	Duration time.Duration
}

func (p *TimedPenalty) Show(attemptsLeft int) { p.Surface.ShowPenalty(PenaltyText(attemptsLeft)) }

func (p *TimedPenalty) Wait(ctx context.Context) error {
	t := time.NewTimer(p.Duration)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *TimedPenalty) Hide() { p.Surface.HidePenalty() }
