package game

import (
	"context"
)

// Surface is everything the core needs from a UI. All methods are called on
// the event loop.
type Surface interface {
	SetSlotText(i int, text string)
	SetSlotEnabled(i int, enabled bool)
	FocusSlot(i int)
	WriteGridCell(row, col int, text string, style Cell)
	SetStatusText(text string)
}

// Checker checks a complete guess. Implementations are called off the event
// loop and may block.
type Checker interface {
	Check(ctx context.Context, guess string) (Verdict, error)
}

// Dispatch schedules fn on the event loop that owns the Surface.
type Dispatch func(fn func())
