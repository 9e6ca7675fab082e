package game

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeSurface records what the core wrote.
type fakeSurface struct {
	slots   [WordLen]string
	enabled [WordLen]bool
	focus   int
	focuses int
	cells   map[[2]int]cellWrite
	writes  int
	status  string
	penalty string
}

type cellWrite struct {
	Text  string
	Style Cell
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{focus: -1, cells: make(map[[2]int]cellWrite)}
}

func (s *fakeSurface) SetSlotText(i int, text string)     { s.slots[i] = text }
func (s *fakeSurface) SetSlotEnabled(i int, enabled bool) { s.enabled[i] = enabled }
func (s *fakeSurface) FocusSlot(i int)                    { s.focus = i; s.focuses++ }
func (s *fakeSurface) SetStatusText(text string)          { s.status = text }
func (s *fakeSurface) ShowPenalty(text string)            { s.penalty = text }
func (s *fakeSurface) HidePenalty()                       { s.penalty = "" }

func (s *fakeSurface) WriteGridCell(row, col int, text string, style Cell) {
	s.cells[[2]int{row, col}] = cellWrite{Text: text, Style: style}
	s.writes++
}

// row returns the letters and styles written to a grid row.
func (s *fakeSurface) row(r int) (string, [WordLen]Cell) {
	var (
		text   string
		styles [WordLen]Cell
	)
	for c := 0; c < WordLen; c++ {
		w := s.cells[[2]int{r, c}]
		text += w.Text
		styles[c] = w.Style
	}
	return text, styles
}

// rowsWritten counts distinct rows with at least one cell.
func (s *fakeSurface) rowsWritten() int {
	seen := map[int]bool{}
	for k := range s.cells {
		seen[k[0]] = true
	}
	return len(seen)
}

// testLoop is a manually pumped event loop.
type testLoop struct {
	fns chan func()
}

func newTestLoop() *testLoop { return &testLoop{fns: make(chan func(), 16)} }

func (l *testLoop) dispatch(fn func()) { l.fns <- fn }

// step runs the next posted function, failing if none arrives.
func (l *testLoop) step(t *testing.T) {
	t.Helper()
	select {
	case fn := <-l.fns:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a posted function")
	}
}

// idle asserts nothing is posted within a short window.
func (l *testLoop) idle(t *testing.T) {
	t.Helper()
	select {
	case <-l.fns:
		t.Fatal("unexpected posted function")
	case <-time.After(20 * time.Millisecond):
	}
}

type checkResult struct {
	v   Verdict
	err error
}

// scriptChecker answers checks from a script, in order.
type scriptChecker struct {
	mu      sync.Mutex
	script  []checkResult
	guesses []string
}

func (c *scriptChecker) Check(ctx context.Context, guess string) (Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guesses = append(c.guesses, guess)
	if len(c.script) == 0 {
		return Verdict{}, errors.New("script exhausted")
	}
	r := c.script[0]
	c.script = c.script[1:]
	return r.v, r.err
}

// blockingChecker waits for ctx cancellation.
type blockingChecker struct{}

func (blockingChecker) Check(ctx context.Context, guess string) (Verdict, error) {
	<-ctx.Done()
	return Verdict{}, ctx.Err()
}

// gateEffect completes when release is closed.
type gateEffect struct {
	release chan struct{}
	shown   []int
	hidden  int
}

func newGateEffect() *gateEffect { return &gateEffect{release: make(chan struct{})} }

func (e *gateEffect) Show(attemptsLeft int) { e.shown = append(e.shown, attemptsLeft) }
func (e *gateEffect) Hide()                 { e.hidden++ }

func (e *gateEffect) Wait(ctx context.Context) error {
	select {
	case <-e.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func quietLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

func verdict(left int, correct ...bool) Verdict {
	v := Verdict{AttemptsLeft: left}
	copy(v.LettersCorrect[:], correct)
	return v
}

func allTrue() []bool { return []bool{true, true, true, true, true} }

// typeWord delivers each letter of w to the focused slot.
func typeWord(t *testing.T, g *Game, w string) KeyResult {
	t.Helper()
	var last KeyResult
	for _, r := range w {
		last = g.HandleKey(g.Focused(), Letter(r))
	}
	return last
}
