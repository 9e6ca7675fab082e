package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/robalobadob/cheez/internal/checker"
	"github.com/robalobadob/cheez/internal/game"
)

// rig drives a Model the way the bubbletea program would, with dispatched
// functions collected on a channel and fed back through Update.
type rig struct {
	m    *Model
	g    *game.Game
	msgs chan func()
}

func newRig(t *testing.T, target string, max int) *rig {
	t.Helper()
	r := &rig{m: New(max, "s-test"), msgs: make(chan func(), 8)}
	lg := zerolog.New(io.Discard)
	local, err := checker.NewLocal(target, max)
	if err != nil {
		t.Fatal(err)
	}
	g, err := game.New(game.Options{
		Surface:     r.m,
		Checker:     local,
		Dispatch:    func(fn func()) { r.msgs <- fn },
		MaxAttempts: max,
		Logger:      &lg,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Close)
	r.g = g
	r.m.Attach(g)
	r.m.Update(r.m.Init()())
	return r
}

func (r *rig) typeRunes(s string) {
	for _, c := range s {
		r.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c}})
	}
}

func (r *rig) pump(t *testing.T) {
	t.Helper()
	select {
	case fn := <-r.msgs:
		r.m.Update(dispatchMsg(fn))
	case <-time.After(2 * time.Second):
		t.Fatal("no dispatched message")
	}
}

func TestModel_StartShowsAttempts(t *testing.T) {
	r := newRig(t, "CHEEZ", 5)
	if r.m.status != "You have 5 attempts left" {
		t.Fatalf("status = %q", r.m.status)
	}
	for i, on := range r.m.enabled {
		if !on {
			t.Fatalf("slot %d disabled after start", i)
		}
	}
	if !strings.Contains(r.m.View(), "session s-test") {
		t.Fatal("view missing session footer")
	}
}

func TestModel_WrongGuessWritesRow(t *testing.T) {
	r := newRig(t, "CHEEZ", 5)
	r.typeRunes("crane")
	if r.g.State() != game.AwaitingVerdict {
		t.Fatalf("state = %v", r.g.State())
	}
	r.pump(t)

	row := r.m.grid[0]
	if row[0].text != "C" || row[0].style != game.CellCorrect {
		t.Fatalf("cell 0 = %+v", row[0])
	}
	for c := 1; c < game.WordLen; c++ {
		if row[c].style != game.CellWrong {
			t.Fatalf("cell %d = %+v", c, row[c])
		}
	}
	if r.m.status != "You have 4 attempts left" {
		t.Fatalf("status = %q", r.m.status)
	}
	if r.m.slots != [game.WordLen]string{} {
		t.Fatalf("slots not cleared: %v", r.m.slots)
	}
	if r.m.focus != 0 || !r.m.enabled[0] {
		t.Fatalf("input not resumed: focus = %d enabled = %v", r.m.focus, r.m.enabled)
	}
}

func TestModel_Win(t *testing.T) {
	r := newRig(t, "CHEEZ", 5)
	r.typeRunes("CHEEZ")
	r.pump(t)
	if r.m.status != game.MsgWon {
		t.Fatalf("status = %q", r.m.status)
	}
	if r.m.enabled[0] {
		t.Fatal("input enabled after win")
	}
	for _, c := range r.m.grid[0] {
		if c.style != game.CellCorrect || c.text == "" {
			t.Fatalf("first row = %+v", r.m.grid[0])
		}
	}
}

func TestModel_BackspaceAndArrows(t *testing.T) {
	r := newRig(t, "CHEEZ", 5)
	r.typeRunes("ab")
	if r.m.focus != 2 {
		t.Fatalf("focus = %d", r.m.focus)
	}
	r.m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if r.m.focus != 1 || r.m.slots[2] != "" || r.m.slots[1] != "B" {
		t.Fatalf("after backspace focus = %d slots = %v", r.m.focus, r.m.slots)
	}
	r.m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.m.focus != 0 {
		t.Fatalf("left: focus = %d", r.m.focus)
	}
	r.m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.m.focus != 0 {
		t.Fatalf("left past the edge: focus = %d", r.m.focus)
	}
	r.m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if r.m.focus != 1 {
		t.Fatalf("right: focus = %d", r.m.focus)
	}
	r.m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if r.m.slots != [game.WordLen]string{"A", "B"} {
		t.Fatalf("tab changed slots: %v", r.m.slots)
	}
}

func TestModel_EscQuits(t *testing.T) {
	r := newRig(t, "CHEEZ", 5)
	_, cmd := r.m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc did not quit")
	}
}

func TestModel_Penalty(t *testing.T) {
	m := New(5, "s")
	m.ShowPenalty("4 ATTEMPTS REMAIN")
	if !strings.Contains(m.View(), "4 ATTEMPTS REMAIN") {
		t.Fatal("penalty not rendered")
	}
	m.HidePenalty()
	if strings.Contains(m.View(), "ATTEMPTS REMAIN") {
		t.Fatal("penalty still rendered")
	}
}

func TestModel_WriteGridCellOutOfRange(t *testing.T) {
	m := New(2, "s")
	m.WriteGridCell(2, 0, "X", game.CellCorrect)
	m.WriteGridCell(0, game.WordLen, "X", game.CellCorrect)
	for _, row := range m.grid {
		for _, c := range row {
			if c.text != "" {
				t.Fatalf("out-of-range write landed: %+v", m.grid)
			}
		}
	}
}
