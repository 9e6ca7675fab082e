// internal/game/merger.go
//
// Merger makes WordLen single-character slots behave as one text field.
//
// Key handling per slot i:
//   - letter:    store it uppercased, focus i+1; on the last slot, submit.
//   - Backspace: clear slot i and focus i-1; no-op on slot 0.
//   - other:     ignored.
//
// The merger is the only writer of slot text; adapters must suppress the
// surface's own text insertion for every key reported as handled.

package game

import (
	"strings"

	"github.com/robalobadob/cheez/internal/words"
)

// KeyResult says what a key event did.
type KeyResult int

const (
	KeyRejected  KeyResult = iota // slot disabled; nothing happened
	KeyIgnored                    // not a letter or Backspace, or Backspace on slot 0
	KeyStored                     // letter stored, focus advanced
	KeyCleared                    // slot cleared, focus moved back
	KeySubmitted                  // letter stored in the last slot, submission triggered
)

// Handled reports whether the adapter should suppress default key handling.
// Every event that reached an enabled slot counts as handled.
func (r KeyResult) Handled() bool { return r != KeyRejected }

// Slot is one letter position.
type Slot struct {
	Index   int
	Char    byte // uppercase letter or 0
	Enabled bool
}

// Merger owns the letter slots.
type Merger struct {
	surface  Surface
	slots    [WordLen]Slot
	focus    int
	onSubmit func()
}

// NewMerger returns a merger with all slots empty and disabled. onSubmit runs
// when a letter lands in the last slot.
func NewMerger(s Surface, onSubmit func()) *Merger {
	m := &Merger{surface: s, onSubmit: onSubmit}
	for i := range m.slots {
		m.slots[i].Index = i
	}
	return m
}

// HandleKey applies one key event targeted at slot i.
func (m *Merger) HandleKey(i int, k Key) KeyResult {
	if i < 0 || i >= WordLen || !m.slots[i].Enabled {
		return KeyRejected
	}
	if k.Code == CodeBackspace {
		if i == 0 {
			return KeyIgnored
		}
		m.set(i, 0)
		m.Focus(i - 1)
		return KeyCleared
	}
	if len(k.Text) != 1 || !words.IsLetter(k.Text[0]) {
		return KeyIgnored
	}
	m.set(i, strings.ToUpper(k.Text)[0])
	if i < WordLen-1 {
		m.Focus(i + 1)
		return KeyStored
	}
	if m.onSubmit != nil {
		m.onSubmit()
	}
	return KeySubmitted
}

// Word concatenates the slot contents. Empty slots are skipped, so an
// incomplete word is shorter than WordLen.
func (m *Merger) Word() string {
	var b strings.Builder
	for _, s := range m.slots {
		if s.Char != 0 {
			b.WriteByte(s.Char)
		}
	}
	return b.String()
}

// Clear empties every slot.
func (m *Merger) Clear() {
	for i := range m.slots {
		m.set(i, 0)
	}
}

// Enable enables every slot and focuses the first one.
func (m *Merger) Enable() {
	m.setEnabled(true)
	m.Focus(0)
}

// Disable disables every slot; key events are rejected until Enable.
func (m *Merger) Disable() { m.setEnabled(false) }

// Enabled reports whether the first slot accepts input. Slots are always
// enabled and disabled together.
func (m *Merger) Enabled() bool { return m.slots[0].Enabled }

// Focus moves focus to slot i.
func (m *Merger) Focus(i int) {
	if i < 0 || i >= WordLen {
		return
	}
	m.focus = i
	m.surface.FocusSlot(i)
}

// Focused returns the index of the focused slot.
func (m *Merger) Focused() int { return m.focus }

// Slots returns a copy of the slot state.
func (m *Merger) Slots() [WordLen]Slot { return m.slots }

func (m *Merger) set(i int, c byte) {
	m.slots[i].Char = c
	text := ""
	if c != 0 {
		text = string(c)
	}
	m.surface.SetSlotText(i, text)
}

func (m *Merger) setEnabled(on bool) {
	for i := range m.slots {
		m.slots[i].Enabled = on
		m.surface.SetSlotEnabled(i, on)
	}
}
