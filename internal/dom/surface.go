//go:build js && wasm

// internal/dom/surface.go
//
// Browser surface over the page served by `cheez serve`.
// Responsibilities:
//   - Bind to the page elements by id/class and fail fast if one is missing.
//   - Implement game.Surface and game.PenaltySurface on those elements.
//   - Forward keydown events from the letter inputs to the event loop.
//
// Notes:
//   - Grid cells are the <td> elements of #wordle in document order, so cell
//     (row, col) is tds[row*5+col].
//   - Every keydown on a letter input is default-prevented; the game owns the
//     input values.

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/robalobadob/cheez/internal/game"
)

// Element ids and classes the page must provide.
const (
	IDSession     = "session-id"
	IDGrid        = "wordle"
	IDStatus      = "status"
	IDEerieText   = "eerie-text"
	IDContainer   = "cheese-container"
	ClassLetter   = "letter"
	ClassCorrect  = "correct"
	ClassWrong    = "wrong"
	ClassPandora  = "pandora-box-open"
	rowWidth      = game.WordLen
)

// KeyHandler receives key events aimed at a slot.
type KeyHandler interface {
	HandleKey(i int, k game.Key) game.KeyResult
}

// Surface is the DOM binding. Its game.Surface methods must run on the
// event loop.
type Surface struct {
	session   js.Value
	letters   []js.Value
	cells     []js.Value
	status    js.Value
	eerie     js.Value
	container js.Value
}

var (
	_ game.Surface        = (*Surface)(nil)
	_ game.PenaltySurface = (*Surface)(nil)
)

// Bind looks up every element the game needs in doc.
func Bind(doc js.Value) (*Surface, error) {
	byID := func(id string) (js.Value, error) {
		el := doc.Call("getElementById", id)
		if el.IsNull() || el.IsUndefined() {
			return js.Value{}, fmt.Errorf("dom: element #%s not found", id)
		}
		return el, nil
	}

	s := &Surface{}
	var err error
	if s.session, err = byID(IDSession); err != nil {
		return nil, err
	}
	if s.status, err = byID(IDStatus); err != nil {
		return nil, err
	}
	if s.eerie, err = byID(IDEerieText); err != nil {
		return nil, err
	}
	if s.container, err = byID(IDContainer); err != nil {
		return nil, err
	}
	grid, err := byID(IDGrid)
	if err != nil {
		return nil, err
	}

	s.letters = collect(doc.Call("getElementsByClassName", ClassLetter))
	if len(s.letters) != game.WordLen {
		return nil, fmt.Errorf("dom: found %d .%s inputs, want %d", len(s.letters), ClassLetter, game.WordLen)
	}
	s.cells = collect(grid.Call("getElementsByTagName", "td"))
	if len(s.cells) == 0 || len(s.cells)%rowWidth != 0 {
		return nil, fmt.Errorf("dom: #%s has %d cells, want a multiple of %d", IDGrid, len(s.cells), rowWidth)
	}
	return s, nil
}

func collect(list js.Value) []js.Value {
	n := list.Length()
	out := make([]js.Value, n)
	for i := 0; i < n; i++ {
		out[i] = list.Index(i)
	}
	return out
}

// Rows is the number of grid rows on the page.
func (s *Surface) Rows() int { return len(s.cells) / rowWidth }

// SessionID returns the value of the hidden session input.
func (s *Surface) SessionID() string { return s.session.Get("value").String() }

// SetSessionID writes id into the hidden session input.
func (s *Surface) SetSessionID(id string) { s.session.Set("value", id) }

func (s *Surface) SetSlotText(i int, text string) { s.letters[i].Set("value", text) }

func (s *Surface) SetSlotEnabled(i int, enabled bool) { s.letters[i].Set("disabled", !enabled) }

func (s *Surface) FocusSlot(i int) { s.letters[i].Call("focus") }

func (s *Surface) SetStatusText(text string) { s.status.Set("textContent", text) }

func (s *Surface) WriteGridCell(row, col int, text string, style game.Cell) {
	idx := row*rowWidth + col
	if row < 0 || col < 0 || col >= rowWidth || idx >= len(s.cells) {
		return
	}
	td := s.cells[idx]
	td.Set("textContent", text)
	switch style {
	case game.CellCorrect:
		td.Set("className", ClassCorrect)
	case game.CellWrong:
		td.Set("className", ClassWrong)
	default:
		td.Set("className", "")
	}
}

func (s *Surface) ShowPenalty(text string) {
	s.eerie.Set("textContent", text)
	s.container.Get("classList").Call("add", ClassPandora)
}

func (s *Surface) HidePenalty() {
	s.container.Get("classList").Call("remove", ClassPandora)
	s.eerie.Set("textContent", "")
}

// Listen installs a keydown handler on every letter input. Events are posted
// to the loop through post, in arrival order, and delivered to h there. post
// must not block for long: the browser waits on the handler. The returned func
// removes the handlers and releases them.
func (s *Surface) Listen(post func(func()), h KeyHandler) (release func()) {
	fns := make([]js.Func, len(s.letters))
	for i, el := range s.letters {
		fns[i] = js.FuncOf(func(this js.Value, args []js.Value) any {
			ev := args[0]
			ev.Call("preventDefault")
			k := game.Key{
				Code: ev.Get("code").String(),
				Text: ev.Get("key").String(),
			}
			post(func() { h.HandleKey(i, k) })
			return nil
		})
		el.Call("addEventListener", "keydown", fns[i])
	}
	return func() {
		for i, el := range s.letters {
			el.Call("removeEventListener", "keydown", fns[i])
			fns[i].Release()
		}
	}
}
