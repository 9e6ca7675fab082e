// Package tui is a terminal surface for the game, driven by bubbletea.
//
// The bubbletea update loop is the event loop: results from the checker and
// the penalty timer are delivered as dispatchMsg and run inside Update.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/cheez/internal/game"
)

var (
	styleCorrect  = lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("15")).Bold(true).Padding(0, 1)
	styleWrong    = lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("15")).Bold(true).Padding(0, 1)
	styleEmpty    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	styleSlot     = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Padding(0, 1)
	styleFocus    = lipgloss.NewStyle().Background(lipgloss.Color("14")).Foreground(lipgloss.Color("0")).Bold(true).Padding(0, 1)
	styleDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	stylePenalty  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Blink(true)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type cell struct {
	text  string
	style game.Cell
}

// dispatchMsg carries a function posted to the event loop.
type dispatchMsg func()

// startMsg starts the game once the program is running.
type startMsg struct{}

// Model is the terminal surface. It implements game.Surface and
// game.PenaltySurface; all methods run inside Update.
type Model struct {
	game    *game.Game
	session string

	slots   [game.WordLen]string
	enabled [game.WordLen]bool
	focus   int
	grid    [][game.WordLen]cell
	status  string
	penalty string
}

var (
	_ game.Surface        = (*Model)(nil)
	_ game.PenaltySurface = (*Model)(nil)
	_ tea.Model           = (*Model)(nil)
)

// New returns a surface with rows grid rows. session is shown in the footer.
func New(rows int, session string) *Model {
	return &Model{grid: make([][game.WordLen]cell, rows), session: session}
}

// Attach binds the game that receives key events. Call before running.
func (m *Model) Attach(g *game.Game) { m.game = g }

// Dispatcher posts functions onto p's update loop.
func Dispatcher(p *tea.Program) game.Dispatch {
	return func(fn func()) { p.Send(dispatchMsg(fn)) }
}

func (m *Model) SetSlotText(i int, text string)     { m.slots[i] = text }
func (m *Model) SetSlotEnabled(i int, enabled bool) { m.enabled[i] = enabled }
func (m *Model) FocusSlot(i int)                    { m.focus = i }
func (m *Model) SetStatusText(text string)          { m.status = text }
func (m *Model) ShowPenalty(text string)            { m.penalty = text }
func (m *Model) HidePenalty()                       { m.penalty = "" }

func (m *Model) WriteGridCell(row, col int, text string, style game.Cell) {
	if row < 0 || row >= len(m.grid) || col < 0 || col >= game.WordLen {
		return
	}
	m.grid[row][col] = cell{text: text, style: style}
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg()
	case startMsg:
		if m.game != nil {
			m.game.Start()
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if m.game != nil {
			m.game.Close()
		}
		return tea.Quit
	}
	if m.game == nil {
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace:
		m.game.HandleKey(m.focus, game.Backspace())
	case tea.KeyLeft:
		m.game.Focus(m.focus - 1)
	case tea.KeyRight:
		m.game.Focus(m.focus + 1)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.game.HandleKey(m.focus, game.Letter(r))
		}
	default:
		m.game.HandleKey(m.focus, game.Key{Code: msg.String()})
	}
	return nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("cheez"))
	b.WriteString("\n\n")

	for _, row := range m.grid {
		cells := make([]string, 0, game.WordLen)
		for _, c := range row {
			cells = append(cells, renderCell(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	slots := make([]string, 0, game.WordLen)
	for i, txt := range m.slots {
		if txt == "" {
			txt = "_"
		}
		st := styleSlot
		switch {
		case !m.enabled[i]:
			st = styleDisabled
		case i == m.focus:
			st = styleFocus
		}
		slots = append(slots, st.Render(txt))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, slots...))
	b.WriteString("\n\n")

	b.WriteString(m.status)
	b.WriteString("\n")
	if m.penalty != "" {
		b.WriteString(stylePenalty.Render(m.penalty))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleSubtle.Render(fmt.Sprintf("session %s · ←/→ move · backspace delete · esc quit", m.session)))
	b.WriteString("\n")
	return b.String()
}

func renderCell(c cell) string {
	switch c.style {
	case game.CellCorrect:
		return styleCorrect.Render(c.text)
	case game.CellWrong:
		return styleWrong.Render(c.text)
	}
	return styleEmpty.Render("·")
}
