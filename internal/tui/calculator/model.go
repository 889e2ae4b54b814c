// ============================================================================
// meinRECHENWERK (mRW) - Wissenschaftlicher Rechner
// ============================================================================
//
// Package:     calculator
// Description: Main Bubbletea model for the mRW calculator TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-08-20
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mRW/internal/session"
)

// historyDisplayLimit caps how many entries the history panel shows
const historyDisplayLimit = 12

// Model is the main Bubbletea model for the calculator
type Model struct {
	// State
	width  int
	height int
	err    error
	result string

	// Components
	input textinput.Model

	// Calculation state
	session *session.Session

	// Input history navigation
	inputHistory []string
	historyIndex int    // -1 = editing a new input
	currentInput string // stash while navigating the history
}

// New creates a new calculator model bound to a session
func New(sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Expression, e.g. 2+3*4 or sin(30)"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		input:        ti,
		session:      sess,
		historyIndex: -1,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.evaluate()

		case tea.KeyUp:
			return m.navigateHistory(-1)

		case tea.KeyDown:
			return m.navigateHistory(1)

		case tea.KeyF2:
			m.session.Engine().ToggleAngleMode()
			return m, nil

		case tea.KeyCtrlL:
			m.session.ClearHistory()
			m.result = ""
			m.err = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs the current input through the session
func (m Model) evaluate() (tea.Model, tea.Cmd) {
	expression := strings.TrimSpace(m.input.Value())
	if expression == "" {
		return m, nil
	}

	m.inputHistory = append(m.inputHistory, expression)
	m.historyIndex = -1
	m.currentInput = ""

	entry, err := m.session.Evaluate(expression)
	if err != nil {
		m.err = err
		m.result = ""
		return m, nil
	}

	m.err = nil
	m.result = entry.Result
	m.input.SetValue("")
	return m, nil
}

// navigateHistory walks through previous inputs with the arrow keys
func (m Model) navigateHistory(direction int) (tea.Model, tea.Cmd) {
	if len(m.inputHistory) == 0 {
		return m, nil
	}

	if m.historyIndex == -1 {
		if direction > 0 {
			return m, nil
		}
		m.currentInput = m.input.Value()
		m.historyIndex = len(m.inputHistory) - 1
	} else {
		m.historyIndex += direction
		if m.historyIndex >= len(m.inputHistory) {
			m.historyIndex = -1
			m.input.SetValue(m.currentInput)
			m.input.CursorEnd()
			return m, nil
		}
		if m.historyIndex < 0 {
			m.historyIndex = 0
		}
	}

	m.input.SetValue(m.inputHistory[m.historyIndex])
	m.input.CursorEnd()
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	mode := m.session.Engine().AngleMode()
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render("mRW Rechner"),
		ModeBadgeStyle.Render(mode.Abbrev()),
	)
	b.WriteString(header)
	b.WriteString("\n\n")

	b.WriteString(InputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	case m.result != "":
		b.WriteString(ResultStyle.Render("= " + m.result))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HistoryHeaderStyle.Render("History"))
	b.WriteString("\n")
	b.WriteString(m.renderHistory())

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Enter: evaluate · F2: DEG/RAD · ↑/↓: input history · Ctrl+L: clear · Esc: quit"))

	return b.String()
}

// renderHistory renders the newest entries of the calculation history
func (m Model) renderHistory() string {
	entries := m.session.History()
	if len(entries) == 0 {
		return HistoryEntryStyle.Render("(empty)") + "\n"
	}

	start := 0
	if len(entries) > historyDisplayLimit {
		start = len(entries) - historyDisplayLimit
	}

	var b strings.Builder
	for i := len(entries) - 1; i >= start; i-- {
		e := entries[i]
		line := fmt.Sprintf("%s = %s", e.Expression, HistoryResultStyle.Render(e.Result))
		b.WriteString(HistoryEntryStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the TUI program
func Run(sess *session.Session) error {
	p := tea.NewProgram(New(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
