package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyUp     = key.NewBinding(key.WithKeys("up", "k"))
	keyDown   = key.NewBinding(key.WithKeys("down", "j"))
	keyTop    = key.NewBinding(key.WithKeys("g"))
	keyBottom = key.NewBinding(key.WithKeys("G"))
	keyQuit   = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))
)

// Update handles messages (required by tea.Model).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultsMsg:
		m.loading = false
		m.results = msg.Results
		m.term = msg.Term
		m.selectedIndex = 0
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyQuit):
		return m, tea.Quit

	case key.Matches(msg, keyUp):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}

	case key.Matches(msg, keyDown):
		if m.results != nil && m.selectedIndex < len(m.results.Scenarios)-1 {
			m.selectedIndex++
		}

	case key.Matches(msg, keyTop):
		m.selectedIndex = 0

	case key.Matches(msg, keyBottom):
		if m.results != nil && len(m.results.Scenarios) > 0 {
			m.selectedIndex = len(m.results.Scenarios) - 1
		}
	}

	return m, nil
}
