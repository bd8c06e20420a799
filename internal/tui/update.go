package tui

import (
	"strings"

	"cmdlist/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				return m, nil
			case tea.KeyEsc:
				m.clearFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.clearFilter()
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "home", "g":
			m.SelectedIdx = 0
		case "end", "G":
			if n := len(m.FilteredIndices); n > 0 {
				m.SelectedIdx = n - 1
			}
		case "enter":
			if e, ok := m.Selected(); ok {
				m.Choice = Choice{Ordinal: e.Ordinal}
				return m, tea.Quit
			}
		case "e":
			if e, ok := m.Selected(); ok {
				m.Choice = Choice{Ordinal: e.Ordinal, Edit: true}
				return m, tea.Quit
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) clearFilter() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.applyFilter()
}

// applyFilter keeps the selectable entries whose text contains the filter,
// ignoring case.
func (m *AppModel) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.FilterActive = term != ""

	m.FilteredIndices = nil
	for i, e := range m.Entries {
		if e.Kind == model.KindComment {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(e.Text), term) {
			continue
		}
		m.FilteredIndices = append(m.FilteredIndices, i)
	}

	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = len(m.FilteredIndices) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}
