// Package tui is the full-screen browser for the command list, opened with
// "b" at the prompt or --browse on the command line.
package tui

import (
	"cmdlist/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Choice is what the user picked. Ordinal is 0 when the browser was left
// without choosing.
type Choice struct {
	Ordinal int
	Edit    bool
}

// AppModel holds the browser state.
type AppModel struct {
	// Data
	Entries model.List
	Choice  Choice

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of selectable Entries to show
	FilterActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the browser state for list. Comments are not
// selectable and are left out.
func InitialModel(list model.List) AppModel {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 80
	ti.Width = 30

	m := AppModel{
		Entries:         list,
		InputBuffer:     ti,
		DetailsViewport: viewport.New(0, 0),
	}
	m.applyFilter()
	return m
}

// Selected returns the entry under the cursor.
func (m AppModel) Selected() (model.Entry, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return model.Entry{}, false
	}
	return m.Entries[m.FilteredIndices[m.SelectedIdx]], true
}
