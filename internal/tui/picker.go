package tui

import (
	"fmt"

	"cmdlist/internal/logging"
	"cmdlist/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Picker runs the browser on the alternate screen.
type Picker struct {
	Options []tea.ProgramOption
}

// NewPicker returns a Picker that takes over the terminal.
func NewPicker() Picker {
	return Picker{Options: []tea.ProgramOption{tea.WithAltScreen()}}
}

// Pick blocks until the user chooses an entry or backs out. It returns
// ordinal 0 when nothing was chosen.
func (p Picker) Pick(list model.List) (int, bool, error) {
	final, err := tea.NewProgram(InitialModel(list), p.Options...).Run()
	if err != nil {
		return 0, false, fmt.Errorf("browse: %w", err)
	}
	m, ok := final.(AppModel)
	if !ok {
		return 0, false, nil
	}
	logging.Debug().Int("ordinal", m.Choice.Ordinal).Bool("edit", m.Choice.Edit).Msg("browser closed")
	return m.Choice.Ordinal, m.Choice.Edit, nil
}
