package tui

import (
	"testing"

	"cmdlist/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() model.List {
	return model.Renumber(model.List{
		{Kind: model.KindComment, Text: "# build"},
		model.NewGlobal("make build", "/work/cl"),
		model.NewGlobal("make test", "/work/cl"),
		model.NewGlobal("git status", "/work/cl"),
		model.NewLast("ls -la"),
	})
}

func press(m AppModel, keys ...string) AppModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func TestInitialModel_SkipsComments(t *testing.T) {
	m := InitialModel(sample())
	assert.Equal(t, []int{1, 2, 3, 4}, m.FilteredIndices)

	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, e.Ordinal)
}

func TestUpdate_Navigation(t *testing.T) {
	m := press(InitialModel(sample()), "down", "down", "down", "down", "down")
	assert.Equal(t, 3, m.SelectedIdx)

	m = press(m, "up")
	assert.Equal(t, 2, m.SelectedIdx)

	m = press(m, "g")
	assert.Equal(t, 0, m.SelectedIdx)
	m = press(m, "G")
	assert.Equal(t, 3, m.SelectedIdx)
}

func TestUpdate_EnterChoosesOrdinal(t *testing.T) {
	m := InitialModel(sample())
	m = press(m, "down")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(AppModel)

	assert.Equal(t, Choice{Ordinal: 2}, m.Choice)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_EditChoice(t *testing.T) {
	m := press(InitialModel(sample()), "down", "down", "down", "e")
	assert.Equal(t, Choice{Ordinal: 4, Edit: true}, m.Choice)
}

func TestUpdate_EscWithoutFilterCancels(t *testing.T) {
	m := InitialModel(sample())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(AppModel)

	assert.Equal(t, Choice{}, m.Choice)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_Filter(t *testing.T) {
	m := press(InitialModel(sample()), "/", "M", "a", "k", "e")
	assert.True(t, m.InputMode)
	assert.True(t, m.FilterActive)
	assert.Equal(t, []int{1, 2}, m.FilteredIndices)
	assert.Equal(t, Choice{}, m.Choice, "keys typed into the filter are not commands")

	m = press(m, "enter", "down", "enter")
	assert.False(t, m.InputMode)
	assert.Equal(t, Choice{Ordinal: 2}, m.Choice)
}

func TestUpdate_FilterClearedByEsc(t *testing.T) {
	m := press(InitialModel(sample()), "/", "g", "i", "t")
	assert.Equal(t, []int{3}, m.FilteredIndices)

	m = press(m, "esc")
	assert.False(t, m.FilterActive)
	assert.Len(t, m.FilteredIndices, 4)
}

func TestUpdate_NoMatchClampsSelection(t *testing.T) {
	m := press(InitialModel(sample()), "down", "down", "/", "z", "z", "z")
	assert.Empty(t, m.FilteredIndices)
	assert.Equal(t, 0, m.SelectedIdx)

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestView_RendersEntries(t *testing.T) {
	m := InitialModel(sample())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	out := next.(AppModel).View()

	assert.Contains(t, out, "Command List")
	assert.Contains(t, out, "make build")
	assert.Contains(t, out, "ls -la")
	assert.NotContains(t, out, "# build")
}

func TestWindow(t *testing.T) {
	s, e := window(0, 3, 10)
	assert.Equal(t, []int{0, 3}, []int{s, e})

	s, e = window(9, 10, 4)
	assert.Equal(t, []int{6, 10}, []int{s, e})

	s, e = window(5, 20, 4)
	assert.Equal(t, []int{3, 7}, []int{s, e})
}
