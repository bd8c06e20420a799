package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cmdlist/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	lastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true) // Sky Blue/Cyan
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	activeColor = lipgloss.Color("205")
	borderColor = lipgloss.Color("63")
)

func (m AppModel) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	// borders x2 + buffer
	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth * 3 / 5
	rightWidth := netWidth - leftWidth

	boxHeight := height - 4
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(m.listView(leftWidth, interiorHeight))

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(m.detailView(rightWidth, interiorHeight))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.footer(),
	)
}

func (m AppModel) listView(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Command List"))
	b.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		if m.FilterActive {
			b.WriteString(dimStyle.Render("No matching commands"))
		} else {
			b.WriteString(dimStyle.Render("No global commands"))
		}
		return b.String()
	}

	// Header is 2 lines (Title + 1 blank line)
	visibleItems := height - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx, endIdx := window(m.SelectedIdx, len(m.FilteredIndices), visibleItems)

	for i := startIdx; i < endIdx; i++ {
		e := m.Entries[m.FilteredIndices[i]]

		cursor := " "
		if i == m.SelectedIdx {
			cursor = model.IconCursor
		}
		line := fmt.Sprintf("%s %2d %s %s", cursor, e.Ordinal, e.Kind.Icon(), e.Command())
		if w := width - 2; w > 3 && lipgloss.Width(line) > w {
			line = truncate(line, w-3) + "..."
		}

		style := normalStyle
		switch {
		case i == m.SelectedIdx:
			style = selectedStyle
		case e.Kind == model.KindLastExecuted:
			style = lastStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m AppModel) detailView(width, height int) string {
	e, ok := m.Selected()
	if !ok {
		return titleStyle.Render("Details")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Entry:   %d\n", e.Ordinal)
	fmt.Fprintf(&b, "Kind:    %s\n", e.Kind)
	if e.SourceFile != "" {
		fmt.Fprintf(&b, "File:    %s\n", shortenHome(e.SourceFile))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width - 2).Render(e.Command()))

	vp := m.DetailsViewport
	vp.Width = width
	vp.Height = height - 2
	vp.SetContent(b.String())
	return titleStyle.Render("Details") + "\n\n" + vp.View()
}

func (m AppModel) footer() string {
	if m.InputMode {
		return " Filter: " + m.InputBuffer.View()
	}
	help := " ↑/↓ move • enter run • e edit • / filter • esc/q back"
	if m.FilterActive {
		help = fmt.Sprintf(" filter %q • esc clear •%s", m.InputBuffer.Value(), help)
	}
	return footerStyle.Render(help)
}

// window returns the [start, end) range of n items to show so that selected
// stays roughly centred.
func window(selected, n, visible int) (int, int) {
	if n <= visible {
		return 0, n
	}
	start := selected - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > n {
		start = n - visible
	}
	return start, start + visible
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func shortenHome(path string) string {
	home := os.Getenv("HOME")
	if home != "" && strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
