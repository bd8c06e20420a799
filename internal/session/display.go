package session

import (
	"fmt"
	"io"
	"strconv"

	"cmdlist/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Display prints the command list. Ordinals are repeated at the end of each
// line so long entries can be matched to their number.
type Display struct {
	w       io.Writer
	styled  bool
	ordinal lipgloss.Style
}

// NewDisplay writes to w; noColor prints plain text.
func NewDisplay(w io.Writer, noColor bool) *Display {
	r := lipgloss.NewRenderer(w)
	return &Display{
		w:       w,
		styled:  !noColor,
		ordinal: r.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
	}
}

// Show dedups and renumbers list, prints it and returns the normalized list.
func (d *Display) Show(list model.List) model.List {
	list = model.Normalize(list)
	if len(list) == 0 {
		fmt.Fprintln(d.w, "No global commands")
		return list
	}
	for _, e := range list {
		if e.Kind == model.KindComment {
			fmt.Fprintln(d.w, e.Text)
			continue
		}
		n := d.num(e.Ordinal)
		fmt.Fprintf(d.w, "%s %s :%s\n", n, e.Text, n)
	}
	return list
}

func (d *Display) num(n int) string {
	s := strconv.Itoa(n)
	if !d.styled {
		return s
	}
	return d.ordinal.Render(s)
}
