// Package report writes user-facing error messages without stopping the process.
package report

import (
	"fmt"
	"io"
	"os"

	"cmdlist/internal/logging"

	"github.com/fatih/color"
)

// Reporter prints errors to a user-visible stream.
type Reporter struct {
	w   io.Writer
	tag *color.Color
}

// New returns a Reporter writing to w. noColor forces plain output.
func New(w io.Writer, noColor bool) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	tag := color.New(color.FgRed, color.Bold)
	if noColor {
		tag.DisableColor()
	}
	return &Reporter{w: w, tag: tag}
}

// Report prints msg prefixed with an error tag.
func (r *Reporter) Report(msg string) {
	logging.Debug().Str("msg", msg).Msg("reported to user")
	fmt.Fprintf(r.w, "%s %s\n", r.tag.Sprint("error:"), msg)
}

// Reportf formats and reports a message.
func (r *Reporter) Reportf(format string, args ...any) {
	r.Report(fmt.Sprintf(format, args...))
}
