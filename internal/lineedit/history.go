package lineedit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// History is a bounded, file-backed list of previously run commands.
type History struct {
	Fs      afero.Fs
	Limit   int
	entries []string
}

// NewHistory returns an empty history on the OS filesystem.
func NewHistory(limit int) *History {
	return &History{Fs: afero.NewOsFs(), Limit: limit}
}

// Load replaces the in-memory entries with the contents of path. A missing
// file leaves the history empty.
func (h *History) Load(path string) error {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	h.entries = h.entries[:0]
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.trim()
	return nil
}

// Append records an entry. Empty lines and repeats of the newest entry are dropped.
func (h *History) Append(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	h.trim()
}

// Persist writes all entries to path, oldest first.
func (h *History) Persist(path string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return afero.WriteFile(h.Fs, path, []byte(b.String()), 0o600)
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) trim() {
	if h.Limit > 0 && len(h.entries) > h.Limit {
		h.entries = h.entries[len(h.entries)-h.Limit:]
	}
}
