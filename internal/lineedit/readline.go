// Package lineedit provides the interactive prompt: line editing, arrow-key
// recall and a history file.
package lineedit

import (
	"errors"
	"io"
	"strings"

	"cmdlist/internal/logging"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned when Ctrl-C is pressed at the prompt.
var ErrInterrupt = errors.New("interrupted")

// Readline is a terminal prompt backed by chzyer/readline. History entries
// are kept in a History and mirrored into readline for recall.
type Readline struct {
	rl   *readline.Instance
	hist *History
}

// New opens the terminal prompt.
func New(hist *History) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt:        "^C",
		EOFPrompt:              "q",
		HistoryLimit:           hist.Limit,
		HistorySearchFold:      true,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, err
	}
	return &Readline{rl: rl, hist: hist}, nil
}

// ReadLine shows prompt with defaultText pre-filled for editing.
func (r *Readline) ReadLine(prompt, defaultText string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.ReadlineWithDefault(defaultText)
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupt
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Load reads the history file and seeds arrow-key recall from it.
func (r *Readline) Load(path string) error {
	if err := r.hist.Load(path); err != nil {
		return err
	}
	for _, e := range r.hist.Entries() {
		if err := r.rl.SaveHistory(e); err != nil {
			logging.Warn().Err(err).Msg("seed readline history")
			break
		}
	}
	return nil
}

// Append adds a command to history and to arrow-key recall.
func (r *Readline) Append(entry string) {
	r.hist.Append(entry)
	if err := r.rl.SaveHistory(entry); err != nil {
		logging.Warn().Err(err).Msg("append readline history")
	}
}

// Persist writes the history file.
func (r *Readline) Persist(path string) error {
	return r.hist.Persist(path)
}

// Close restores the terminal.
func (r *Readline) Close() error {
	return r.rl.Close()
}
