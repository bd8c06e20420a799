// Package listfile owns the on-disk command list format.
//
// One entry per line. Comment lines (optional whitespace then '#') are kept
// verbatim, lines containing "Last:" are last-executed placeholders, every
// other non-blank line is a global command stored exactly as entered.
//
// There is no locking: a concurrent writer between Load and Save is
// overwritten (last writer wins).
package listfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cmdlist/internal/logging"
	"cmdlist/internal/model"

	"github.com/spf13/afero"
)

var ErrIO = errors.New("list file i/o")

// IOError wraps a failed read or write of the list file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// Store loads and saves one command list file.
type Store struct {
	Fs   afero.Fs
	Path string
	// HostNames are script names that must never be recorded as the last
	// command (running the host itself from its own list).
	HostNames []string
}

// New returns a Store on the OS filesystem.
func New(path string, hostNames ...string) *Store {
	return &Store{Fs: afero.NewOsFs(), Path: path, HostNames: hostNames}
}

// Ensure creates an empty list file when none exists.
func (s *Store) Ensure() error {
	ok, err := afero.Exists(s.Fs, s.Path)
	if err != nil {
		return &IOError{Op: "stat", Path: s.Path, Err: err}
	}
	if ok {
		return nil
	}
	if err := afero.WriteFile(s.Fs, s.Path, nil, 0o644); err != nil {
		return &IOError{Op: "create", Path: s.Path, Err: err}
	}
	logging.Debug().Str("path", s.Path).Msg("created empty list file")
	return nil
}

// Load reads the list file. A missing file is an empty list.
//
// lastHint is the most recent command known to the caller. When empty any
// stored "Last:" line is kept as is; otherwise the placeholder is rewritten
// to the hint, or dropped when the hint is an invocation of the host itself.
func (s *Store) Load(lastHint string) (model.List, error) {
	lines, err := readLines(s.Fs, s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, &IOError{Op: "read", Path: s.Path, Err: err}
	}

	hintUsable := lastHint != "" && !s.mentionsHost(lastHint)
	lastSeen := false
	var list model.List

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch model.Classify(line) {
		case model.KindComment:
			list = append(list, model.Entry{Ordinal: model.NoOrdinal, Kind: model.KindComment, SourceFile: s.Path, Text: line})

		case model.KindLastExecuted:
			list = dropKind(list, model.KindLastExecuted)
			lastSeen = true
			switch {
			case lastHint == "":
				list = append(list, model.Entry{Ordinal: model.NoOrdinal, Kind: model.KindLastExecuted, SourceFile: s.Path, Text: line})
			case hintUsable:
				list = append(list, model.NewLast(lastHint))
			}

		default:
			list = dropText(list, line)
			list = append(list, model.NewGlobal(line, s.Path))
		}
	}

	if hintUsable && !lastSeen {
		list = append(list, model.NewLast(lastHint))
	}

	logging.Debug().Str("path", s.Path).Int("entries", len(list)).Msg("loaded command list")
	return model.Renumber(list), nil
}

// Save dedups and rewrites the whole file. An empty list never truncates an
// existing file.
func (s *Store) Save(list model.List) (model.List, error) {
	if len(list) == 0 {
		logging.Debug().Str("path", s.Path).Msg("skipping save of empty list")
		return list, nil
	}
	_, list = model.RemoveDuplicates(list)

	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, e.Text)
	}
	if err := writeLines(s.Fs, s.Path, lines); err != nil {
		return list, &IOError{Op: "write", Path: s.Path, Err: err}
	}
	logging.Debug().Str("path", s.Path).Int("entries", len(list)).Msg("saved command list")
	return list, nil
}

func (s *Store) mentionsHost(command string) bool {
	for _, name := range s.HostNames {
		if name != "" && strings.Contains(command, name) {
			return true
		}
	}
	return false
}

func dropKind(list model.List, kind model.Kind) model.List {
	out := list[:0]
	for _, e := range list {
		if e.Kind != kind {
			out = append(out, e)
		}
	}
	return out
}

func dropText(list model.List, text string) model.List {
	out := list[:0]
	for _, e := range list {
		if e.Kind == model.KindComment || e.Text != text {
			out = append(out, e)
		}
	}
	return out
}
