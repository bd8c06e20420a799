// Package session runs the command list prompt: it reads one input at a
// time, dispatches it, and keeps the list file and history up to date.
package session

import (
	"context"
	"errors"
	"io"
	"os"

	"cmdlist/internal/config"
	"cmdlist/internal/lineedit"
	"cmdlist/internal/listfile"
	"cmdlist/internal/logging"
	"cmdlist/internal/model"
	"cmdlist/internal/runner"

	"github.com/spf13/afero"
)

const prompt = "Enter number, command to run, history arrow keys, or h for help: "

// LineReader reads one line of user input, pre-filled with defaultText.
type LineReader interface {
	ReadLine(prompt, defaultText string) (string, error)
}

// History is the persistent recall list behind the arrow keys.
type History interface {
	Load(path string) error
	Append(entry string)
	Persist(path string) error
}

// Reporter shows an error to the user without stopping the session.
type Reporter interface {
	Report(msg string)
}

// Editor opens a file for manual editing and blocks until done.
type Editor interface {
	Edit(path string) error
}

// Picker lets the user choose an entry full screen. It returns ordinal 0 when
// nothing was chosen; edit asks for the entry to be pre-filled, not run.
type Picker interface {
	Pick(list model.List) (ordinal int, edit bool, err error)
}

// Deps are the collaborators a Session drives. Picker and Help may be nil.
type Deps struct {
	Store    *listfile.Store
	Input    LineReader
	History  History
	Runner   runner.Runner
	Reporter Reporter
	Editor   Editor
	Picker   Picker
	Help     HelpProvider
	Out      io.Writer
	Fs       afero.Fs
}

// Session owns the in-memory list for one run of the prompt.
type Session struct {
	cfg     config.Config
	deps    Deps
	display *Display

	list        model.List
	lastCommand string
	defaultText string
	params      []string
	interactive bool
}

// New builds a session. The config is read-only for the session's lifetime.
func New(cfg config.Config, deps Deps) *Session {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	return &Session{
		cfg:     cfg,
		deps:    deps,
		display: NewDisplay(deps.Out, cfg.NoColor),
	}
}

// List returns the current in-memory list.
func (s *Session) List() model.List { return s.list }

// Add appends text to the list file and shows the result.
func (s *Session) Add(text string) error {
	list, err := s.deps.Store.Load("")
	if err != nil {
		return err
	}
	s.list = model.Add(list, text, s.deps.Store.Path)
	if err := s.save(); err != nil {
		return err
	}
	logging.Info().Str("command", text).Msg("added command")
	return nil
}

// Run loads the list and processes input until quit. A non-empty which is a
// runstring: it is dispatched once and Run returns, except "l", which shows
// the list and drops into the interactive prompt. params are inserted after
// the program name of every executed command.
func (s *Session) Run(ctx context.Context, which string, params []string) LoopOutcome {
	if err := s.deps.Store.Ensure(); err != nil {
		s.report(err.Error())
	}
	if err := s.deps.History.Load(s.cfg.HistoryFile); err != nil {
		logging.Warn().Err(err).Str("path", s.cfg.HistoryFile).Msg("history file unreadable")
	}

	if s.cfg.Mode == config.Standalone {
		s.lastCommand = s.cfg.LastCommand
	}
	list, err := s.deps.Store.Load(s.lastCommand)
	if err != nil {
		s.report(err.Error())
	}
	s.list = list
	s.params = params
	s.interactive = which == ""

	for {
		if s.interactive {
			line, err := s.deps.Input.ReadLine(prompt, s.defaultText)
			switch {
			case errors.Is(err, lineedit.ErrInterrupt):
				continue
			case errors.Is(err, io.EOF):
				return quit()
			case err != nil:
				s.report(err.Error())
				return quit()
			}
			which = line
		}
		s.defaultText = ""

		if !s.interactive && which == "l" {
			s.list = s.display.Show(s.list)
			s.interactive = true
			continue
		}

		out := s.Dispatch(ctx, which)
		logging.Debug().Str("input", which).Stringer("outcome", out.Kind).Msg("dispatched")

		if !s.interactive {
			if out.Kind == DispatchFailed {
				return out
			}
			return quit()
		}
		switch out.Kind {
		case Quit:
			return out
		case DispatchFailed:
			logging.Info().Err(out.Err).Msg("command failed")
		}
		if ctx.Err() != nil {
			return quit()
		}
	}
}

func (s *Session) save() error {
	list, err := s.deps.Store.Save(s.list)
	s.list = list
	return err
}

func (s *Session) reload() {
	list, err := s.deps.Store.Load("")
	if err != nil {
		s.report(err.Error())
		return
	}
	s.list = list
}

func (s *Session) report(msg string) {
	if s.deps.Reporter != nil {
		s.deps.Reporter.Report(msg)
	}
}
