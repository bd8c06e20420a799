// Package cmdlist is a saved, editable list of shell commands with an
// interactive prompt. It runs as the cmdlist binary or mounted inside a host
// program under a --cl flag.
package cmdlist

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cmdlist/internal/config"
	"cmdlist/internal/editor"
	"cmdlist/internal/lineedit"
	"cmdlist/internal/listfile"
	"cmdlist/internal/logging"
	"cmdlist/internal/report"
	"cmdlist/internal/runner"
	"cmdlist/internal/session"
	"cmdlist/internal/tui"
)

// Version of the command list.
const Version = config.Version

// Mode is how the command list was invoked.
type Mode = config.Mode

const (
	Standalone = config.Standalone
	Embedded   = config.Embedded
)

// Outcome is the result of a Run: Continue, Quit or DispatchFailed with Err set.
type Outcome = session.LoopOutcome

const (
	Continue       = session.Continue
	Quit           = session.Quit
	DispatchFailed = session.DispatchFailed
)

// IsExecError reports whether out failed because a command exited non-zero.
// The command's output has already been printed.
func IsExecError(out Outcome) bool { return session.IsExecError(out) }

// HelpProvider shows the host program's help screen.
type HelpProvider = session.HelpProvider

// ProvideHelp wraps fn as a HelpProvider.
func ProvideHelp(fn func(args ...string), args ...string) HelpProvider {
	return session.ProvideHelp(fn, args...)
}

// App is a configured command list, ready to run.
type App struct {
	cfg      config.Config
	opts     options
	store    *listfile.Store
	reporter *report.Reporter
	closers  []io.Closer
}

// Open resolves configuration for the program at scriptPath. Settings come
// from the user config file and CMDLIST_LOG_LEVEL, then from opts.
func Open(mode Mode, scriptPath string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	settingsPath := o.settingsPath
	if !o.settingsSet {
		settingsPath = config.DefaultSettingsPath()
	}
	settings, err := config.LoadSettings(o.fs, settingsPath)
	if err != nil {
		return nil, err
	}
	if o.noColor {
		settings.NoColor = true
	}
	if lvl := os.Getenv("CMDLIST_LOG_LEVEL"); lvl != "" {
		settings.LogLevel = lvl
	}
	if o.logLevel != "" {
		settings.LogLevel = o.logLevel
	}

	cfg, err := config.Resolve(config.Options{
		Mode:        mode,
		ScriptPath:  scriptPath,
		ToolName:    "cmdlist",
		ListFile:    o.listFile,
		LastCommand: o.lastCommand,
		Settings:    settings,
		Fs:          o.fs,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		opts:     o,
		reporter: report.New(o.stderr, cfg.NoColor),
	}
	app.store = listfile.New(cfg.ListFile, cfg.HostNames()...)
	app.store.Fs = o.fs

	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(config.ExpandHome(cfg.LogFile), level)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closers = append(app.closers, f)
	} else {
		logging.Init(logging.Config{Level: level, Output: o.stderr, Pretty: true})
	}

	logging.Debug().
		Stringer("mode", cfg.Mode).
		Str("list", cfg.ListFile).
		Str("history", cfg.HistoryFile).
		Str("shell", cfg.Shell).
		Msg("configured")
	return app, nil
}

// Close releases the log file, if any.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// ListFile is the path of the backing list file.
func (a *App) ListFile() string { return a.cfg.ListFile }

// Usage prints the runstring help.
func (a *App) Usage() error {
	return session.WriteUsage(a.opts.stdout, a.cfg)
}

// Add appends text to the list file and shows the list.
func (a *App) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	s := session.New(a.cfg, a.deps(nil, nil, nil))
	if err := s.Add(text); err != nil {
		return err
	}
	session.NewDisplay(a.opts.stdout, a.cfg.NoColor).Show(s.List())
	return nil
}

// Run dispatches which, or prompts for input when which is empty. "l" shows
// the list and then prompts; anything else is dispatched once. params are
// inserted after the program name of executed commands.
func (a *App) Run(ctx context.Context, which string, params []string) Outcome {
	input, hist := a.opts.input, a.opts.history
	if input == nil || hist == nil {
		h := lineedit.NewHistory(a.cfg.HistoryLimit)
		h.Fs = a.opts.fs
		rl, err := lineedit.New(h)
		if err != nil {
			return Outcome{Kind: DispatchFailed, Err: fmt.Errorf("open prompt: %w", err)}
		}
		defer rl.Close()
		input, hist = rl, rl
	}

	exec, err := a.newRunner()
	if err != nil {
		return Outcome{Kind: DispatchFailed, Err: err}
	}
	return session.New(a.cfg, a.deps(input, hist, exec)).Run(ctx, which, params)
}

func (a *App) newRunner() (runner.Runner, error) {
	if a.cfg.Shell == config.ShellSystem {
		r := runner.NewSystem()
		r.Stdin = a.opts.stdin
		return r, nil
	}
	return runner.NewInterp(a.opts.stdin)
}

func (a *App) deps(input session.LineReader, hist session.History, exec runner.Runner) session.Deps {
	return session.Deps{
		Store:    a.store,
		Input:    input,
		History:  hist,
		Runner:   exec,
		Reporter: a.reporter,
		Editor:   editor.Terminal{Command: editor.Name(a.cfg.Editor, os.LookupEnv)},
		Picker:   tui.NewPicker(),
		Help:     a.opts.help,
		Out:      a.opts.stdout,
		Fs:       a.opts.fs,
	}
}
