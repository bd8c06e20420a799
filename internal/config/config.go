// Package config builds the immutable session configuration: which list and
// history files to use, how the tool was invoked, and user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const Version = "0.3.0"

// Mode is how the command list was invoked.
type Mode int

const (
	Standalone Mode = iota
	Embedded
)

func (m Mode) String() string {
	if m == Embedded {
		return "embedded"
	}
	return "standalone"
}

const (
	ShellInterp = "interp"
	ShellSystem = "system"
)

// Config is resolved once at startup and passed to every component.
type Config struct {
	Mode Mode

	ScriptPath string // Absolute path of the invoking program
	ScriptDir  string // Directory used for list files and executable lookup
	ScriptName string // Base name of the invoking program
	ToolName   string // Name the command list tool itself goes by

	EnvVarName  string // <scriptBase>_cl_file
	ListFile    string
	HistoryFile string

	// LastCommand seeds the "Last:" placeholder on load.
	LastCommand string

	Editor       string
	HistoryLimit int
	Shell        string
	NoColor      bool
	LogLevel     string
	LogFile      string
}

// Options are the raw inputs to Resolve.
type Options struct {
	Mode        Mode
	ScriptPath  string // usually os.Args[0]
	ToolName    string
	ListFile    string // explicit override
	LastCommand string
	Settings    Settings
	Fs          afero.Fs
	Getenv      func(string) string
	LookPath    func(string) (string, error)
}

// Resolve derives file locations from the invoking script.
//
// The list file lives next to the script as <script>_cl_file. When
// <scriptBase>_cl_file is set in the environment its value is appended as an
// identity suffix. Without it, a missing shared file falls back to a per-user
// file suffixed with the login name.
func Resolve(opts Options) (Config, error) {
	if opts.ScriptPath == "" {
		return Config{}, errors.New("config: missing script path")
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}

	// A bare name was found through PATH, not in the working directory.
	script := opts.ScriptPath
	if !strings.ContainsAny(script, `/\`) {
		if p, err := opts.LookPath(script); err == nil {
			script = p
		}
	}

	abs, err := filepath.Abs(script)
	if err != nil {
		return Config{}, fmt.Errorf("config: resolve script path: %w", err)
	}
	resolved := abs
	if r, err := filepath.EvalSymlinks(abs); err == nil {
		resolved = r
	}

	name := filepath.Base(abs)
	dir := filepath.Dir(resolved)

	cfg := Config{
		Mode:         opts.Mode,
		ScriptPath:   abs,
		ScriptDir:    dir,
		ScriptName:   name,
		ToolName:     opts.ToolName,
		EnvVarName:   EnvVarName(name),
		LastCommand:  opts.LastCommand,
		Editor:       opts.Settings.Editor,
		HistoryLimit: opts.Settings.HistoryLimit,
		Shell:        opts.Settings.Shell,
		NoColor:      opts.Settings.NoColor,
		LogLevel:     opts.Settings.LogLevel,
		LogFile:      opts.Settings.LogFile,
	}
	if cfg.ToolName == "" {
		cfg.ToolName = name
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Shell == "" {
		cfg.Shell = ShellInterp
	}

	suffix := opts.Getenv(cfg.EnvVarName)
	cfg.ListFile, cfg.HistoryFile = filesFor(dir, name, suffix)
	if suffix == "" {
		if ok, _ := afero.Exists(opts.Fs, cfg.ListFile); !ok {
			if u := currentUser(opts.Getenv); u != "" {
				cfg.ListFile, cfg.HistoryFile = filesFor(dir, name, u)
			}
		}
	}

	if opts.ListFile != "" {
		cfg.ListFile = opts.ListFile
	}
	return cfg, nil
}

// EnvVarName is the identity variable for a script; shells reject dots in names.
func EnvVarName(scriptName string) string {
	base, _, _ := strings.Cut(scriptName, ".")
	return base + "_cl_file"
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// HostNames are the spellings of the invoking script that should never be
// recorded as a last command.
func (c Config) HostNames() []string {
	base, _, _ := strings.Cut(c.ScriptName, ".")
	return []string{c.ScriptName, base + ".sh"}
}

func filesFor(dir, name, suffix string) (list, history string) {
	list = filepath.Join(dir, name+"_cl_file")
	history = filepath.Join(dir, name+"_history_file")
	if suffix != "" {
		list += "_" + suffix
		history += "_" + suffix
	}
	return list, history
}

func currentUser(getenv func(string) string) string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows reports DOMAIN\name.
		return filepath.Base(strings.ReplaceAll(u.Username, `\`, "/"))
	}
	return getenv("USER")
}
