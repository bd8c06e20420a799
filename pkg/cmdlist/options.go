package cmdlist

import (
	"io"
	"os"

	"cmdlist/internal/session"

	"github.com/spf13/afero"
)

// LineReader reads one line of input with defaultText pre-filled.
type LineReader interface {
	ReadLine(prompt, defaultText string) (string, error)
}

// History is the recall list behind the arrow keys.
type History interface {
	Load(path string) error
	Append(entry string)
	Persist(path string) error
}

// Option customises Open and Mount.
type Option func(*options)

type options struct {
	help         session.HelpProvider
	lastCommand  string
	listFile     string
	settingsPath string
	settingsSet  bool
	logLevel     string
	noColor      bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs

	input   LineReader
	history History
}

func defaultOptions() options {
	return options{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
	}
}

// WithHelp registers the host program's help screen for the "s" command.
// fn is called with args each time.
func WithHelp(fn func(args ...string), args ...string) Option {
	return func(o *options) { o.help = session.ProvideHelp(fn, args...) }
}

// WithLastCommand seeds the "Last:" entry shown in the list.
func WithLastCommand(command string) Option {
	return func(o *options) { o.lastCommand = command }
}

// WithListFile uses path instead of the list file derived from the program name.
func WithListFile(path string) Option {
	return func(o *options) { o.listFile = path }
}

// WithSettingsFile reads settings from path instead of the user config dir.
// An empty path disables the settings file.
func WithSettingsFile(path string) Option {
	return func(o *options) {
		o.settingsPath = path
		o.settingsSet = true
	}
}

// WithLogLevel overrides the log level from the environment and settings.
func WithLogLevel(level string) Option {
	return func(o *options) { o.logLevel = level }
}

// WithNoColor turns off colored output.
func WithNoColor() Option {
	return func(o *options) { o.noColor = true }
}

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdin = stdin
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithFs runs list, history and settings file access on fs.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithInput replaces the terminal prompt and its history.
func WithInput(input LineReader, history History) Option {
	return func(o *options) {
		o.input = input
		o.history = history
	}
}
