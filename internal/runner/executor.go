package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"cmdlist/internal/logging"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

var ErrExecution = errors.New("command failed")

// ExecError reports a command that ran and exited non-zero.
type ExecError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

func (e *ExecError) Is(target error) bool { return target == ErrExecution }

// Result holds what a finished command produced.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Combined is stdout followed by stderr.
func (r Result) Combined() string {
	return r.Stdout + r.Stderr
}

// Runner executes one command line and captures its output. A non-zero exit
// is reported in Result, not as an error; errors mean the command could not
// be run at all.
type Runner interface {
	Run(ctx context.Context, command string) (Result, error)
	// Dir is the directory the next command starts in.
	Dir() string
}

// InterpRunner runs commands in an in-process POSIX shell. State such as the
// working directory carries over between commands, so "cd" sticks.
type InterpRunner struct {
	runner *interp.Runner
	stdin  io.Reader
}

// NewInterp creates a shell rooted at the process working directory.
func NewInterp(stdin io.Reader) (*InterpRunner, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	r, err := interp.New(interp.StdIO(stdin, io.Discard, io.Discard))
	if err != nil {
		return nil, fmt.Errorf("create shell: %w", err)
	}
	return &InterpRunner{runner: r, stdin: stdin}, nil
}

func (s *InterpRunner) Dir() string {
	return s.runner.Dir
}

func (s *InterpRunner) Run(ctx context.Context, command string) (Result, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	prog, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return Result{}, fmt.Errorf("parse %q: %w", command, err)
	}

	var stdout, stderr bytes.Buffer
	interp.StdIO(s.stdin, &stdout, &stderr)(s.runner)

	err = s.runner.Run(ctx, prog)
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			res.ExitCode = int(status)
			err = nil
		} else if ctx.Err() != nil {
			err = ctx.Err()
		}
	}
	logging.Debug().Str("command", command).Int("exit", res.ExitCode).Str("dir", s.runner.Dir).Msg("ran command")
	return res, err
}

// SystemRunner hands each command to an external shell process.
type SystemRunner struct {
	Shell Shell
	Stdin io.Reader
}

// NewSystem detects the user's shell from $SHELL.
func NewSystem() *SystemRunner {
	return &SystemRunner{Shell: DetectShell(os.Getenv("SHELL")), Stdin: os.Stdin}
}

func (s *SystemRunner) Dir() string {
	wd, _ := os.Getwd()
	return wd
}

func (s *SystemRunner) Run(ctx context.Context, command string) (Result, error) {
	args := s.Shell.Args(command)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = os.Environ()
	cmd.Stdin = s.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			err = nil
		} else if ctx.Err() != nil {
			err = ctx.Err()
		}
	}
	logging.Debug().Str("shell", s.Shell.Name()).Str("command", command).Int("exit", res.ExitCode).Msg("ran command")
	return res, err
}
