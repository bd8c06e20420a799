// Package editor opens files in the user's terminal editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"mvdan.cc/sh/v3/shell"
)

// Name picks the editor command. An explicit override wins; otherwise
// $EDITOR, falling back to vim when unset and vi when set but empty.
func Name(override string, lookupEnv func(string) (string, bool)) string {
	if override != "" {
		return override
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	v, ok := lookupEnv("EDITOR")
	switch {
	case !ok:
		return "vim"
	case v == "":
		return "vi"
	default:
		return v
	}
}

// Terminal runs an editor attached to the current terminal.
type Terminal struct {
	Command string
}

// Edit blocks until the editor exits.
func (t Terminal) Edit(path string) error {
	args, err := shell.Fields(t.Command, os.Getenv)
	if err != nil {
		return fmt.Errorf("parse editor %q: %w", t.Command, err)
	}
	if len(args) == 0 {
		return errors.New("no editor configured")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", args[0], err)
	}
	return nil
}
