package runner

import (
	"os/exec"
	"strings"
)

// Shell describes how a system shell runs one command string.
type Shell interface {
	Args(command string) []string
	Name() string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{ Path string }

func (s *ZshShell) Args(command string) []string {
	return []string{s.Path, "-c", command}
}

func (s *ZshShell) Name() string {
	return "zsh"
}

// BashShell implements Shell for Bash.
type BashShell struct{ Path string }

func (s *BashShell) Args(command string) []string {
	return []string{s.Path, "-c", command}
}

func (s *BashShell) Name() string {
	return "bash"
}

// PosixShell is the /bin/sh fallback.
type PosixShell struct{}

func (s *PosixShell) Args(command string) []string {
	return []string{"/bin/sh", "-c", command}
}

func (s *PosixShell) Name() string {
	return "sh"
}

// DetectShell picks a shell from $SHELL, falling back to bash on PATH and
// then /bin/sh.
func DetectShell(shellPath string) Shell {
	switch {
	case strings.Contains(shellPath, "zsh"):
		return &ZshShell{Path: shellPath}
	case strings.Contains(shellPath, "bash"):
		return &BashShell{Path: shellPath}
	}
	if p, err := exec.LookPath("bash"); err == nil {
		return &BashShell{Path: p}
	}
	return &PosixShell{}
}
