package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"cmdlist/internal/model"

	"github.com/spf13/afero"
)

var ErrUnsetVariable = errors.New("environment variable not set")

// UnsetVarError is returned when a $VAR token names an unset variable.
type UnsetVarError struct {
	Name    string
	Command string
}

func (e *UnsetVarError) Error() string {
	return fmt.Sprintf("environment variable $%s is not set for command: %s", e.Name, e.Command)
}

func (e *UnsetVarError) Is(target error) bool { return target == ErrUnsetVariable }

// $NAME or ${NAME} at the start of a token, followed by anything.
var envTokenRe = regexp.MustCompile(`^\$(?:\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))(.*)$`)

// Resolver turns a raw list entry into a runnable command line.
type Resolver struct {
	// ScriptDir is searched for bare program names that do not exist in Cwd.
	ScriptDir string
	// Cwd is the directory relative paths are checked against; "" means the
	// process working directory.
	Cwd       string
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)
}

// Resolved is the outcome of resolving one command.
type Resolved struct {
	// Raw is the command after parameter insertion but before substitution.
	// It is what gets recorded in history.
	Raw string
	// Command is the final string handed to the shell.
	Command string
	// Skip is set for comment lines, which are never executed.
	Skip bool
}

// Resolve splits text into tokens, inserts params after the program name,
// substitutes leading $VAR tokens and rewrites a bare program name to the
// script directory when that is where it lives.
func (r Resolver) Resolve(text string, params []string) (Resolved, error) {
	text = model.StripLast(text)
	if model.IsComment(text) {
		return Resolved{Skip: true}, nil
	}

	tokens := InsertParams(SplitTokens(text), params)
	raw := strings.Join(tokens, " ")

	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	tokens, err := ExpandEnv(tokens, lookup, text)
	if err != nil {
		return Resolved{Raw: raw}, err
	}

	if len(tokens) > 0 && tokens[0] != "cd" {
		tokens[0] = r.ResolveExecutable(tokens[0])
	}
	return Resolved{Raw: raw, Command: strings.Join(tokens, " ")}, nil
}

// SplitTokens collapses each run of exactly two spaces to one, in a single
// pass, and splits on single spaces.
func SplitTokens(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "  ", " "), " ")
}

// InsertParams places params right after the first token, in order.
func InsertParams(tokens, params []string) []string {
	if len(params) == 0 || len(tokens) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens)+len(params))
	out = append(out, tokens[0])
	out = append(out, params...)
	out = append(out, tokens[1:]...)
	return out
}

// ExpandEnv substitutes tokens that start with $NAME or ${NAME}. Anything
// after the name is kept, so "$HOME/bin" works.
func ExpandEnv(tokens []string, lookup func(string) (string, bool), command string) ([]string, error) {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		m := envTokenRe.FindStringSubmatch(tok)
		if m == nil {
			out[i] = tok
			continue
		}
		name := m[1]
		if name == "" {
			name = m[2]
		}
		val, ok := lookup(name)
		if !ok {
			return nil, &UnsetVarError{Name: name, Command: command}
		}
		out[i] = val + m[3]
	}
	return out, nil
}

// ResolveExecutable returns scriptDir/token when token has no directory part,
// is not a file relative to the working directory, and scriptDir/token is a
// regular file. Otherwise token is returned unchanged.
func (r Resolver) ResolveExecutable(token string) string {
	if token == "" || strings.ContainsRune(token, '/') || r.ScriptDir == "" {
		return token
	}
	local := token
	if r.Cwd != "" {
		local = filepath.Join(r.Cwd, token)
	}
	if r.isRegular(local) {
		return token
	}
	candidate := filepath.Join(r.ScriptDir, token)
	if r.isRegular(candidate) {
		return candidate
	}
	return token
}

func (r Resolver) isRegular(path string) bool {
	fs := r.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	st, err := fs.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
