package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"strings"

	"cmdlist/internal/logging"
	"cmdlist/internal/model"
	"cmdlist/internal/runner"

	"github.com/spf13/afero"
)

var (
	moveRe   = regexp.MustCompile(`^m\s+(\d+)\s*,\s*(\d+)$`)
	deleteRe = regexp.MustCompile(`^d\s+(\d+)$`)
	editRe   = regexp.MustCompile(`^(\d+)e$`)
	numberRe = regexp.MustCompile(`^\d+$`)
)

// Dispatch handles one line of input. Patterns are tried in a fixed order;
// anything unmatched runs as an ad hoc command.
func (s *Session) Dispatch(ctx context.Context, input string) LoopOutcome {
	switch input {
	case "l":
		s.list = s.display.Show(s.list)
		return continued()
	case "":
		return continued()
	case "q":
		return quit()
	case "h", "?":
		writeHelp(s.deps.Out, s.cfg, s.deps.Help != nil)
		return continued()
	case "s":
		if s.deps.Help != nil {
			s.deps.Help.ShowHelp()
		}
		return continued()
	case "r":
		if err := WriteUsage(s.deps.Out, s.cfg); err != nil {
			s.report(err.Error())
		}
		return continued()
	case "e":
		return s.editFile()
	case "b":
		return s.browse(ctx)
	case "al":
		return s.addLast()
	}

	if m := moveRe.FindStringSubmatch(input); m != nil {
		return s.move(m[1], m[2])
	}
	if strings.HasPrefix(input, "m ") {
		s.report("Usage: m N1,N2")
		return continued()
	}
	if m := deleteRe.FindStringSubmatch(input); m != nil {
		return s.remove(m[1])
	}
	if m := editRe.FindStringSubmatch(input); m != nil {
		return s.prefill(m[1])
	}
	if numberRe.MatchString(input) {
		e, ok := s.lookup(input)
		if !ok {
			return continued()
		}
		return s.execute(ctx, e.Text)
	}
	return s.execute(ctx, input)
}

func (s *Session) lookup(input string) (model.Entry, bool) {
	n, err := strconv.Atoi(input)
	if err != nil {
		s.report("Number too big = " + input)
		return model.Entry{}, false
	}
	if n <= 0 {
		s.report("Number is too small = " + input)
		return model.Entry{}, false
	}
	e, err := model.Get(s.list, n)
	if err != nil {
		s.report("Number too big = " + input)
		return model.Entry{}, false
	}
	return e, true
}

func (s *Session) editFile() LoopOutcome {
	if s.deps.Editor != nil {
		if ok, _ := afero.Exists(s.deps.Fs, s.deps.Store.Path); ok {
			if err := s.deps.Editor.Edit(s.deps.Store.Path); err != nil {
				s.report(err.Error())
			}
		}
	}
	s.reload()
	s.list = s.display.Show(s.list)
	return continued()
}

func (s *Session) browse(ctx context.Context) LoopOutcome {
	if s.deps.Picker == nil {
		s.list = s.display.Show(s.list)
		return continued()
	}
	n, edit, err := s.deps.Picker.Pick(model.Normalize(s.list))
	if err != nil {
		s.report(err.Error())
		return continued()
	}
	if n == 0 {
		return continued()
	}
	if edit {
		return s.prefill(strconv.Itoa(n))
	}
	e, ok := s.lookup(strconv.Itoa(n))
	if !ok {
		return continued()
	}
	return s.execute(ctx, e.Text)
}

func (s *Session) move(src, dst string) LoopOutcome {
	from, _ := strconv.Atoi(src)
	to, _ := strconv.Atoi(dst)
	list, err := model.Move(s.list, from, to)
	if err != nil {
		s.report(err.Error())
		return continued()
	}
	s.list = list
	if err := s.save(); err != nil {
		s.report(err.Error())
	}
	s.list = s.display.Show(s.list)
	return continued()
}

func (s *Session) remove(arg string) LoopOutcome {
	n, _ := strconv.Atoi(arg)
	if model.IndexOf(s.list, n) < 0 {
		s.report(model.NotFoundError{Ordinal: n}.Error())
		return continued()
	}
	s.list = s.display.Show(s.list)

	answer, err := s.deps.Input.ReadLine(fmt.Sprintf("Confirmation: Deleting entry %d? (y/n): ", n), "")
	if err != nil || answer != "y" {
		fmt.Fprintln(s.deps.Out, "Delete cancelled.")
		logging.Debug().Int("ordinal", n).Err(model.ErrCancelled).Msg("delete declined")
		return continued()
	}

	list, err := model.Delete(s.list, n)
	if err != nil {
		s.report(err.Error())
		return continued()
	}
	s.list = list
	if err := s.save(); err != nil {
		s.report(err.Error())
	}
	s.list = s.display.Show(s.list)
	return continued()
}

func (s *Session) addLast() LoopOutcome {
	if s.lastCommand == "" {
		fmt.Fprintln(s.deps.Out, "No last command available.")
		return continued()
	}
	if err := s.Add(s.lastCommand); err != nil {
		s.report(err.Error())
		return continued()
	}
	s.list = s.display.Show(s.list)
	return continued()
}

func (s *Session) prefill(arg string) LoopOutcome {
	e, ok := s.lookup(arg)
	if !ok {
		return continued()
	}
	s.defaultText = e.Command()
	return continued()
}

func (s *Session) resolver() runner.Resolver {
	return runner.Resolver{
		ScriptDir: s.cfg.ScriptDir,
		Cwd:       s.deps.Runner.Dir(),
		Fs:        s.deps.Fs,
	}
}

// execute resolves text and runs it. Only a non-zero exit yields
// DispatchFailed; every other problem is reported and the loop goes on.
func (s *Session) execute(ctx context.Context, text string) LoopOutcome {
	resolved, err := s.resolver().Resolve(text, s.params)
	if err != nil {
		s.report(err.Error())
		return continued()
	}
	if resolved.Skip {
		return continued()
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	res, err := s.deps.Runner.Run(runCtx, resolved.Command)
	interrupted := runCtx.Err() != nil && ctx.Err() == nil
	stop()

	switch {
	case interrupted:
		fmt.Fprintln(s.deps.Out)
		s.report("Command interrupted.")
		logging.Info().Str("command", resolved.Command).Msg("interrupted")
		return continued()
	case err != nil:
		s.report(fmt.Sprintf("Command cannot be executed: %s. %v", resolved.Command, err))
		return continued()
	case res.ExitCode != 0:
		out := res.Combined()
		for _, line := range strings.Split(out, "\n") {
			fmt.Fprintln(s.deps.Out, line)
		}
		execErr := &runner.ExecError{Command: resolved.Command, ExitCode: res.ExitCode, Output: out}
		if s.interactive {
			s.report(execErr.Error())
		}
		return failed(execErr)
	}

	if out := res.Combined(); out != "" {
		fmt.Fprint(s.deps.Out, out)
		if !strings.HasSuffix(out, "\n") {
			fmt.Fprintln(s.deps.Out)
		}
	}
	s.record(resolved.Raw)
	return continued()
}

func (s *Session) record(raw string) {
	if raw == "" || raw == s.lastCommand {
		return
	}
	s.lastCommand = raw
	s.deps.History.Append(raw)
	if err := s.deps.History.Persist(s.cfg.HistoryFile); err != nil {
		logging.Warn().Err(err).Str("path", s.cfg.HistoryFile).Msg("could not save history")
	}
}

// IsExecError reports whether an outcome failed because a command exited
// non-zero.
func IsExecError(out LoopOutcome) bool {
	return out.Kind == DispatchFailed && errors.Is(out.Err, runner.ErrExecution)
}
