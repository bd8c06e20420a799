package session

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"cmdlist/internal/config"
)

// HelpProvider shows the host program's own help screen for the "s" command.
// A nil HelpProvider means none is registered.
type HelpProvider interface {
	ShowHelp()
}

type helpFunc struct {
	fn   func(args ...string)
	args []string
}

func (h helpFunc) ShowHelp() { h.fn(h.args...) }

// ProvideHelp wraps a host help function and the arguments to call it with.
func ProvideHelp(fn func(args ...string), args ...string) HelpProvider {
	if fn == nil {
		return nil
	}
	return helpFunc{fn: fn, args: args}
}

func writeHelp(w io.Writer, cfg config.Config, hasHostHelp bool) {
	lines := []string{
		"#   = Run entry number #.  For easier reading for longer entries, entry numbers show up at the end of entries also, e.g., 3 long_entry :3",
		"#e  = Edit and run entry #.",
		"l   = Show the command list.",
		"b   = Browse the command list full screen.",
		"key = Use arrow keys to access this command list's history.",
		"al  = Add the last command executed to the command list.",
		"d N = Delete command N.",
		"m N1,N2 = Move N1 command to just after N2 (N2 = 0 moves it to the top).",
		"e   = Edit your command list file using $EDITOR.  Manually add/delete entries as well.",
		"h   = Show this help.",
		"r   = Show runstring help.",
	}
	if hasHostHelp {
		lines = append(lines, "s   = Show your program "+cfg.ScriptName+" help screen.")
	}
	lines = append(lines,
		"q   = Quit.",
		"cmd = Type in any os command (e.g., ls) or program runstring with no enclosing quotes.",
	)
	if cfg.Mode == config.Embedded {
		lines = append(lines, "Embedded global command list file = "+cfg.ListFile)
	} else {
		lines = append(lines, "Standalone global command list file = "+cfg.ListFile)
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

var usageTmpl = template.Must(template.New("usage").Parse(`
{{- if .Embedded -}}
{{.Script}} has a built-in command list.

Runstrings--

   {{.Script}} --cl h
       Displays this help screen.

   {{.Script}} --cl
   or
   {{.Script}} --cl l
       Displays the command list interactive loop menu.

   {{.Script}} --cl 1..N [extra args...]
       Executes a command list entry directly without displaying the list.
       Extra args are inserted right after the entry's program name.

   {{.Script}} --cl ag runstring_with_no_enclosing_quotes
       Adds a command to the list, then shows the list.
{{- else -}}
{{.Script}} is a command list: a saved, editable list of shell commands.

Runstrings--

   {{.Script}} h
       Displays this help screen.

   {{.Script}}
   or
   {{.Script}} l
       Displays the command list interactive loop menu.

   {{.Script}} 1..N
       Executes a command list entry directly without displaying the list.

   {{.Script}} ag runstring_with_no_enclosing_quotes
       Adds a command to the list, then shows the list.

You can alias the name to make it easier to bring up:

   $ alias cl={{.Script}}
{{- end}}

The command list file can hold comments and compound entries:

   # You can include comments
   ls; who; ps
   ls | grep foo

Entries may use $VAR or ${VAR}; an unset variable stops the command.
A program name without a directory that is not found in the current
directory is looked up in {{.ScriptDir}}.

Command list file  = {{.ListFile}}
History file       = {{.HistoryFile}}

By default the file is {{.Script}}_cl_file next to {{.Script}}, shared by
everyone who runs it. When that file does not exist a per-user file
{{.Script}}_cl_file_<username> is used instead. To pick your own identity
for the file name, set:

   export {{.EnvVar}}=project4

which selects {{.Script}}_cl_file_project4.
`))

// WriteUsage prints the runstring usage text.
func WriteUsage(w io.Writer, cfg config.Config) error {
	return usageTmpl.Execute(w, map[string]any{
		"Embedded":    cfg.Mode == config.Embedded,
		"Script":      cfg.ScriptName,
		"ScriptDir":   cfg.ScriptDir,
		"ListFile":    cfg.ListFile,
		"HistoryFile": cfg.HistoryFile,
		"EnvVar":      cfg.EnvVarName,
	})
}
