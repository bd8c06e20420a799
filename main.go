package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"cmdlist/pkg/cmdlist"

	"github.com/spf13/pflag"
)

var numberRe = regexp.MustCompile(`^[0-9]+$`)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cmdlist [options] [l | h | N | ag command...]\n\n")
		fmt.Fprintf(os.Stderr, "cmdlist keeps a saved, editable list of shell commands.\n")
		fmt.Fprintf(os.Stderr, "Run entries by number, add new ones, and recall past commands with the arrow keys.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cmdlist                 # Show the list and prompt\n")
		fmt.Fprintf(os.Stderr, "  cmdlist 3               # Run entry 3 without showing the list\n")
		fmt.Fprintf(os.Stderr, "  cmdlist ag ls -la       # Add \"ls -la\" and show the list\n")
		fmt.Fprintf(os.Stderr, "  cmdlist --browse        # Pick an entry full screen\n")
		fmt.Fprintf(os.Stderr, "  cmdlist h               # Full help on list files and runstrings\n")
	}

	// Everything after the first positional argument belongs to it, so
	// "cmdlist ag ls -la" keeps -la.
	pflag.CommandLine.SetInterspersed(false)

	listFileFlag := pflag.String("cl-file", "", "Use this command list file instead of the default")
	logLevelFlag := pflag.String("log-level", "", "Log level: debug, info, warn or error (default warn)")
	noColorFlag := pflag.Bool("no-color", false, "Disable colored output")
	browseFlag := pflag.BoolP("browse", "b", false, "Browse the command list full screen")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("cmdlist version %s\n", cmdlist.Version)
		return
	}

	var opts []cmdlist.Option
	if *listFileFlag != "" {
		opts = append(opts, cmdlist.WithListFile(*listFileFlag))
	}
	if *logLevelFlag != "" {
		opts = append(opts, cmdlist.WithLogLevel(*logLevelFlag))
	}
	if *noColorFlag {
		opts = append(opts, cmdlist.WithNoColor())
	}

	app, err := cmdlist.Open(cmdlist.Standalone, os.Args[0], opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	code := run(app, pflag.Args(), *browseFlag)
	app.Close()
	os.Exit(code)
}

// run dispatches the positional arguments and returns the exit code. Quitting
// and finishing a runstring both exit 1.
func run(app *cmdlist.App, args []string, browse bool) int {
	ctx := context.Background()

	which := "l"
	switch {
	case browse:
		which = "b"
	case len(args) == 0:
	case args[0] == "l":
	case args[0] == "h":
		if err := app.Usage(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	case args[0] == "ag":
		if err := app.Add(strings.Join(args[1:], " ")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		which = ""
	case numberRe.MatchString(args[0]) && len(args) == 1:
		which = args[0]
	default:
		fmt.Fprintf(os.Stderr, "Unrecognized command = %s\n", strings.Join(args, " "))
		pflag.Usage()
		return 2
	}

	out := app.Run(ctx, which, nil)
	switch {
	case cmdlist.IsExecError(out):
		fmt.Fprintf(os.Stderr, "Command failed: %v\n", out.Err)
	case out.Kind == cmdlist.DispatchFailed && out.Err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", out.Err)
	}
	return 1
}
