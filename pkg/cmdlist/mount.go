package cmdlist

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Flag is the host program argument that hands control to the command list.
const Flag = "--cl"

// Mount runs the command list inside a host program. argv is the host's
// full argument vector, program name first.
//
// When argv does not start with --cl, handled is false and the host should
// carry on with its own work; with no arguments at all a short hint is
// printed first. Otherwise the command list runs and handled is true:
//
//	host --cl            show the list and prompt
//	host --cl l          same
//	host --cl h          print usage
//	host --cl ag TEXT    add TEXT, show the list and prompt
//	host --cl N [ARGS]   run entry N with ARGS inserted after its program name
//
// err is set only when the command list could not start.
func Mount(ctx context.Context, argv []string, opts ...Option) (handled bool, out Outcome, err error) {
	if len(argv) == 0 {
		return false, out, nil
	}
	host := filepath.Base(argv[0])

	if len(argv) == 1 {
		o := defaultOptions()
		for _, opt := range opts {
			opt(&o)
		}
		fmt.Fprintf(o.stdout, "\n=======================================\nFor command list help, enter:\n\n%s %s h\n=======================================\n\n", host, Flag)
		return false, out, nil
	}
	if argv[1] != Flag {
		return false, out, nil
	}

	app, err := Open(Embedded, argv[0], opts...)
	if err != nil {
		return true, out, err
	}
	defer app.Close()

	which, params := "l", []string(nil)
	if len(argv) > 2 {
		which, params = argv[2], argv[3:]
	}

	switch which {
	case "h":
		fmt.Fprintf(app.opts.stdout, "=======================================\n\n%s uses the command list feature.\n\n=======================================\n", host)
		return true, Outcome{Kind: Quit}, app.Usage()
	case "ag":
		if err := app.Add(strings.Join(params, " ")); err != nil {
			app.reporter.Reportf("add to command list: %v", err)
		}
		which, params = "", nil
	}
	return true, app.Run(ctx, which, params), nil
}
