package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/knot/cmds"
	"github.com/reusee/knot/debugs"
	"github.com/reusee/knot/knotconfigs"
	"github.com/reusee/knot/logs"
	"github.com/reusee/knot/modes"
	"github.com/reusee/knot/tangles"
)

var (
	tapFlag      = cmds.Switch("-tap", "open a starlark REPL over the result")
	inspectExprs = cmds.Collect[string]("-inspect", "print a starlark expression over the result")
)

func main() {
	defer func() {
		if p := recover(); p != nil {
			err, ok := p.(error)
			if !ok {
				panic(p)
			}
			fail(err)
		}
	}()

	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		evaluate tangles.EvaluateFunc,
		printLimit knotconfigs.PrintLimit,
		trace knotconfigs.Trace,
		statePath knotconfigs.StatePath,
		tap debugs.Tap,
		inspect debugs.Inspect,
	) {
		r := runner{
			Evaluate:     evaluate,
			PrintLimit:   int(printLimit),
			Trace:        bool(trace),
			StatePath:    string(statePath),
			Inspect:      inspect,
			InspectExprs: *inspectExprs,
		}
		if *tapFlag {
			r.Tap = tap
		}
		if err := r.run(ctx, os.Stdin, os.Stdout); err != nil {
			logger.Debug("run failed", "error", err)
			fail(err)
		}
	})
}

// fail prints a one line diagnostic to stdout and the full error to stderr.
func fail(err error) {
	msg := err.Error()
	first, rest, _ := strings.Cut(msg, "\n")
	fmt.Fprintf(os.Stdout, "ERROR: %s\n", first)
	if rest != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}
