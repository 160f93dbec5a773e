package knotconfigs

import (
	"fmt"

	"github.com/reusee/knot/cmds"
	"github.com/reusee/knot/configs"
	"github.com/reusee/knot/matrices"
)

// PrintLimit is the largest entry count printed in full.
type PrintLimit int

// Trace prints the pending matrix after every folded line.
type Trace bool

// StatePath is where variables persist between runs. Empty disables it.
type StatePath string

var (
	printLimitFlag = cmds.Var[int]("-print-limit", "largest entry count printed in full")
	traceFlag      = cmds.Toggle("-trace", "print the pending matrix after every line")
	statePathFlag  = cmds.Var[string]("-state", "file keeping variables between runs")
)

func (Module) PrintLimit(
	loader configs.Loader,
) PrintLimit {
	limit, err := resolvePrintLimit(loader, *printLimitFlag)
	if err != nil {
		panic(err)
	}
	return limit
}

func resolvePrintLimit(loader configs.Loader, flag int) (PrintLimit, error) {
	if flag < 0 {
		return 0, fmt.Errorf("%w: negative print limit %d", ErrInvalidConfig, flag)
	}
	if flag > 0 {
		return PrintLimit(flag), nil
	}
	limit, ok, err := configs.Lookup[int](loader, "print_limit")
	if err != nil {
		return 0, err
	}
	if ok {
		return PrintLimit(limit), nil
	}
	return matrices.DefaultPrintLimit, nil
}

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return resolveTrace(loader, *traceFlag)
}

func resolveTrace(loader configs.Loader, flag cmds.Optional[bool]) Trace {
	return Trace(flag.Or(configs.First[bool](loader, "trace")))
}

func (Module) StatePath() StatePath {
	return StatePath(*statePathFlag)
}
