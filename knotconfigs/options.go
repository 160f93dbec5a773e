package knotconfigs

import (
	"fmt"

	"github.com/reusee/knot/cmds"
	"github.com/reusee/knot/configs"
	"github.com/reusee/knot/matrices"
	"github.com/reusee/knot/tangles"
	"github.com/reusee/knot/vars"
)

var (
	terminatorsFlag = cmds.Var[string]("-terminators", "line terminators: comma, newline or both")
	variablesFlag   = cmds.Toggle("-variables", "enable variable slots a-z and A-Z")
	maxHandleFlag   = cmds.Var[int]("-max-handle", "largest handle a line may reach")
)

const minHandle = matrices.EmptyHandle

type optionFlags struct {
	terminators string
	variables   cmds.Optional[bool]
	maxHandle   int
}

// Options merges flags over config values over defaults.
func (Module) Options(
	loader configs.Loader,
) tangles.Options {
	opts, err := resolveOptions(loader, optionFlags{
		terminators: *terminatorsFlag,
		variables:   *variablesFlag,
		maxHandle:   *maxHandleFlag,
	})
	if err != nil {
		panic(err)
	}
	return opts
}

func resolveOptions(loader configs.Loader, flags optionFlags) (opts tangles.Options, err error) {
	opts = tangles.DefaultOptions()

	// terminators
	configTerminators, _, err := configs.Lookup[string](loader, "terminators")
	if err != nil {
		return
	}
	terminators := vars.FirstNonZero(flags.terminators, configTerminators)
	if err = opts.Terminators.UnmarshalText([]byte(terminators)); err != nil {
		return opts, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// variables
	variables, ok, err := configs.Lookup[bool](loader, "variables")
	if err != nil {
		return
	}
	if ok {
		opts.Variables = variables
	}
	opts.Variables = flags.variables.Or(opts.Variables)

	// max handle
	configMaxHandle, _, err := configs.Lookup[int](loader, "max_handle")
	if err != nil {
		return
	}
	if maxHandle := vars.FirstNonZero(flags.maxHandle, configMaxHandle); maxHandle != 0 {
		h := matrices.Handle(maxHandle)
		if h < minHandle || h > matrices.MaxHandle {
			return opts, fmt.Errorf("%w: max handle %d out of [%d, %d]", ErrInvalidConfig, maxHandle, minHandle, matrices.MaxHandle)
		}
		opts.MaxHandle = h
	}

	return opts, nil
}
