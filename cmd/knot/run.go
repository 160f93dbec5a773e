package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reusee/knot/debugs"
	"github.com/reusee/knot/fibs"
	"github.com/reusee/knot/matrices"
	"github.com/reusee/knot/tangles"
	"go.starlark.net/starlark"
)

type runner struct {
	Evaluate     tangles.EvaluateFunc
	PrintLimit   int
	Trace        bool
	StatePath    string
	Tap          debugs.Tap
	Inspect      debugs.Inspect
	InspectExprs []string
}

// run evaluates one tangle from stdin. Nothing reaches stdout unless the
// whole evaluation succeeds.
func (r runner) run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	input, err := readTangle(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	regs := new(tangles.Registers)
	if r.StatePath != "" {
		if err := restoreState(r.StatePath, regs); err != nil {
			return err
		}
	}

	out := new(bytes.Buffer)
	var onFold func(*tangles.Interrupt) error
	if r.Trace {
		onFold = func(intr *tangles.Interrupt) error {
			fmt.Fprintf(out, "line %d:\n", intr.Line)
			return intr.Pending.Format(out, r.PrintLimit)
		}
	}

	result, err := r.Evaluate(ctx, tangles.Request{
		Name:      "<stdin>",
		Input:     input,
		Registers: regs,
		OnFold:    onFold,
	})
	if err != nil {
		return err
	}
	if err := result.Format(out, r.PrintLimit); err != nil {
		return err
	}

	globals := map[string]any{
		"result":    result,
		"registers": regs,
		"dim": starlark.NewBuiltin("dim", dimBuiltin),
		"fib": fibs.Fib,
	}
	for _, expr := range r.InspectExprs {
		value, err := r.Inspect(ctx, expr, globals)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s = %s\n", expr, value)
	}

	if r.StatePath != "" {
		if err := saveState(r.StatePath, regs); err != nil {
			return err
		}
	}

	if _, err := out.WriteTo(stdout); err != nil {
		return err
	}

	// the result is on screen before the REPL takes stdin
	if r.Tap != nil {
		r.Tap(ctx, "result", globals)
	}

	return nil
}

// dimBuiltin is dim(handle), the basis dimension of a handle.
func dimBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var h int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &h); err != nil {
		return nil, err
	}
	handle := matrices.Handle(h)
	if err := handle.Validate(); err != nil {
		return nil, err
	}
	return starlark.MakeInt(handle.Dim()), nil
}

func restoreState(path string, regs *tangles.Registers) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	if err := regs.RestoreVariables(f); err != nil {
		return fmt.Errorf("restore state %s: %w", path, err)
	}
	return nil
}

func saveState(path string, regs *tangles.Registers) error {
	buf := new(bytes.Buffer)
	if err := regs.SnapshotVariables(buf); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".knot-state-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := buf.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
