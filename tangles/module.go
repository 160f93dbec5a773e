package tangles

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/knot/logs"
	"github.com/reusee/knot/matrices"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Preludes are evaluated before every request, in order, to populate variables.
type Preludes []*Source

type Request struct {
	Name  string
	Input string
	// Registers carries variables between requests. nil starts empty.
	Registers *Registers
	OnFold    func(*Interrupt) error
}

type EvaluateFunc func(ctx context.Context, req Request) (*matrices.Matrix, error)

func (Module) Evaluate(
	logger logs.Logger,
	newSpan logs.NewSpan,
	opts Options,
	preludes Preludes,
) EvaluateFunc {
	return func(ctx context.Context, req Request) (ret *matrices.Matrix, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, wrap(err))
			}
		}()

		regs := req.Registers
		if regs == nil {
			regs = new(Registers)
		}

		for _, prelude := range preludes {
			logger.DebugContext(ctx, "prelude", "name", prelude.Name)
			if _, err := Evaluate(prelude, regs, opts, nil); err != nil {
				return nil, err
			}
			regs.ResetLines()
		}

		logger.InfoContext(ctx, "evaluate",
			"name", req.Name,
			"len", len(req.Input),
			"terminators", opts.Terminators,
			"variables", opts.Variables,
		)
		ret, err = Evaluate(NewSource(req.Name, req.Input), regs, opts, func(intr *Interrupt) error {
			logger.DebugContext(ctx, "fold",
				"line", intr.Line,
				"rows", intr.Folded.Rows,
				"cols", intr.Folded.Cols,
				"pending_rows", intr.Pending.Rows,
				"pending_cols", intr.Pending.Cols,
			)
			if req.OnFold != nil {
				return req.OnFold(intr)
			}
			return nil
		})
		if err != nil {
			logger.DebugContext(ctx, "evaluate failed", "error", err)
			return nil, err
		}

		logger.InfoContext(ctx, "result",
			"rows", ret.Rows,
			"cols", ret.Cols,
		)
		return ret, nil
	}
}
