package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/knot/logs"
	"go.starlark.net/starlark"
)

// Inspect evaluates one starlark expression against globals and returns its printed form.
type Inspect func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, expr string, globals map[string]any) (ret string, err error) {
		// Go functions bound into globals may panic
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("inspect %q: panic: %v", expr, p)
			}
		}()

		thread := &starlark.Thread{
			Name: "inspect",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "inspect print", "msg", msg)
			},
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<inspect>", expr, toStringDict(globals))
		if err != nil {
			return "", fmt.Errorf("inspect %q: %w", expr, err)
		}
		logger.DebugContext(ctx, "inspect",
			"expr", expr,
			"type", value.Type(),
		)
		return value.String(), nil
	}
}
