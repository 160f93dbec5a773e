package logs

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// Span identifies one evaluation in the logs.
type Span string

type spanKey struct{}

// SpanKey holds the current Span in a context.
var SpanKey = spanKey{}

// SpanFromContext returns the span ctx carries, or "" outside any span.
func SpanFromContext(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

// NewSpan starts a span under parent. An empty parent means the span
// already in ctx, so nested evaluations chain without passing ids around.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := SpanFromContext(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var attrs []any
		if parent != "" {
			attrs = append(attrs, "parent", parent)
		}
		if creator != "" && creator != parent {
			attrs = append(attrs, "creator", creator)
		}
		logger.DebugContext(ctx, "span", attrs...)

		return ctx, span
	}
}

// WrapSpan attaches the current span to err so failures can be matched
// with their log lines.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanFromContext(ctx)
	if span == "" {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
