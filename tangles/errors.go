package tangles

import (
	"errors"

	"github.com/reusee/e5"
)

var (
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrEmptyRegister = errors.New("empty register")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)
