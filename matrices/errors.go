package matrices

import "errors"

var ErrDimensionMismatch = errors.New("dimension mismatch")
