package matrices

import (
	"fmt"

	"github.com/reusee/knot/fibs"
)

// Handle k stands for a basis of dimension fib(k).
type Handle int

const (
	// UnitHandle is the 1x1 seed of the pending register.
	UnitHandle Handle = 1
	// EmptyHandle is the handle of the empty diagram.
	EmptyHandle Handle = 3
	// MaxHandle is the largest handle the Fibonacci tables support.
	MaxHandle Handle = fibs.MaxIndex
)

func (h Handle) Validate() error {
	if h < 1 || h > MaxHandle {
		return fmt.Errorf("handle %d out of [1, %d]: %w", h, MaxHandle, fibs.ErrResourceLimitExceeded)
	}
	return nil
}

// Dim is the basis dimension. h must be valid.
func (h Handle) Dim() int {
	return fibs.MustFib(int(h))
}

// Join is the handle of two bases placed side by side.
func (h Handle) Join(other Handle) Handle {
	return h + other - EmptyHandle
}
