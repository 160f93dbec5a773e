package fibs

import (
	"errors"
	"fmt"
)

// MaxIndex is the largest Fibonacci index the tables cover.
const MaxIndex = 20

var ErrResourceLimitExceeded = errors.New("resource limit exceeded")

var table = func() (ret [MaxIndex + 1]int) {
	ret[1] = 1
	for i := 2; i <= MaxIndex; i++ {
		ret[i] = ret[i-1] + ret[i-2]
	}
	return
}()

// Fib returns fib(k) for k in [0, MaxIndex].
func Fib(k int) (int, error) {
	if k < 0 || k > MaxIndex {
		return 0, fmt.Errorf("fibonacci index %d out of [0, %d]: %w", k, MaxIndex, ErrResourceLimitExceeded)
	}
	return table[k], nil
}

// MustFib is Fib for indices already validated by the caller.
func MustFib(k int) int {
	n, err := Fib(k)
	if err != nil {
		panic(err)
	}
	return n
}

// Len is the number of precomputed Fibonacci word bits, fib(MaxIndex).
func Len() int {
	return table[MaxIndex]
}
