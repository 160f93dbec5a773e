package matrices

import (
	"fmt"

	"github.com/reusee/knot/fields"
)

// Multiply composes diagrams vertically: a on top, b below.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if a.Cols != b.Rows {
		return nil, fmt.Errorf("multiply %dx%d by %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrDimensionMismatch)
	}
	ret, err := New(a.Rows, b.Cols)
	if err != nil {
		return nil, err
	}
	r := a.NumRows()
	m := a.NumCols()
	c := b.NumCols()
	for i := range r {
		row := a.Data[i*m : (i+1)*m]
		for j := range c {
			// each product is below 521^2, fib(20) of them fit in uint64
			var sum uint64
			for x, v := range row {
				if v == 0 {
					continue
				}
				sum += uint64(v) * uint64(b.Data[x*c+j])
			}
			ret.Data[i*c+j] = fields.Element(sum % fields.Modulus)
		}
	}
	return ret, nil
}
