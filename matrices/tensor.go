package matrices

import (
	"fmt"

	"github.com/reusee/knot/fibs"
	"github.com/reusee/knot/fields"
)

// span is the range of basis indices of h that may follow a basis vector
// ending in bit: those ending in 0 may be followed by the first fib(h-1)
// vectors, those ending in 1 only by the remaining ones.
func (h Handle) span(bit uint8) (lo, hi int) {
	if bit == 0 {
		return 0, fibs.MustFib(int(h) - 1)
	}
	return fibs.MustFib(int(h) - 1), h.Dim()
}

// Tensor composes diagrams horizontally: b is placed to the right of a.
// Unlike the Kronecker product, a's basis index selects which half of b's
// basis it is paired with, keeping no two adjacent ones in the joined basis.
// The left operand needs handles of at least 2 for its word bits to cover
// b's basis exactly once.
func Tensor(a, b *Matrix) (*Matrix, error) {
	if a.Rows < 2 || a.Cols < 2 {
		return nil, fmt.Errorf("tensor onto %dx%d: %w", a.Rows, a.Cols, ErrDimensionMismatch)
	}
	ret, err := New(a.Rows.Join(b.Rows), a.Cols.Join(b.Cols))
	if err != nil {
		return nil, fmt.Errorf("tensor %dx%d with %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, err)
	}
	word := fibs.GetWord()
	aCols := a.NumCols()
	bCols := b.NumCols()
	n := 0
	for ia := range a.NumRows() {
		rowLo, rowHi := b.Rows.span(word[ia])
		for ib := rowLo; ib < rowHi; ib++ {
			for ja := range aCols {
				x := a.Data[ia*aCols+ja]
				colLo, colHi := b.Cols.span(word[ja])
				if x == 0 {
					n += colHi - colLo
					continue
				}
				for jb := colLo; jb < colHi; jb++ {
					ret.Data[n] = fields.Mul(x, b.Data[ib*bCols+jb])
					n++
				}
			}
		}
	}
	return ret, nil
}
