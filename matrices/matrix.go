package matrices

import (
	"fmt"
	"slices"

	"github.com/reusee/knot/fields"
)

// Matrix is a dense row-major matrix over the field whose row and column
// counts are given by handles.
type Matrix struct {
	Rows Handle
	Cols Handle
	Data []fields.Element
}

// New returns a zero matrix.
func New(rows, cols Handle) (*Matrix, error) {
	if err := rows.Validate(); err != nil {
		return nil, err
	}
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]fields.Element, rows.Dim()*cols.Dim()),
	}, nil
}

// FromInts builds a matrix from row-major integers, reducing each into the field.
func FromInts(rows, cols Handle, values ...int) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != len(m.Data) {
		return nil, fmt.Errorf("%d values for a %dx%d matrix: %w", len(values), rows.Dim(), cols.Dim(), ErrDimensionMismatch)
	}
	for i, v := range values {
		m.Data[i] = fields.Reduce(v)
	}
	return m, nil
}

func MustFromInts(rows, cols Handle, values ...int) *Matrix {
	m, err := FromInts(rows, cols, values...)
	if err != nil {
		panic(err)
	}
	return m
}

func Identity(h Handle) (*Matrix, error) {
	m, err := New(h, h)
	if err != nil {
		return nil, err
	}
	n := h.Dim()
	for i := range n {
		m.Data[i*n+i] = 1
	}
	return m, nil
}

// Unit is the 1x1 seed used for a pending register nothing was folded into.
func Unit() *Matrix {
	return &Matrix{
		Rows: UnitHandle,
		Cols: UnitHandle,
		Data: []fields.Element{1},
	}
}

// Empty is the empty diagram, the identity of the tensor product.
func Empty() *Matrix {
	return &Matrix{
		Rows: EmptyHandle,
		Cols: EmptyHandle,
		Data: []fields.Element{
			1, 0,
			0, 1,
		},
	}
}

func (m *Matrix) NumRows() int {
	return m.Rows.Dim()
}

func (m *Matrix) NumCols() int {
	return m.Cols.Dim()
}

func (m *Matrix) At(i, j int) fields.Element {
	return m.Data[i*m.NumCols()+j]
}

func (m *Matrix) Set(i, j int, v fields.Element) {
	m.Data[i*m.NumCols()+j] = v % fields.Modulus
}

func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		Rows: m.Rows,
		Cols: m.Cols,
		Data: slices.Clone(m.Data),
	}
}

func (m *Matrix) sameShape(other *Matrix) error {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return fmt.Errorf("handles %dx%d and %dx%d: %w", m.Rows, m.Cols, other.Rows, other.Cols, ErrDimensionMismatch)
	}
	return nil
}
