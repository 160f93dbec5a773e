package matrices

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultPrintLimit is the largest entry count Format prints.
const DefaultPrintLimit = 1000

// Format pretty prints rows of fixed width entries. Matrices with more than
// limit entries get a one line notice instead. limit <= 0 means no limit.
func (m *Matrix) Format(w io.Writer, limit int) error {
	r := m.NumRows()
	c := m.NumCols()
	if limit > 0 && r*c > limit {
		_, err := fmt.Fprintf(w, "%d by %d is too big to pretty print.\n", r, c)
		return err
	}
	bw := bufio.NewWriter(w)
	for i := range r {
		bw.WriteString("[ ")
		for j := range c {
			fmt.Fprintf(bw, "%5d ", m.At(i, j))
		}
		bw.WriteString("]\n")
	}
	bw.WriteString("\n")
	return bw.Flush()
}

func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.Format(&sb, 0)
	return sb.String()
}
