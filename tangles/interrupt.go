package tangles

import "github.com/reusee/knot/matrices"

// Interrupt is yielded by VM.Run each time a line is folded into pending.
type Interrupt struct {
	// Line counts folded lines from 1.
	Line int
	// Pos is the terminator that closed the line.
	Pos Pos
	// Folded is the line's diagram.
	Folded *matrices.Matrix
	// Pending is the composition after the fold.
	Pending *matrices.Matrix
}
