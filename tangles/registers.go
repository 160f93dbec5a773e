package tangles

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/reusee/knot/matrices"
)

const NumVariables = 26

// Registers is the state one evaluation owns. A nil register is empty.
type Registers struct {
	// Accumulator is the diagram built so far within the current line.
	Accumulator *matrices.Matrix
	// Pending is the composition of all completed lines.
	Pending *matrices.Matrix
	// Variables are the slots a to z.
	Variables [NumVariables]*matrices.Matrix
}

// Release drops every register.
func (r *Registers) Release() {
	*r = Registers{}
}

// ResetLines empties accumulator and pending, keeping the variables.
func (r *Registers) ResetLines() {
	r.Accumulator = nil
	r.Pending = nil
}

type variablesSnapshot struct {
	Slots map[int]*matrices.Matrix
}

// SnapshotVariables writes the populated variable slots.
func (r *Registers) SnapshotVariables(w io.Writer) error {
	snapshot := variablesSnapshot{
		Slots: make(map[int]*matrices.Matrix),
	}
	for i, mat := range r.Variables {
		if mat != nil {
			snapshot.Slots[i] = mat
		}
	}
	return gob.NewEncoder(w).Encode(snapshot)
}

// RestoreVariables replaces the variable slots with a snapshot.
func (r *Registers) RestoreVariables(reader io.Reader) error {
	var snapshot variablesSnapshot
	if err := gob.NewDecoder(reader).Decode(&snapshot); err != nil {
		return err
	}
	var variables [NumVariables]*matrices.Matrix
	for i, mat := range snapshot.Slots {
		if i < 0 || i >= NumVariables {
			return fmt.Errorf("variable slot %d: %w", i, ErrUnknownSymbol)
		}
		if err := mat.Rows.Validate(); err != nil {
			return err
		}
		if err := mat.Cols.Validate(); err != nil {
			return err
		}
		if len(mat.Data) != mat.NumRows()*mat.NumCols() {
			return fmt.Errorf("variable %c has %d entries: %w", 'a'+rune(i), len(mat.Data), matrices.ErrDimensionMismatch)
		}
		variables[i] = mat
	}
	r.Variables = variables
	return nil
}
