package tangles

import (
	"bytes"
	"encoding/gob"
	"errors"
	"testing"

	"github.com/reusee/knot/fibs"
	"github.com/reusee/knot/fields"
	"github.com/reusee/knot/glyphs"
	"github.com/reusee/knot/matrices"
)

func TestVariablesSnapshot(t *testing.T) {
	regs := new(Registers)
	if _, err := Evaluate(NewSource("", "%,C,S,D,."), regs, DefaultOptions(), nil); err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := regs.SnapshotVariables(buf); err != nil {
		t.Fatal(err)
	}

	restored := new(Registers)
	restored.Variables[25] = matrices.Empty()
	if err := restored.RestoreVariables(buf); err != nil {
		t.Fatal(err)
	}
	if restored.Variables[25] != nil {
		t.Fatal("restore should replace all slots")
	}
	if restored.Pending != nil {
		t.Fatal("pending is not part of the snapshot")
	}
	mustEqual(t, restored.Variables['c'-'a'], glyphs.MustGenerator(glyphs.Cross))
	mustEqual(t, restored.Variables['d'-'a'], regs.Variables['d'-'a'])

	res, err := Evaluate(NewSource("", "c,.\n"), restored, DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, res, glyphs.MustGenerator(glyphs.Cross))
}

func TestRestoreVariablesInvalid(t *testing.T) {
	encode := func(slots map[int]*matrices.Matrix) *bytes.Buffer {
		buf := new(bytes.Buffer)
		if err := gob.NewEncoder(buf).Encode(variablesSnapshot{Slots: slots}); err != nil {
			t.Fatal(err)
		}
		return buf
	}

	regs := new(Registers)
	err := regs.RestoreVariables(encode(map[int]*matrices.Matrix{
		30: matrices.Empty(),
	}))
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("got %v", err)
	}

	err = regs.RestoreVariables(encode(map[int]*matrices.Matrix{
		0: {Rows: 30, Cols: 3, Data: []fields.Element{}},
	}))
	if !errors.Is(err, fibs.ErrResourceLimitExceeded) {
		t.Fatalf("got %v", err)
	}

	err = regs.RestoreVariables(encode(map[int]*matrices.Matrix{
		0: {Rows: 3, Cols: 3, Data: []fields.Element{1}},
	}))
	if !errors.Is(err, matrices.ErrDimensionMismatch) {
		t.Fatalf("got %v", err)
	}

	if err := regs.RestoreVariables(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Fatal("should error")
	}
}

func TestRegistersRelease(t *testing.T) {
	regs := &Registers{
		Accumulator: matrices.Empty(),
		Pending:     matrices.Unit(),
	}
	regs.Variables[0] = matrices.Empty()
	regs.ResetLines()
	if regs.Accumulator != nil || regs.Pending != nil || regs.Variables[0] == nil {
		t.Fatal()
	}
	regs.Release()
	if regs.Variables[0] != nil {
		t.Fatal()
	}
}
