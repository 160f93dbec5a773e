package tangles

import (
	"fmt"

	"github.com/reusee/knot/fibs"
	"github.com/reusee/knot/glyphs"
	"github.com/reusee/knot/matrices"
)

type VM struct {
	Program   *Program
	IP        int
	Registers *Registers
	MaxHandle matrices.Handle
	Lines     int
}

// NewVM runs program against regs. A nil regs starts from empty registers.
func NewVM(program *Program, regs *Registers, opts Options) *VM {
	if regs == nil {
		regs = new(Registers)
	}
	maxHandle := opts.MaxHandle
	if maxHandle <= 0 || maxHandle > matrices.MaxHandle {
		maxHandle = matrices.MaxHandle
	}
	return &VM{
		Program:   program,
		Registers: regs,
		MaxHandle: maxHandle,
	}
}

// Run executes the program, yielding an Interrupt after each fold. The
// first error ends the run and releases every register. A line still open at
// the sentinel is never folded, the result stays whatever pending holds.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	fail := func(err error) {
		v.Registers.Release()
		yield(nil, err)
	}

	for v.IP < len(v.Program.Code) {
		inst := v.Program.Code[v.IP]
		pos := v.Program.Pos[v.IP]
		v.IP++

		switch inst.Op() {

		case OpTensor:
			glyph := glyphs.Glyph(inst.Arg())
			gen, err := glyphs.Generator(glyph)
			if err != nil {
				fail(WithPos(err, pos))
				return
			}
			if err := v.tensor(gen); err != nil {
				fail(WithPos(fmt.Errorf("tensor %v: %w", glyph, err), pos))
				return
			}

		case OpTensorVar:
			slot := inst.Arg()
			mat := v.Registers.Variables[slot]
			if mat == nil {
				fail(WithPos(fmt.Errorf("%w: variable %c is not set", ErrUnknownSymbol, 'a'+rune(slot)), pos))
				return
			}
			if err := v.tensor(mat); err != nil {
				fail(WithPos(fmt.Errorf("tensor variable %c: %w", 'a'+rune(slot), err), pos))
				return
			}

		case OpFold:
			intr, err := v.fold(pos)
			if err != nil {
				fail(WithPos(err, pos))
				return
			}
			if intr != nil && !yield(intr, nil) {
				return
			}

		case OpSave:
			slot := inst.Arg()
			if v.Registers.Pending == nil {
				fail(WithPos(fmt.Errorf("save into %c: %w: no line folded yet", 'a'+rune(slot), ErrEmptyRegister), pos))
				return
			}
			v.Registers.Variables[slot] = v.Registers.Pending.Clone()

		default:
			fail(WithPos(fmt.Errorf("bad op: %v", inst), pos))
			return
		}
	}
}

func (v *VM) tensor(mat *matrices.Matrix) error {
	acc := v.Registers.Accumulator
	if acc == nil {
		acc = matrices.Empty()
	}
	rows := acc.Rows.Join(mat.Rows)
	cols := acc.Cols.Join(mat.Cols)
	if rows > v.MaxHandle || cols > v.MaxHandle {
		return fmt.Errorf("handles %dx%d above %d: %w", rows, cols, v.MaxHandle, fibs.ErrResourceLimitExceeded)
	}
	ret, err := matrices.Tensor(acc, mat)
	if err != nil {
		return err
	}
	v.Registers.Accumulator = ret
	return nil
}

// fold closes the current line. An empty line is a no-op and returns a nil Interrupt.
func (v *VM) fold(pos Pos) (*Interrupt, error) {
	line := v.Registers.Accumulator
	if line == nil {
		return nil, nil
	}
	if v.Registers.Pending == nil {
		v.Registers.Pending = line
	} else {
		pending, err := matrices.Multiply(v.Registers.Pending, line)
		if err != nil {
			return nil, fmt.Errorf("fold line %d: %w", v.Lines+1, err)
		}
		v.Registers.Pending = pending
	}
	v.Registers.Accumulator = nil
	v.Lines++
	return &Interrupt{
		Line:    v.Lines,
		Pos:     pos,
		Folded:  line,
		Pending: v.Registers.Pending,
	}, nil
}

// Result is the pending register, or the unit seed when no line was folded.
func (v *VM) Result() *matrices.Matrix {
	if v.Registers.Pending == nil {
		return matrices.Unit()
	}
	return v.Registers.Pending
}
