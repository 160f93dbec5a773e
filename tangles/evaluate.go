package tangles

import "github.com/reusee/knot/matrices"

// Evaluate compiles and runs src on regs, calling onFold (when not nil) after
// every folded line. It returns the pending register. On any error regs is
// released.
func Evaluate(src *Source, regs *Registers, opts Options, onFold func(*Interrupt) error) (*matrices.Matrix, error) {
	program, err := Compile(src, opts)
	if err != nil {
		if regs != nil {
			regs.Release()
		}
		return nil, err
	}
	vm := NewVM(program, regs, opts)
	for intr, err := range vm.Run {
		if err != nil {
			return nil, err
		}
		if onFold != nil {
			if err := onFold(intr); err != nil {
				vm.Registers.Release()
				return nil, err
			}
		}
	}
	return vm.Result(), nil
}

// EvaluateString evaluates text with default options and fresh registers.
func EvaluateString(text string) (*matrices.Matrix, error) {
	return Evaluate(NewSource("", text), nil, DefaultOptions(), nil)
}
