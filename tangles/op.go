package tangles

import "fmt"

// OpCode packs an operation in the low byte and its argument above it.
type OpCode uint32

const (
	// OpTensor tensors the catalogue glyph in the argument into the accumulator.
	OpTensor OpCode = iota + 1
	// OpTensorVar tensors the variable slot in the argument into the accumulator.
	OpTensorVar
	// OpFold closes the current line.
	OpFold
	// OpSave copies pending into the variable slot in the argument.
	OpSave
)

func (o OpCode) With(arg int) OpCode {
	return o | (OpCode(arg) << 8)
}

func (o OpCode) Op() OpCode {
	return o & 0xff
}

func (o OpCode) Arg() int {
	return int(o >> 8)
}

func (o OpCode) String() string {
	switch o.Op() {
	case OpTensor:
		return fmt.Sprintf("tensor %d", o.Arg())
	case OpTensorVar:
		return fmt.Sprintf("tensor-var %c", 'a'+rune(o.Arg()))
	case OpFold:
		return "fold"
	case OpSave:
		return fmt.Sprintf("save %c", 'a'+rune(o.Arg()))
	}
	return fmt.Sprintf("op(%d)", uint32(o))
}
