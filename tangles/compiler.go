package tangles

import (
	"fmt"

	"github.com/reusee/knot/glyphs"
)

// Program is a compiled tangle: one op per meaningful character.
type Program struct {
	Source *Source
	Code   []OpCode
	Pos    []Pos
}

func (p *Program) emit(op OpCode, pos Pos) {
	p.Code = append(p.Code, op)
	p.Pos = append(p.Pos, pos)
}

// Compile scans src up to the sentinel, or to the end when there is none.
func Compile(src *Source, opts Options) (*Program, error) {
	program := &Program{
		Source: src,
	}
	pos := Pos{
		Source: src,
		Line:   1,
		Column: 1,
	}

	unknown := func(r rune) error {
		return WithPos(fmt.Errorf("%w: %q", ErrUnknownSymbol, r), pos)
	}

loop:
	for _, r := range src.Content {
		class, glyph, slot := glyphs.Classify(r)
		switch class {

		case glyphs.ClassSentinel:
			break loop

		case glyphs.ClassBlank:

		case glyphs.ClassGenerator:
			program.emit(OpTensor.With(int(glyph)), pos)

		case glyphs.ClassVariable:
			if !opts.Variables {
				return nil, unknown(r)
			}
			program.emit(OpTensorVar.With(slot), pos)

		case glyphs.ClassSave:
			if !opts.Variables {
				return nil, unknown(r)
			}
			program.emit(OpSave.With(slot), pos)

		case glyphs.ClassComma:
			if !opts.Terminators.Comma() {
				return nil, unknown(r)
			}
			program.emit(OpFold, pos)

		case glyphs.ClassNewline:
			if opts.Terminators.Newline() {
				program.emit(OpFold, pos)
			}

		default:
			return nil, unknown(r)
		}

		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return program, nil
}
