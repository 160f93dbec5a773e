package tangles

import (
	"fmt"

	"github.com/reusee/knot/matrices"
)

// Terminators selects which characters close a line.
type Terminators uint8

const (
	TerminatorsBoth Terminators = iota
	TerminatorsComma
	TerminatorsNewline
)

func (t Terminators) Comma() bool {
	return t == TerminatorsBoth || t == TerminatorsComma
}

func (t Terminators) Newline() bool {
	return t == TerminatorsBoth || t == TerminatorsNewline
}

func (t Terminators) String() string {
	switch t {
	case TerminatorsBoth:
		return "both"
	case TerminatorsComma:
		return "comma"
	case TerminatorsNewline:
		return "newline"
	}
	return fmt.Sprintf("terminators(%d)", uint8(t))
}

func (t *Terminators) UnmarshalText(text []byte) error {
	switch string(text) {
	case "both", "":
		*t = TerminatorsBoth
	case "comma":
		*t = TerminatorsComma
	case "newline":
		*t = TerminatorsNewline
	default:
		return fmt.Errorf("unknown terminators %q, expecting comma, newline or both", text)
	}
	return nil
}

type Options struct {
	Terminators Terminators
	// Variables enables uppercase saves and lowercase references.
	Variables bool
	// MaxHandle caps the handles tensoring may produce.
	MaxHandle matrices.Handle
}

func DefaultOptions() Options {
	return Options{
		Terminators: TerminatorsBoth,
		Variables:   true,
		MaxHandle:   matrices.MaxHandle,
	}
}
