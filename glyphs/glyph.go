package glyphs

// Glyph is a catalogue generator.
type Glyph uint8

const (
	Strand Glyph = iota + 1
	Cross
	Uncross
	Cup
	Cap
	Merge
	Split
)

var All = []Glyph{
	Strand,
	Cross,
	Uncross,
	Cup,
	Cap,
	Merge,
	Split,
}

func (g Glyph) String() string {
	switch g {
	case Strand:
		return "strand"
	case Cross:
		return "cross"
	case Uncross:
		return "uncross"
	case Cup:
		return "cup"
	case Cap:
		return "cap"
	case Merge:
		return "merge"
	case Split:
		return "split"
	}
	return "invalid"
}

// Class is the role of one input character.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassGenerator
	ClassVariable
	ClassSave
	ClassComma
	ClassNewline
	ClassBlank
	ClassSentinel
)

const Sentinel = '.'

// Classify maps an input character to its class. For generators the glyph
// is returned; for variable references and saves the slot index in [0, 26).
// Generator characters win over variable letters.
func Classify(r rune) (class Class, glyph Glyph, slot int) {
	switch r {
	case '|', '/', '\\', 'i':
		return ClassGenerator, Strand, 0
	case '%':
		return ClassGenerator, Cross, 0
	case 'S', '5':
		return ClassGenerator, Uncross, 0
	case 'u':
		return ClassGenerator, Cup, 0
	case 'n':
		return ClassGenerator, Cap, 0
	case 'h':
		return ClassGenerator, Merge, 0
	case 'y':
		return ClassGenerator, Split, 0
	case ',':
		return ClassComma, 0, 0
	case '\n':
		return ClassNewline, 0, 0
	case ' ', '\t', '\r':
		return ClassBlank, 0, 0
	case Sentinel:
		return ClassSentinel, 0, 0
	}
	switch {
	case r >= 'a' && r <= 'z':
		return ClassVariable, 0, int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return ClassSave, 0, int(r - 'A')
	}
	return ClassUnknown, 0, 0
}
