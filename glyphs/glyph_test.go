package glyphs

import "testing"

func TestClassify(t *testing.T) {
	for _, c := range []struct {
		r     rune
		class Class
		glyph Glyph
		slot  int
	}{
		{'|', ClassGenerator, Strand, 0},
		{'/', ClassGenerator, Strand, 0},
		{'\\', ClassGenerator, Strand, 0},
		{'i', ClassGenerator, Strand, 0},
		{'%', ClassGenerator, Cross, 0},
		{'S', ClassGenerator, Uncross, 0},
		{'5', ClassGenerator, Uncross, 0},
		{'u', ClassGenerator, Cup, 0},
		{'n', ClassGenerator, Cap, 0},
		{'h', ClassGenerator, Merge, 0},
		{'y', ClassGenerator, Split, 0},
		{',', ClassComma, 0, 0},
		{'\n', ClassNewline, 0, 0},
		{' ', ClassBlank, 0, 0},
		{'\r', ClassBlank, 0, 0},
		{'.', ClassSentinel, 0, 0},
		{'a', ClassVariable, 0, 0},
		{'z', ClassVariable, 0, 25},
		{'A', ClassSave, 0, 0},
		{'Z', ClassSave, 0, 25},
		{'@', ClassUnknown, 0, 0},
		{'é', ClassUnknown, 0, 0},
	} {
		class, glyph, slot := Classify(c.r)
		if class != c.class || glyph != c.glyph || slot != c.slot {
			t.Fatalf("%q: got %v %v %v", c.r, class, glyph, slot)
		}
	}
}

func TestGlyphString(t *testing.T) {
	for _, g := range All {
		if g.String() == "invalid" {
			t.Fatalf("%d has no name", g)
		}
	}
	if Glyph(0).String() != "invalid" {
		t.Fatal()
	}
}
