package glyphs

import (
	"fmt"

	"github.com/reusee/knot/fields"
	"github.com/reusee/knot/matrices"
)

const (
	m    = fields.Modulus
	q    = int(fields.Q)
	qq   = int(fields.QQ)
	qqq  = int(fields.QQQ)
	qqqq = int(fields.QQQQ)
	phi  = int(fields.Phi)
	phiI = int(fields.PhiInv)
)

var catalogue = map[Glyph]*matrices.Matrix{

	Strand: matrices.MustFromInts(4, 4,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	),

	Cross: matrices.MustFromInts(5, 5,
		m-phiI, 0, m-qq, 0, 0,
		0, qqq, 0, 0, 0,
		(m-qq)*phiI, 0, qqqq*phiI, 0, 0,
		0, 0, 0, qqq, 0,
		0, 0, 0, 0, m-q,
	),

	Uncross: matrices.MustFromInts(5, 5,
		m-phiI, 0, qqq, 0, 0,
		0, m-qq, 0, 0, 0,
		qqq*phiI, 0, (m-q)*phiI, 0, 0,
		0, 0, 0, m-qq, 0,
		0, 0, 0, 0, qqqq,
	),

	Cup: matrices.MustFromInts(5, 3,
		1, 0,
		0, 0,
		phiI, 0,
		0, 0,
		0, 1,
	),

	Cap: matrices.MustFromInts(3, 5,
		1, 0, 1, 0, 0,
		0, 0, 0, 0, phi,
	),

	Merge: matrices.MustFromInts(4, 5,
		m-phiI, 0, 1, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 0, 1, 0,
	),

	Split: matrices.MustFromInts(5, 4,
		m-phiI, 0, 0,
		0, 1, 0,
		phiI, 0, 0,
		0, 0, 1,
		0, 0, 0,
	),
}

// Generator returns a private copy of the glyph's matrix.
func Generator(g Glyph) (*matrices.Matrix, error) {
	mat, ok := catalogue[g]
	if !ok {
		return nil, fmt.Errorf("no generator for glyph %d", g)
	}
	return mat.Clone(), nil
}

func MustGenerator(g Glyph) *matrices.Matrix {
	mat, err := Generator(g)
	if err != nil {
		panic(err)
	}
	return mat
}
