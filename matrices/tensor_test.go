package matrices

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/reusee/knot/fibs"
)

func TestSpanCoversJoinedBasis(t *testing.T) {
	// one tensor pass produces exactly dim(a+b-3) row indices
	word := fibs.GetWord()
	for a := Handle(2); a <= MaxHandle; a++ {
		for b := Handle(1); b <= MaxHandle; b++ {
			joined := a.Join(b)
			if joined.Validate() != nil {
				continue
			}
			count := 0
			for i := range a.Dim() {
				lo, hi := b.span(word[i])
				count += hi - lo
			}
			if count != joined.Dim() {
				t.Fatalf("%d with %d: got %d, want %d", a, b, count, joined.Dim())
			}
		}
	}
}

func TestTensorEmpty(t *testing.T) {
	got, err := Tensor(Empty(), Empty())
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, got, Empty())
}

func TestTensorIdentities(t *testing.T) {
	// strands side by side stay the identity
	acc := Empty()
	for h := Handle(4); h <= 10; h++ {
		strand, err := Identity(4)
		if err != nil {
			t.Fatal(err)
		}
		acc, err = Tensor(acc, strand)
		if err != nil {
			t.Fatal(err)
		}
		want, err := Identity(h)
		if err != nil {
			t.Fatal(err)
		}
		mustEqual(t, acc, want)
	}
}

func TestTensorEntries(t *testing.T) {
	a := MustFromInts(4, 4,
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	)
	b := MustFromInts(3, 3,
		5, 0,
		0, 7,
	)
	got, err := Tensor(a, b)
	if err != nil {
		t.Fatal(err)
	}
	// word bits of a's basis are 0 1 0: rows 0 and 2 pair with b's index 0,
	// row 1 with b's index 1
	want := MustFromInts(4, 4,
		5, 0, 0,
		0, 14, 0,
		0, 0, 15,
	)
	mustEqual(t, got, want)
}

func TestTensorAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 10 {
		h := func() Handle {
			return Handle(3 + rng.IntN(3))
		}
		a := randomMatrix(rng, h(), h())
		b := randomMatrix(rng, h(), h())
		c := randomMatrix(rng, h(), h())
		ab, err := Tensor(a, b)
		if err != nil {
			t.Fatal(err)
		}
		left, err := Tensor(ab, c)
		if err != nil {
			t.Fatal(err)
		}
		bc, err := Tensor(b, c)
		if err != nil {
			t.Fatal(err)
		}
		right, err := Tensor(a, bc)
		if err != nil {
			t.Fatal(err)
		}
		mustEqual(t, left, right)
	}
}

func TestTensorLimit(t *testing.T) {
	big, err := New(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Tensor(big, big)
	if !errors.Is(err, fibs.ErrResourceLimitExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestTensorOntoUnit(t *testing.T) {
	_, err := Tensor(Unit(), Empty())
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v", err)
	}
}
