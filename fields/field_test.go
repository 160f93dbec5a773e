package fields

import "testing"

func TestReduce(t *testing.T) {
	for _, c := range []struct {
		in   int
		want Element
	}{
		{0, 0},
		{521, 0},
		{522, 1},
		{-1, 520},
		{-521, 0},
		{-1043, 520},
		{520 * 520, 1},
	} {
		if got := Reduce(c.in); got != c.want {
			t.Fatalf("Reduce(%d): got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	if got := Add(520, 520); got != 519 {
		t.Fatalf("got %v", got)
	}
	if got := Sub(3, 5); got != 519 {
		t.Fatalf("got %v", got)
	}
	if got := Neg(0); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := Add(Neg(7), 7); got != 0 {
		t.Fatalf("got %v", got)
	}
	if got := Mul(520, 520); got != 1 {
		t.Fatalf("got %v", got)
	}
	for a := Element(1); a < Modulus; a++ {
		if Mul(a, Inv(a)) != 1 {
			t.Fatalf("inverse of %d", a)
		}
	}
}

func TestTheoryConstants(t *testing.T) {
	if QQ != 25 || QQQ != 125 || QQQQ != 104 {
		t.Fatalf("got %v %v %v", QQ, QQQ, QQQQ)
	}
	if Pow(Q, 5) != Neg(1) {
		t.Fatalf("q^5 = %v", Pow(Q, 5))
	}
	if Phi != 422 || PhiInv != 421 {
		t.Fatalf("got %v %v", Phi, PhiInv)
	}
	if Mul(Phi, PhiInv) != 1 {
		t.Fatal()
	}
	if Mul(Phi, Phi) != Add(Phi, 1) {
		t.Fatal("golden ratio")
	}
}
