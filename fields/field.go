package fields

// Modulus is the prime order of the field every matrix entry lives in.
const Modulus = 521

// Element is a value in [0, Modulus).
type Element uint32

// Reduce maps any integer into the field, normalizing negative values.
func Reduce(v int) Element {
	v %= Modulus
	if v < 0 {
		v += Modulus
	}
	return Element(v)
}

func Add(a, b Element) Element {
	return (a + b) % Modulus
}

func Sub(a, b Element) Element {
	return (a + Modulus - b%Modulus) % Modulus
}

func Neg(a Element) Element {
	return (Modulus - a%Modulus) % Modulus
}

// Mul fits in uint32: (Modulus-1)^2 < 2^32.
func Mul(a, b Element) Element {
	return (a * b) % Modulus
}

func Pow(a Element, n int) Element {
	ret := Element(1)
	base := a % Modulus
	for n > 0 {
		if n&1 == 1 {
			ret = Mul(ret, base)
		}
		base = Mul(base, base)
		n >>= 1
	}
	return ret
}

// Inv returns the multiplicative inverse by Fermat's little theorem.
// Inv(0) is 0.
func Inv(a Element) Element {
	return Pow(a, Modulus-2)
}
