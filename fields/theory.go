package fields

// Constants of the Fibonacci anyon theory over Z/521Z.
// Q is a primitive 10th root of unity, so Q^5 = -1.
const (
	Q    Element = 5
	QQ           = Q * Q % Modulus
	QQQ          = Q * QQ % Modulus
	QQQQ         = Q * QQQ % Modulus

	// Phi is the golden ratio in the field: Phi = Q - Q^4, Phi^2 = Phi + 1.
	Phi = (Q + Modulus - QQQQ) % Modulus
	// PhiInv = Phi - 1 = 1 / Phi.
	PhiInv = Phi - 1
)
