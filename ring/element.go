package ring

import (
	"fmt"
)

// Elem is an element a + b·ω of the extension ring Z_{2^64}[ω]/(ω²+ω+1).
//
// The base ring Z_{2^64} has no cube root of unity besides 1, so ω is
// adjoined to enable radix-3 transforms; ω³ = 1 follows from ω² = −ω−1.
// All arithmetic wraps modulo 2^64 componentwise: wraparound is the defining
// semantics of the ring, not an overflow condition.
type Elem struct {
	A, B uint64
}

// One, Omega and Omega2 are the constants 1, ω and ω² = −1−ω.
var (
	One    = Elem{A: 1}
	Omega  = Elem{B: 1}
	Omega2 = Elem{A: 0xFFFFFFFFFFFFFFFF, B: 0xFFFFFFFFFFFFFFFF}
)

// Inv3 is the multiplicative inverse of 3 modulo 2^64, which exists because
// 3 is coprime to 2^64. Division by 3 after an inverse transform is realized
// as multiplication by this constant.
var Inv3 = Elem{A: 12297829382473034411}

// Add returns u + v.
func (u Elem) Add(v Elem) Elem {
	return Elem{A: u.A + v.A, B: u.B + v.B}
}

// Sub returns u - v.
func (u Elem) Sub(v Elem) Elem {
	return Elem{A: u.A - v.A, B: u.B - v.B}
}

// Neg returns -u.
func (u Elem) Neg() Elem {
	return Elem{A: -u.A, B: -u.B}
}

// Mul returns u·v. Expanding (a+bω)(c+dω) and substituting ω² = −ω−1 gives
// (ac − bd) + (bc + ad − bd)ω.
func (u Elem) Mul(v Elem) Elem {
	return Elem{
		A: u.A*v.A - u.B*v.B,
		B: u.B*v.A + u.A*v.B - u.B*v.B,
	}
}

// Conj returns the conjugate of u, i.e. the image of u under ω ↦ ω² = −1−ω.
func (u Elem) Conj() Elem {
	return Elem{A: u.A - u.B, B: -u.B}
}

// Modulus identifies the constant c of a quotient ring T[x]/(x^m − c).
// Which modulus a coefficient buffer is taken against is a property of the
// algorithmic phase that produced it, never of the buffer itself, so every
// operation whose result depends on the quotient takes the tag explicitly.
type Modulus uint8

const (
	// ModOne tags buffers reduced modulo (x^m − 1).
	ModOne Modulus = iota
	// ModOmega tags buffers reduced modulo (x^m − ω).
	ModOmega
	// ModOmega2 tags buffers reduced modulo (x^m − ω²).
	ModOmega2
)

// Scalar returns the constant c of the quotient as a ring element.
func (mod Modulus) Scalar() Elem {
	switch mod {
	case ModOne:
		return One
	case ModOmega:
		return Omega
	case ModOmega2:
		return Omega2
	default:
		panic(fmt.Errorf("invalid modulus tag: %d", mod))
	}
}

// Conj returns the tag of the conjugate quotient ring, swapping ω and ω².
func (mod Modulus) Conj() Modulus {
	switch mod {
	case ModOmega:
		return ModOmega2
	case ModOmega2:
		return ModOmega
	default:
		return mod
	}
}

func (mod Modulus) String() string {
	switch mod {
	case ModOne:
		return "x^m-1"
	case ModOmega:
		return "x^m-w"
	case ModOmega2:
		return "x^m-w^2"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(mod))
	}
}
