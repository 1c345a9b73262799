package ring

import (
	"fmt"
)

// MulByMonomial evaluates dst = p·x^t in T[x]/(x^m − c), with m = len(p) and
// c the scalar of mod. The shift t must lie in [0, 3m]; both endpoints are
// the identity since x^{3m} = c³ = 1.
//
// The rotation costs O(m): t is reduced to an effective shift tt = t mod m
// together with a multiplier c^(t/m) for the third of [0, 3m) it falls in,
// and coefficients that wrap past degree m pick up one extra factor of c.
// This is what lets a transform of block count r > 3 be built without r-th
// roots of unity existing as ring scalars: the needed root is the monomial
// x^{3m/r}, and multiplying by its powers is a rotation, not a convolution.
//
// dst must not overlap p.
func MulByMonomial(p Poly, t int, mod Modulus, dst Poly) {
	m := len(p)

	// Sanity check
	if len(dst) < m {
		panic(fmt.Errorf("cannot MulByMonomial: len(dst)=%d < len(p)=%d", len(dst), m))
	}
	if t < 0 || t > 3*m {
		panic(fmt.Errorf("cannot MulByMonomial: t=%d not in [0, 3m=%d]", t, 3*m))
	}

	if t == 0 || t == 3*m {
		copy(dst, p)
		return
	}

	c := mod.Scalar()

	tt := t
	mult := One
	switch {
	case t < m:
	case t < 2*m:
		tt, mult = t-m, c
	default:
		tt, mult = t-2*m, c.Mul(c)
	}

	wrap := mult.Mul(c)
	for j := 0; j < tt; j++ {
		dst[j] = p[m-tt+j].Mul(wrap)
	}
	for j := tt; j < m; j++ {
		dst[j] = p[j-tt].Mul(mult)
	}
}
