// Package ring implements fast polynomial arithmetic over the ring of
// integers modulo 2^64 extended with a primitive cube root of unity ω.
//
// The base ring has no useful roots of unity of odd order, and a radix-2
// FFT is ruled out because 2 is not invertible modulo 2^64. The package
// instead works in T = Z_{2^64}[ω]/(ω²+ω+1) and builds a radix-3 FFT whose
// roots of unity are monomials of the quotient ring T[x]/(x^m − ω), so that
// the inverse transform only ever divides by 3, a unit of the base ring.
// The genuine base-ring product is recovered at the end through a CRT
// recombination of the two conjugate quotients of x^{2m} + x^m + 1.
package ring

import (
	"fmt"

	"github.com/ternfft/conv64/utils"
	"github.com/ternfft/conv64/utils/arena"
)

// Ring stores the precomputations and the scratch arena for cyclic
// convolutions of a fixed power-of-three length N over Z_{2^64}.
//
// A Ring owns its arena and is therefore not safe for concurrent use;
// see [Ring.ShallowCopy].
type Ring struct {
	// N is the convolution length, a power of three.
	N int

	// M and R split N = M*R with M the largest power of three such that
	// M² <= N, so that R is directly usable as a transform length
	// (R <= 3M guarantees the monomial root x^{3M/R} exists).
	M, R int

	// inv is Inv3^log₃(R), the scaling of the inverse transform.
	inv Elem

	// Disjoint views over the arena, carved once at construction:
	// two length-N staging regions, the output region and the
	// transform temporaries.
	pp, qq, to, tmp Poly

	buf *arena.Arena[Elem]
}

// NewRing creates a new [Ring] for cyclic convolutions of length n,
// which must be a power of three.
func NewRing(n int) (*Ring, error) {

	if !utils.IsPowerOfThree(n) {
		return nil, fmt.Errorf("invalid convolution length: n=%d must be a power of three", n)
	}

	m := utils.PrevPowerOfThreeSqrt(n)
	r := n / m

	inv := One
	for i := 1; i < r; i *= 3 {
		inv = inv.Mul(Inv3)
	}

	buf := arena.New[Elem](BufferSize(n))

	rng := &Ring{
		N:   n,
		M:   m,
		R:   r,
		inv: inv,
		buf: buf,
	}

	rng.pp = buf.Alloc(n)
	rng.qq = buf.Alloc(n)
	rng.to = buf.Alloc(n + 3*m)
	rng.tmp = buf.Alloc(3 * m)

	return rng, nil
}

// BufferSize returns the number of ring elements of scratch held by a
// [Ring] of convolution length n.
func BufferSize(n int) int {
	return 3*n + 6*utils.PrevPowerOfThreeSqrt(n)
}

// ShallowCopy returns a copy of the receiver with a fresh arena, sharing no
// mutable state. Sibling branches of the transforms touch disjoint index
// ranges but share one arena, so concurrent convolutions require one Ring
// per in-flight call.
func (r *Ring) ShallowCopy() *Ring {
	cpy, err := NewRing(r.N)
	if err != nil {
		panic(err)
	}
	return cpy
}

// Equal returns true if the receiver and other have identical parameters.
func (r *Ring) Equal(other *Ring) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.N == other.N && r.M == other.M && r.R == other.R
}

// MulCyclic evaluates out = p ⊛ q, the cyclic convolution of p and q modulo
// (x^N − 1), with all coefficient arithmetic modulo 2^64. p, q and out must
// have length N; out may alias p or q.
//
// The inputs are embedded in the extension ring with zero ω-component and,
// with y = x^M, viewed as elements of (T[x]/(x^M − ω))[y]/(y^R − 1), where
// the product costs one forward transform per input, R recursive block
// products and one inverse transform. Because the embedding has no
// ω-component, the same product modulo (x^M − ω²) is the conjugate of the
// one just computed, and the CRT recombination of the pair yields the
// product modulo (x^{2M} + x^M + 1), hence modulo (x^N − 1) once y = x^M
// is unravelled.
func (r *Ring) MulCyclic(p, q, out []uint64) {

	// Sanity check
	if len(p) != r.N || len(q) != r.N || len(out) != r.N {
		panic(fmt.Errorf("cannot MulCyclic: ensure that len(p)=%d, len(q)=%d and len(out)=%d equal N=%d", len(p), len(q), len(out), r.N))
	}

	n, m := r.N, r.M

	r.pp.SetUint64(p)
	r.qq.SetUint64(q)

	FFTForward(r.pp, m, r.R, r.tmp)
	FFTForward(r.qq, m, r.R, r.tmp)
	for i := 0; i < r.R; i++ {
		MulMod(r.pp[m*i:], r.qq[m*i:], m, ModOmega, r.to[m*i:], r.tmp)
	}
	FFTBackward(r.to[:n], m, r.R, r.tmp)
	for i := 0; i < n; i++ {
		r.pp[i] = r.to[i].Mul(r.inv)
	}

	// The product modulo (x^M − ω²) is free: conjugation fixes the inputs,
	// so it must equal the conjugate of the product modulo (x^M − ω).
	for i := 0; i < n; i++ {
		r.qq[i] = r.pp[i].Conj()
	}

	r.to[:n].Zero()
	crtInterpolate(r.to[:n], r.pp, r.qq, n, m, ModOne)
	for i := 0; i < n; i++ {
		out[i] = r.to[i].Mul(Inv3).A
	}
}
