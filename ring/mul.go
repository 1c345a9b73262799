package ring

import (
	"fmt"
)

// MulModBaseCase is the largest length handled by schoolbook multiplication
// inside [MulMod].
const MulModBaseCase = 27

// MulMod evaluates to[:n] = p·q in T[x]/(x^n − c), with n a power of three
// and c the scalar of mod, which must be ModOmega or ModOmega2.
//
// p and q are consumed as scratch: their first n coefficients are destroyed.
// to is both output and staging space and must extend over at least
// [MulModToSize](n) elements; tmp must hold 3·[MulModTmpSize](n) elements.
// p, q, to and tmp must be pairwise non-overlapping.
func MulMod(p, q Poly, n int, mod Modulus, to, tmp Poly) {

	// Sanity check
	if len(p) < n || len(q) < n {
		panic(fmt.Errorf("cannot MulMod: ensure that len(p)=%d and len(q)=%d >= n=%d", len(p), len(q), n))
	}
	if size := MulModToSize(n); len(to) < size {
		panic(fmt.Errorf("cannot MulMod: len(to)=%d < %d", len(to), size))
	}
	if mod != ModOmega && mod != ModOmega2 {
		panic(fmt.Errorf("cannot MulMod: modulus must be %v or %v but is %v", ModOmega, ModOmega2, mod))
	}

	c := mod.Scalar()

	if n <= MulModBaseCase {
		// Schoolbook multiplication; a term landing at degree >= n folds
		// back with one factor of c, per the modulus.
		for i := range to[:n] {
			to[i] = Elem{}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n-i; j++ {
				to[i+j] = to[i+j].Add(p[i].Mul(q[j]))
			}
			for j := n - i; j < n; j++ {
				to[i+j-n] = to[i+j-n].Add(p[i].Mul(q[j]).Mul(c))
			}
		}
		return
	}

	// Balanced split n = m*r with m the smallest power of three such that
	// m² >= n, so that r <= m and x^{m/r} exists as a monomial.
	m := 1
	for m*m < n {
		m *= 3
	}
	r := n / m

	// s is the exponent with ω^s = c; it scales every substitution shift.
	s := 1
	if mod == ModOmega2 {
		s = 2
	}

	// Inv3^log₃(r), the scaling of the inverse transform.
	inv := One
	for i := 1; i < r; i *= 3 {
		inv = inv.Mul(Inv3)
	}

	// The product in (T[x]/(x^m − ω))[y]/(y^r − c).
	//
	// The substitution y ↦ x^{s·m/r}·y moves to (T[x]/(x^m − ω))[y]/(y^r − 1),
	// where the transforms apply.
	for i := 0; i < r; i++ {
		MulByMonomial(p[m*i:m*i+m], s*m/r*i, ModOmega, to[m*i:])
		MulByMonomial(q[m*i:m*i+m], s*m/r*i, ModOmega, to[n+m*i:])
	}

	FFTForward(to[:n], m, r, tmp)
	FFTForward(to[n:2*n], m, r, tmp)
	for i := 0; i < r; i++ {
		MulMod(to[m*i:], to[n+m*i:], m, ModOmega, to[2*n+m*i:], tmp)
	}
	FFTBackward(to[2*n:3*n], m, r, tmp)
	for i := 0; i < n; i++ {
		to[2*n+i] = to[2*n+i].Mul(inv)
	}

	// Undo the substitution, back to (T[x]/(x^m − ω))[y]/(y^r − c).
	for i := 0; i < r; i++ {
		MulByMonomial(to[2*n+m*i:2*n+m*i+m], 3*m-s*m/r*i, ModOmega, to[n+m*i:])
	}

	// The product in (T[x]/(x^m − ω²))[y]/(y^r − c).
	//
	// Conjugation moves it to (T[x]/(x^m − ω))[y]/(y^r − c̄), and the
	// substitution y ↦ x^{s̄·m/r}·y with s̄ = 3−s to the transform ring.
	sc := 3 - s
	for i := 0; i < r; i++ {
		for j := 0; j < m; j++ {
			p[m*i+j] = p[m*i+j].Conj()
			q[m*i+j] = q[m*i+j].Conj()
		}
		MulByMonomial(p[m*i:m*i+m], sc*m/r*i, ModOmega, to[m*i:])
		MulByMonomial(q[m*i:m*i+m], sc*m/r*i, ModOmega, p[m*i:])
	}

	FFTForward(to[:n], m, r, tmp)
	FFTForward(p[:n], m, r, tmp)
	for i := 0; i < r; i++ {
		MulMod(to[m*i:], p[m*i:], m, ModOmega, to[2*n+m*i:], tmp)
	}
	FFTBackward(to[2*n:3*n], m, r, tmp)
	for i := 0; i < n; i++ {
		to[2*n+i] = to[2*n+i].Mul(inv)
	}

	for i := 0; i < r; i++ {
		MulByMonomial(to[2*n+m*i:2*n+m*i+m], 3*m-sc*m/r*i, ModOmega, q[m*i:])
	}

	// CRT recombination of the two residues into the product modulo
	// (x^{2m} + x^m + 1)[y]/(y^r − c), unravelling y = x^m at the same time.
	// The second residue is conjugated back first.
	for i := 0; i < n; i++ {
		q[i] = q[i].Conj()
	}
	for i := range to[:n] {
		to[i] = Elem{}
	}
	crtInterpolate(to[:n], to[n:2*n], q[:n], n, m, mod)
	for i := 0; i < n; i++ {
		to[i] = to[i].Mul(Inv3)
	}
}

// MulModToSize returns the number of elements of staging space that [MulMod]
// requires in to for a product of length n.
func MulModToSize(n int) int {
	if n <= MulModBaseCase {
		return n
	}
	m := 1
	for m*m < n {
		m *= 3
	}
	return 3*n - m + MulModToSize(m)
}

// MulModTmpSize returns the block size of the widest transform run by
// [MulMod] for a product of length n; tmp must hold three such blocks.
func MulModTmpSize(n int) int {
	if n <= MulModBaseCase {
		return 0
	}
	m := 1
	for m*m < n {
		m *= 3
	}
	return m
}

// crtInterpolate adds to dst three times the product modulo
// (x^{2m} + x^m + 1), folded into T[x]/(x^n − c), given the residues
// u modulo (x^m − ω) and v modulo (x^m − ω²) of its r = n/m blocks.
// The weights follow from inverting the 2×2 evaluation at ω and ω²:
// low half (1−ω)·u + (1−ω²)·v, high half (ω²−ω)·(u−v), with the high half
// picking up one factor of c where it wraps past degree n. The caller
// scales by Inv3.
func crtInterpolate(dst, u, v Poly, n, m int, mod Modulus) {

	c := mod.Scalar()
	w1 := One.Sub(Omega)
	w2 := One.Sub(Omega2)
	wh := Omega2.Sub(Omega)
	whFold := wh.Mul(c)

	for k := 0; k < n; k++ {
		dst[k] = dst[k].Add(w1.Mul(u[k])).Add(w2.Mul(v[k]))
		d := u[k].Sub(v[k])
		if h := k + m; h < n {
			dst[h] = dst[h].Add(wh.Mul(d))
		} else {
			dst[h-n] = dst[h-n].Add(whFold.Mul(d))
		}
	}
}
