package ring

import (
	"fmt"
)

// FFTForward computes the in-place radix-3 decimation-in-frequency Fourier
// transform of p, viewed as r consecutive length-m blocks over the block
// ring T[x]/(x^m − ω), i.e. as an element of (T[x]/(x^m − ω))[y]/(y^r − 1).
// The r-th root of unity is the monomial x^{3m/r}, applied through
// [MulByMonomial]. Output blocks are in base-3 digit-reversed order.
//
// r must be a power of three and tmp must hold 3m elements.
func FFTForward(p Poly, m, r int, tmp Poly) {
	// Sanity check
	if len(p) < m*r || len(tmp) < 3*m {
		panic(fmt.Errorf("cannot FFTForward: ensure that len(p)=%d >= m*r=%d and len(tmp)=%d >= 3*m=%d", len(p), m*r, len(tmp), 3*m))
	}
	if r > 3*m {
		panic(fmt.Errorf("cannot FFTForward: r=%d > 3*m=%d, no r-th root of unity exists in the block ring", r, 3*m))
	}
	fftDIF(p, m, r, tmp)
}

// FFTBackward computes the in-place radix-3 decimation-in-time inverse
// transform of p, undoing [FFTForward]: input blocks are in base-3
// digit-reversed order, output blocks in normal order. It does not divide
// by r; the caller applies the final scaling by Inv3^log₃(r).
//
// r must be a power of three and tmp must hold 3m elements.
func FFTBackward(p Poly, m, r int, tmp Poly) {
	// Sanity check
	if len(p) < m*r || len(tmp) < 3*m {
		panic(fmt.Errorf("cannot FFTBackward: ensure that len(p)=%d >= m*r=%d and len(tmp)=%d >= 3*m=%d", len(p), m*r, len(tmp), 3*m))
	}
	if r > 3*m {
		panic(fmt.Errorf("cannot FFTBackward: r=%d > 3*m=%d, no r-th root of unity exists in the block ring", r, 3*m))
	}
	fftDIT(p, m, r, tmp)
}

func fftDIF(p Poly, m, r int, tmp Poly) {

	if r == 1 {
		return
	}

	rr := r / 3
	pos1, pos2 := m*rr, 2*m*rr
	t0, t1, t2 := tmp[:m], tmp[m:2*m], tmp[2*m:3*m]

	for i := 0; i < rr; i++ {
		off := i * m
		for j := 0; j < m; j++ {
			a, b, c := p[off+j], p[pos1+off+j], p[pos2+off+j]
			t0[j] = a.Add(b).Add(c)
			t1[j] = a.Add(Omega.Mul(b)).Add(Omega2.Mul(c))
			t2[j] = a.Add(Omega2.Mul(b)).Add(Omega.Mul(c))
			p[off+j] = t0[j]
		}
		MulByMonomial(t1, 3*i*m/r, ModOmega, p[pos1+off:pos1+off+m])
		MulByMonomial(t2, 6*i*m/r, ModOmega, p[pos2+off:pos2+off+m])
	}

	fftDIF(p[:pos1], m, rr, tmp)
	fftDIF(p[pos1:pos2], m, rr, tmp)
	fftDIF(p[pos2:pos2+pos1], m, rr, tmp)
}

func fftDIT(p Poly, m, r int, tmp Poly) {

	if r == 1 {
		return
	}

	rr := r / 3
	pos1, pos2 := m*rr, 2*m*rr
	t1, t2 := tmp[m:2*m], tmp[2*m:3*m]

	fftDIT(p[:pos1], m, rr, tmp)
	fftDIT(p[pos1:pos2], m, rr, tmp)
	fftDIT(p[pos2:pos2+pos1], m, rr, tmp)

	for i := 0; i < rr; i++ {
		off := i * m
		MulByMonomial(p[pos1+off:pos1+off+m], 3*m-3*i*m/r, ModOmega, t1)
		MulByMonomial(p[pos2+off:pos2+off+m], 3*m-6*i*m/r, ModOmega, t2)
		for j := 0; j < m; j++ {
			a, b, c := p[off+j], t1[j], t2[j]
			p[off+j] = a.Add(b).Add(c)
			p[pos1+off+j] = a.Add(Omega2.Mul(b)).Add(Omega.Mul(c))
			p[pos2+off+j] = a.Add(Omega.Mul(b)).Add(Omega2.Mul(c))
		}
	}
}
