package ring

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func randPoly(rng *rand.Rand, n int) Poly {
	p := NewPoly(n)
	for i := range p {
		p[i] = Elem{A: rng.Uint64(), B: rng.Uint64()}
	}
	return p
}

// mulByMonomialReference computes p·x^t in T[x]/(x^m − c) one coefficient at
// a time: p[j] lands at degree (j+t) mod m with one factor c per wrap.
func mulByMonomialReference(p Poly, t int, mod Modulus) Poly {
	m := len(p)
	c := mod.Scalar()
	out := NewPoly(m)
	for j := range p {
		e := j + t
		f := One
		for k := 0; k < e/m; k++ {
			f = f.Mul(c)
		}
		out[e%m] = out[e%m].Add(p[j].Mul(f))
	}
	return out
}

func TestMulByMonomial(t *testing.T) {

	rng := rand.New(rand.NewPCG(0, 1))

	for _, m := range []int{1, 3, 9, 27} {
		for _, mod := range []Modulus{ModOne, ModOmega, ModOmega2} {
			t.Run(fmt.Sprintf("m=%d/mod=%v", m, mod), func(t *testing.T) {

				p := randPoly(rng, m)
				dst := NewPoly(m)

				for shift := 0; shift <= 3*m; shift++ {
					MulByMonomial(p, shift, mod, dst)
					require.Equal(t, mulByMonomialReference(p, shift, mod), dst, "shift=%d", shift)
				}
			})
		}
	}
}

func TestMulByMonomialIdentity(t *testing.T) {

	rng := rand.New(rand.NewPCG(0, 2))

	p := randPoly(rng, 9)
	dst := NewPoly(9)

	// x^0 and x^{3m} are both the identity: x^{3m} = c³ = 1.
	MulByMonomial(p, 0, ModOmega, dst)
	require.True(t, dst.Equal(p))
	MulByMonomial(p, 27, ModOmega, dst)
	require.True(t, dst.Equal(p))
}

func TestMulByMonomialSanityChecks(t *testing.T) {

	p := NewPoly(9)

	require.Panics(t, func() { MulByMonomial(p, -1, ModOmega, NewPoly(9)) })
	require.Panics(t, func() { MulByMonomial(p, 28, ModOmega, NewPoly(9)) })
	require.Panics(t, func() { MulByMonomial(p, 1, ModOmega, NewPoly(8)) })
}
