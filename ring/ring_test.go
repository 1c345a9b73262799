package ring

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/M=%d/R=%d", opname, r.N, r.M, r.R)
}

// mulCyclicReference computes the cyclic convolution of p and q modulo
// (x^n − 1) by schoolbook multiplication, with wraparound arithmetic.
func mulCyclicReference(p, q []uint64) []uint64 {
	n := len(p)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[(i+j)%n] += p[i] * q[j]
		}
	}
	return out
}

func randUint64s(rng *rand.Rand, n int) []uint64 {
	v := make([]uint64, n)
	for i := range v {
		v[i] = rng.Uint64()
	}
	return v
}

func TestNewRing(t *testing.T) {

	for _, n := range []int{-3, 0, 2, 6, 10, 32} {
		_, err := NewRing(n)
		require.Error(t, err, "n=%d", n)
	}

	r, err := NewRing(729)
	require.NoError(t, err)
	require.Equal(t, 729, r.N)
	require.Equal(t, 27, r.M)
	require.Equal(t, 27, r.R)

	// The split rounds M down, so R carries the excess factor of three
	// on odd powers.
	r, err = NewRing(2187)
	require.NoError(t, err)
	require.Equal(t, 27, r.M)
	require.Equal(t, 81, r.R)

	require.Equal(t, 3*729+6*27, BufferSize(729))
}

func TestMulCyclic(t *testing.T) {

	rng := rand.New(rand.NewPCG(3, 0))

	for _, n := range []int{1, 3, 9, 27, 81, 243, 729} {

		r, err := NewRing(n)
		require.NoError(t, err)

		t.Run(testString("MulCyclic", r), func(t *testing.T) {

			p := randUint64s(rng, n)
			q := randUint64s(rng, n)
			want := mulCyclicReference(p, q)

			out := make([]uint64, n)
			r.MulCyclic(p, q, out)

			require.Equal(t, want, out)
		})
	}
}

// TestMulCyclicWraparound pins down that coefficients near 2^64 wrap
// silently instead of saturating.
func TestMulCyclicWraparound(t *testing.T) {

	r, err := NewRing(3)
	require.NoError(t, err)

	p := []uint64{math.MaxUint64, 0, 0}
	q := []uint64{math.MaxUint64, 0, 0}
	out := make([]uint64, 3)
	r.MulCyclic(p, q, out)

	// (2^64−1)² = 2^128 − 2^65 + 1 ≡ 1 (mod 2^64).
	require.Equal(t, []uint64{1, 0, 0}, out)
}

func TestMulCyclicReuse(t *testing.T) {

	rng := rand.New(rand.NewPCG(3, 1))

	r, err := NewRing(81)
	require.NoError(t, err)

	// The arena is reused across calls; results must not depend on the
	// scratch left behind by a previous convolution.
	p := randUint64s(rng, 81)
	q := randUint64s(rng, 81)
	first := make([]uint64, 81)
	r.MulCyclic(p, q, first)

	r.MulCyclic(randUint64s(rng, 81), randUint64s(rng, 81), make([]uint64, 81))

	second := make([]uint64, 81)
	r.MulCyclic(p, q, second)
	require.Equal(t, first, second)
}

func TestRingShallowCopy(t *testing.T) {

	rng := rand.New(rand.NewPCG(3, 2))

	r, err := NewRing(243)
	require.NoError(t, err)

	cpy := r.ShallowCopy()
	require.True(t, r.Equal(cpy))

	p := randUint64s(rng, 243)
	q := randUint64s(rng, 243)

	out1 := make([]uint64, 243)
	out2 := make([]uint64, 243)
	r.MulCyclic(p, q, out1)
	cpy.MulCyclic(p, q, out2)

	require.Equal(t, out1, out2)
}

func TestMulCyclicSanityChecks(t *testing.T) {

	r, err := NewRing(9)
	require.NoError(t, err)

	require.Panics(t, func() { r.MulCyclic(make([]uint64, 3), make([]uint64, 9), make([]uint64, 9)) })
	require.Panics(t, func() { r.MulCyclic(make([]uint64, 9), make([]uint64, 9), make([]uint64, 3)) })
}
