// Package conv64 multiplies polynomials with coefficients in Z/2^64 in
// quasi-linear time.
//
// Coefficients wrap modulo 2^64: the signed values of the public interface
// are reinterpretations of the underlying unsigned residues, and wraparound
// during multiplication is defined behavior, not an error. The heavy lifting
// is a radix-3 FFT over a cube-root-of-unity extension of the base ring; see
// the ring subpackage.
package conv64

import (
	"fmt"

	"github.com/ternfft/conv64/ring"
	"github.com/ternfft/conv64/utils"
)

// Multiply returns the product of the polynomials p and q, whose
// coefficients are taken modulo 2^64 and reinterpreted as signed. The result
// has length len(p)+len(q)-1. Inputs of length zero are rejected.
func Multiply(p, q []int64) ([]int64, error) {

	pp := make([]uint64, len(p))
	for i := range p {
		pp[i] = uint64(p[i])
	}
	qq := make([]uint64, len(q))
	for i := range q {
		qq[i] = uint64(q[i])
	}

	out, err := MultiplyUint64(pp, qq)
	if err != nil {
		return nil, err
	}

	res := make([]int64, len(out))
	for i := range out {
		res[i] = int64(out[i])
	}
	return res, nil
}

// MultiplyUint64 is [Multiply] for callers already working with the
// unsigned residues of the base ring.
func MultiplyUint64(p, q []uint64) ([]uint64, error) {

	if len(p) == 0 || len(q) == 0 {
		return nil, fmt.Errorf("cannot Multiply: input polynomials must have at least one coefficient")
	}

	// The cyclic convolution length must be a power of three at least the
	// length of the true product, so that wraparound never mixes genuine
	// terms and the cyclic result is the plain product.
	size := len(p) + len(q) - 1
	s := utils.NextPowerOfThree(size)

	r, err := ring.NewRing(s)
	if err != nil {
		return nil, err
	}

	pBuf := make([]uint64, s)
	copy(pBuf, p)
	qBuf := make([]uint64, s)
	copy(qBuf, q)

	out := make([]uint64, s)
	r.MulCyclic(pBuf, qBuf, out)

	return out[:size], nil
}
