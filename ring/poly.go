package ring

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Poly is a coefficient vector over the extension ring. Working buffers
// always have a length that is a power of three and represent an element of
// T[x]/(x^len − c) for the contextual [Modulus] c of the producing phase.
type Poly []Elem

// NewPoly creates a new polynomial with n coefficients set to zero.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// N returns the number of coefficients of the polynomial.
func (p Poly) N() int {
	return len(p)
}

// Clone returns a deep copy of the receiver.
func (p Poly) Clone() Poly {
	q := make(Poly, len(p))
	copy(q, p)
	return q
}

// Copy copies other on the receiver, up to the smaller of the two sizes.
func (p Poly) Copy(other Poly) {
	copy(p, other)
}

// Zero sets all coefficients of the receiver to zero.
func (p Poly) Zero() {
	for i := range p {
		p[i] = Elem{}
	}
}

// Equal performs a deep equal between the receiver and other.
func (p Poly) Equal(other Poly) bool {
	// The conversion to []Elem keeps go-cmp from calling this method as the
	// comparator, which would recurse forever.
	return cmp.Equal([]Elem(p), []Elem(other))
}

// SetUint64 embeds base-ring values on the receiver, with zero ω-component.
func (p Poly) SetUint64(v []uint64) {
	if len(v) > len(p) {
		panic(fmt.Errorf("cannot SetUint64: len(v)=%d > len(p)=%d", len(v), len(p)))
	}
	for i := range v {
		p[i] = Elem{A: v[i]}
	}
}

// Uint64 writes the base-ring component of the receiver on v.
func (p Poly) Uint64(v []uint64) {
	if len(v) > len(p) {
		panic(fmt.Errorf("cannot Uint64: len(v)=%d > len(p)=%d", len(v), len(p)))
	}
	for i := range v {
		v[i] = p[i].A
	}
}
