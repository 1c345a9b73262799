// Package utils implements generic helper functions shared across the module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// IsPowerOfThree returns true if n is an exact power of three.
func IsPowerOfThree[T constraints.Integer](n T) bool {
	if n < 1 {
		return false
	}
	for n%3 == 0 {
		n /= 3
	}
	return n == 1
}

// NextPowerOfThree returns the smallest power of three greater than or equal to n.
func NextPowerOfThree[T constraints.Integer](n T) (s T) {
	s = 1
	for s < n {
		s *= 3
	}
	return
}

// PrevPowerOfThreeSqrt returns the largest power of three m such that m*m <= n.
func PrevPowerOfThreeSqrt[T constraints.Integer](n T) (m T) {
	m = 1
	for m*m <= n {
		m *= 3
	}
	return m / 3
}

// NextPowerOfThreeSqrt returns the smallest power of three m such that m*m >= n.
func NextPowerOfThreeSqrt[T constraints.Integer](n T) (m T) {
	m = 1
	for m*m < n {
		m *= 3
	}
	return
}
