// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum value of the two inputs.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// MaxSlice returns the maximum value of the input slice, or the zero value if the slice is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	for i := range slice {
		if i == 0 || slice[i] > max {
			max = slice[i]
		}
	}
	return
}

// PowWrap returns x^n computed by square-and-multiply in the native width of V.
// Intermediate products wrap around on overflow, so the result is x^n modulo 2^bitlen(V).
func PowWrap[V constraints.Integer](x V, n uint64) (r V) {
	r = 1
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return
}
