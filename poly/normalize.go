package poly

import (
	"golang.org/x/exp/slices"
)

// FromMonomials returns the canonical polynomial equal to the sum of the given monomials.
// The monomials may be unsorted, may share exponents and may have zero coefficients.
//
// The slice monomials is left untouched. The coefficient trees of the monomials are reused by the
// result, hence the caller must not call [Polynomial.Release] on them afterwards. Use
// [CloneMonomials] to obtain a fully independent result.
//
// Unlike [NewMonomial], the normalizers accept any exponent, so that the monomials of a product
// whose exponents exceed MaxExponent can be normalized again.
func FromMonomials(monomials []Monomial) Polynomial {
	if len(monomials) == 0 {
		return Zero()
	}

	buff := make([]Monomial, len(monomials))
	copy(buff, monomials)

	return normalize(buff)
}

// OwnMonomials returns the canonical polynomial equal to the sum of the given monomials.
// It takes ownership of monomials and of every coefficient tree it holds: the slice is sorted,
// merged and cleared in place, and the caller must not use it after the call.
func OwnMonomials(monomials []Monomial) Polynomial {
	return normalize(monomials)
}

// CloneMonomials returns the canonical polynomial equal to the sum of the given monomials.
// Every monomial is deep copied first, so neither the slice nor the coefficient trees are
// referenced by the result.
func CloneMonomials(monomials []Monomial) Polynomial {
	if len(monomials) == 0 {
		return Zero()
	}

	return normalize(cloneMonomials(monomials))
}

// normalize sorts monomials by exponent and merges equal exponents in place.
// It takes ownership of the slice.
func normalize(monomials []Monomial) Polynomial {

	if len(monomials) == 0 {
		return Zero()
	}

	slices.SortStableFunc(monomials, func(a, b Monomial) bool {
		return a.Exp < b.Exp
	})

	// n is the number of merged monomials, stored in monomials[:n].
	var n int
	for i := range monomials {

		mono := monomials[i]
		monomials[i] = Monomial{}

		if mono.Coeff.IsZero() {
			continue
		}

		if n > 0 && monomials[n-1].Exp == mono.Exp {

			sum := monomials[n-1].Coeff.Add(mono.Coeff)

			if sum.IsZero() {
				n--
				monomials[n] = Monomial{}
			} else {
				monomials[n-1].Coeff = sum
			}

			continue
		}

		monomials[n] = mono
		n++
	}

	return collapse(monomials[:n:n])
}

// collapse returns the polynomial represented by a slice of monomials sorted by strictly increasing
// exponents with non-zero coefficients, replacing the empty sum and the lone constant term by scalars.
func collapse(monomials []Monomial) Polynomial {

	switch {
	case len(monomials) == 0:
		return Zero()
	case len(monomials) == 1 && monomials[0].Exp == 0 && monomials[0].Coeff.IsScalar():
		return monomials[0].Coeff
	default:
		return Polynomial{monomials: monomials}
	}
}
