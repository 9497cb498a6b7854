// Package poly implements sparse multivariate polynomials with wrapping 64-bit integer coefficients.
//
// A polynomial is either a scalar or a sum of monomials c_i * x_0^e_i, where each coefficient c_i is
// itself a polynomial in the variables x_1, x_2, ... . The nesting depth of a coefficient therefore
// equals the index of the variable it multiplies.
//
// Every constructor returns the unique canonical form of its input:
//   - monomials are sorted by strictly increasing exponent;
//   - no monomial has a zero coefficient;
//   - a single monomial of exponent 0 with a scalar coefficient is stored as that scalar;
//   - an empty sum is stored as the scalar 0.
//
// Canonical forms make structural equality a plain recursive comparison.
//
// Polynomials have value semantics: no operation mutates its operands and every result is a freshly
// allocated tree that does not share monomial slices with the operands, unless the operation is
// documented as taking ownership of its input (see [OwnMonomials] and [Polynomial.Release]).
package poly

import (
	"fmt"
	"math"
)

// MaxExponent is the largest exponent accepted by the constructors and the literal parser.
const MaxExponent = math.MaxInt32

// Monomial is the term Coeff * x^Exp, where x is the variable of the polynomial containing the
// monomial and Coeff is a polynomial in the following variables.
type Monomial struct {
	Exp   uint32
	Coeff Polynomial
}

// Polynomial is a sparse multivariate polynomial in canonical form.
// The zero value is the zero polynomial.
type Polynomial struct {
	// c is the value of a scalar polynomial, only meaningful when monomials is nil.
	c int64
	// monomials is nil for scalars and holds at least one monomial otherwise.
	monomials []Monomial
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// NewScalar returns the scalar polynomial c.
func NewScalar(c int64) Polynomial {
	return Polynomial{c: c}
}

// NewMonomial returns the canonical polynomial coeff * x_0^exp.
// The returned polynomial takes ownership of coeff.
func NewMonomial(coeff Polynomial, exp uint32) Polynomial {
	checkExponent(exp)

	if coeff.IsZero() {
		return Zero()
	}

	if exp == 0 && coeff.IsScalar() {
		return coeff
	}

	return Polynomial{monomials: []Monomial{{Exp: exp, Coeff: coeff}}}
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.monomials == nil && p.c == 0
}

// IsScalar returns true if p does not depend on any variable.
func (p Polynomial) IsScalar() bool {
	return p.monomials == nil
}

// Scalar returns the value of p and true if p is a scalar, and 0 and false otherwise.
func (p Polynomial) Scalar() (c int64, ok bool) {
	if p.monomials != nil {
		return 0, false
	}
	return p.c, true
}

// Len returns the number of monomials of p in the variable x_0.
// Scalars have zero monomials.
func (p Polynomial) Len() int {
	return len(p.monomials)
}

// Monomials returns a deep copy of the monomials of p, sorted by increasing exponent.
// It returns nil if p is a scalar.
func (p Polynomial) Monomials() []Monomial {
	if p.monomials == nil {
		return nil
	}
	return cloneMonomials(p.monomials)
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	if p.monomials == nil {
		return Polynomial{c: p.c}
	}
	return Polynomial{monomials: cloneMonomials(p.monomials)}
}

// Release drops the whole tree of p and resets it to the zero polynomial.
// Every nested monomial slice owned by p is cleared, so p must be the sole owner of its tree.
func (p *Polynomial) Release() {
	releaseMonomials(p.monomials)
	*p = Polynomial{}
}

// Equal returns true if p and q represent the same polynomial.
// A scalar is never equal to a sum of monomials.
func (p Polynomial) Equal(q Polynomial) bool {

	if p.monomials == nil || q.monomials == nil {
		return p.monomials == nil && q.monomials == nil && p.c == q.c
	}

	if len(p.monomials) != len(q.monomials) {
		return false
	}

	for i := range p.monomials {
		if p.monomials[i].Exp != q.monomials[i].Exp {
			return false
		}

		if !p.monomials[i].Coeff.Equal(q.monomials[i].Coeff) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the monomial.
func (m Monomial) Clone() Monomial {
	return Monomial{Exp: m.Exp, Coeff: m.Coeff.Clone()}
}

func cloneMonomials(monomials []Monomial) (out []Monomial) {
	out = make([]Monomial, len(monomials))
	for i := range monomials {
		out[i] = monomials[i].Clone()
	}
	return
}

func releaseMonomials(monomials []Monomial) {
	for i := range monomials {
		monomials[i].Coeff.Release()
		monomials[i] = Monomial{}
	}
}

func checkExponent(exp uint32) {
	if exp > MaxExponent {
		panic(fmt.Errorf("cannot create monomial: exponent %d exceeds MaxExponent=%d", exp, MaxExponent))
	}
}
