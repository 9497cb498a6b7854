package poly

import (
	"fmt"

	"github.com/tuneinsight/polycalc/utils"
)

// Degree returns the total degree of p, that is the largest sum of exponents over all the
// monomials of p once expanded. The degree of the zero polynomial is -1.
func (p Polynomial) Degree() (deg int) {

	if p.IsZero() {
		return -1
	}

	if p.monomials == nil {
		return 0
	}

	for _, mono := range p.monomials {
		deg = utils.Max(deg, int(mono.Exp)+mono.Coeff.Degree())
	}

	return
}

// DegreeBy returns the largest exponent of the variable x_k in p.
// The degree of the zero polynomial is -1 for every variable.
func (p Polynomial) DegreeBy(k int) (deg int) {

	if k < 0 {
		panic(fmt.Errorf("cannot DegreeBy: invalid variable index %d", k))
	}

	if p.IsZero() {
		return -1
	}

	if p.monomials == nil {
		return 0
	}

	if k == 0 {
		return int(p.monomials[len(p.monomials)-1].Exp)
	}

	deg = -1
	for _, mono := range p.monomials {
		deg = utils.Max(deg, mono.Coeff.DegreeBy(k-1))
	}

	return
}

// At returns the polynomial obtained by substituting x for x_0 in p.
// The remaining variables are shifted down by one: x_1 becomes x_0, and so on.
// Powers of x wrap around on overflow.
func (p Polynomial) At(x int64) (res Polynomial) {

	if p.monomials == nil {
		return p.Clone()
	}

	for _, mono := range p.monomials {
		res = res.Add(mono.Coeff.MulScalar(utils.PowWrap(x, uint64(mono.Exp))))
	}

	return
}

// Compose returns the polynomial p(subs[0], subs[1], ..., subs[k-1], 0, 0, ...), that is p in which
// the variable x_i is replaced by subs[i] for i < len(subs) and by zero otherwise.
func (p Polynomial) Compose(subs []Polynomial) Polynomial {
	return p.composeAt(subs, 0)
}

func (p Polynomial) composeAt(subs []Polynomial, depth int) (res Polynomial) {

	if p.monomials == nil {
		return p.Clone()
	}

	if depth >= len(subs) {
		// x_depth = 0 cancels every monomial but the constant term.
		if p.monomials[0].Exp != 0 {
			return Zero()
		}
		return p.monomials[0].Coeff.composeAt(subs, depth+1)
	}

	for _, mono := range p.monomials {
		inner := mono.Coeff.composeAt(subs, depth+1)
		res = res.Add(inner.Mul(subs[depth].Pow(mono.Exp)))
	}

	return
}
