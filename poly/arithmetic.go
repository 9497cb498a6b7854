package poly

// Add returns p + q.
// Scalar coefficients wrap around on overflow.
func (p Polynomial) Add(q Polynomial) Polynomial {

	switch {
	case p.monomials == nil && q.monomials == nil:
		return NewScalar(p.c + q.c)
	case p.monomials == nil:
		return q.addScalar(p.c)
	case q.monomials == nil:
		return p.addScalar(q.c)
	}

	pm, qm := p.monomials, q.monomials

	out := make([]Monomial, 0, len(pm)+len(qm))

	var i, j int
	for i < len(pm) && j < len(qm) {
		switch {
		case pm[i].Exp < qm[j].Exp:
			out = append(out, pm[i].Clone())
			i++
		case pm[i].Exp > qm[j].Exp:
			out = append(out, qm[j].Clone())
			j++
		default:
			if sum := pm[i].Coeff.Add(qm[j].Coeff); !sum.IsZero() {
				out = append(out, Monomial{Exp: pm[i].Exp, Coeff: sum})
			}
			i++
			j++
		}
	}

	for ; i < len(pm); i++ {
		out = append(out, pm[i].Clone())
	}

	for ; j < len(qm); j++ {
		out = append(out, qm[j].Clone())
	}

	return collapse(out)
}

// addScalar returns p + c for a non-scalar p, by merging c into the constant term of p.
func (p Polynomial) addScalar(c int64) Polynomial {

	if c == 0 {
		return p.Clone()
	}

	pm := p.monomials

	out := make([]Monomial, 0, len(pm)+1)

	if pm[0].Exp != 0 {
		out = append(out, Monomial{Exp: 0, Coeff: NewScalar(c)})
	} else {
		if sum := pm[0].Coeff.addConstant(c); !sum.IsZero() {
			out = append(out, Monomial{Exp: 0, Coeff: sum})
		}
		pm = pm[1:]
	}

	for i := range pm {
		out = append(out, pm[i].Clone())
	}

	return collapse(out)
}

func (p Polynomial) addConstant(c int64) Polynomial {
	if p.monomials == nil {
		return NewScalar(p.c + c)
	}
	return p.addScalar(c)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.MulScalar(-1)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// MulScalar returns c * p.
// Monomials whose coefficient wraps around to zero are dropped.
func (p Polynomial) MulScalar(c int64) Polynomial {

	if p.monomials == nil {
		return NewScalar(p.c * c)
	}

	out := make([]Monomial, 0, len(p.monomials))

	for _, mono := range p.monomials {
		if coeff := mono.Coeff.MulScalar(c); !coeff.IsZero() {
			out = append(out, Monomial{Exp: mono.Exp, Coeff: coeff})
		}
	}

	return collapse(out)
}

// Mul returns p * q.
// The product of two sums is computed as the full cross product of their monomials, which is then
// normalized.
func (p Polynomial) Mul(q Polynomial) Polynomial {

	switch {
	case p.monomials == nil && q.monomials == nil:
		return NewScalar(p.c * q.c)
	case p.monomials == nil:
		return q.MulScalar(p.c)
	case q.monomials == nil:
		return p.MulScalar(q.c)
	}

	out := make([]Monomial, 0, len(p.monomials)*len(q.monomials))

	for _, a := range p.monomials {
		for _, b := range q.monomials {
			out = append(out, Monomial{Exp: a.Exp + b.Exp, Coeff: a.Coeff.Mul(b.Coeff)})
		}
	}

	return normalize(out)
}

// Pow returns p^exp, computed by square-and-multiply.
// By convention p^0 = 1, including for the zero polynomial.
func (p Polynomial) Pow(exp uint32) Polynomial {

	res := NewScalar(1)

	if exp == 0 {
		return res
	}

	base := p.Clone()

	for {
		if exp&1 == 1 {
			res = res.Mul(base)
		}

		if exp >>= 1; exp == 0 {
			return res
		}

		base = base.Mul(base)
	}
}
