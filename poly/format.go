package poly

import (
	"io"
	"strconv"
)

// String returns the printed form of p: a scalar prints as its decimal value and a sum prints as its
// monomials (coeff,exp) joined by '+' in increasing order of exponent.
//
// The printed form is a rendering, not an encoding: a monomial whose coefficient is a scalar prints
// the same whether the scalar is a constant of the following variable or not.
func (p Polynomial) String() string {
	return string(p.AppendText(nil))
}

// AppendText appends the printed form of p to b and returns the extended buffer.
func (p Polynomial) AppendText(b []byte) []byte {

	if p.monomials == nil {
		return strconv.AppendInt(b, p.c, 10)
	}

	for i, mono := range p.monomials {
		if i > 0 {
			b = append(b, '+')
		}
		b = append(b, '(')
		b = mono.Coeff.AppendText(b)
		b = append(b, ',')
		b = strconv.AppendUint(b, uint64(mono.Exp), 10)
		b = append(b, ')')
	}

	return b
}

// WriteTo writes the printed form of p on w.
// It implements the io.WriterTo interface.
func (p Polynomial) WriteTo(w io.Writer) (n int64, err error) {
	inc, err := w.Write(p.AppendText(nil))
	return int64(inc), err
}
