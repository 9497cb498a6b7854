package poly

import (
	"bufio"
	"fmt"

	"github.com/tuneinsight/polycalc/utils"
	"github.com/tuneinsight/polycalc/utils/buffer"
)

const (
	tagScalar uint8 = 0x00
	tagSum    uint8 = 0x01
)

// maxPrealloc caps the capacity preallocated from a decoded monomial count.
const maxPrealloc = 1 << 10

// BinarySize returns the size in bytes of the binary encoding of p.
func (p Polynomial) BinarySize() (size int) {

	if p.monomials == nil {
		return 9
	}

	size = 9
	for _, mono := range p.monomials {
		size += 4 + mono.Coeff.BinarySize()
	}

	return
}

// MarshalBinary encodes p on a slice of bytes.
//
// A scalar is encoded as the byte 0x00 followed by its value, and a sum as the byte 0x01 followed
// by its number of monomials and, for each monomial in increasing exponent order, its exponent and
// the encoding of its coefficient. Integers are little-endian.
func (p Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.EncodeBinary(buf)
	return buf.Bytes(), err
}

// EncodeBinary writes the binary encoding of p on w.
// The user must flush w to complete the write.
func (p Polynomial) EncodeBinary(w buffer.Writer) (n int64, err error) {

	var inc int64

	if p.monomials == nil {

		if inc, err = buffer.WriteUint8(w, tagScalar); err != nil {
			return n + inc, err
		}
		n += inc

		inc, err = buffer.WriteUint64(w, uint64(p.c))
		return n + inc, err
	}

	if inc, err = buffer.WriteUint8(w, tagSum); err != nil {
		return n + inc, err
	}
	n += inc

	if inc, err = buffer.WriteUint64(w, uint64(len(p.monomials))); err != nil {
		return n + inc, err
	}
	n += inc

	for _, mono := range p.monomials {

		if inc, err = buffer.WriteUint32(w, mono.Exp); err != nil {
			return n + inc, err
		}
		n += inc

		if inc, err = mono.Coeff.EncodeBinary(w); err != nil {
			return n + inc, err
		}
		n += inc
	}

	return
}

// unmarshalBinary decodes a slice of bytes generated by MarshalBinary on p.
// It returns an error if data is not the encoding of a canonical polynomial.
// The decoding side is kept unexported: the encoding is the input of Digest, not a storage format.
func (p *Polynomial) unmarshalBinary(data []byte) (err error) {

	buf := buffer.NewBuffer(data)

	var q Polynomial
	if _, err = q.decodeBinary(buf); err != nil {
		return
	}

	if buf.Size() != 0 {
		return fmt.Errorf("cannot decode polynomial: %d trailing bytes", buf.Size())
	}

	*p = q

	return
}

// decodeBinary reads the binary encoding of a polynomial from r into p.
// It returns an error if the encoding is not the one of a canonical polynomial, in which case p
// is left unchanged.
func (p *Polynomial) decodeBinary(r buffer.Reader) (n int64, err error) {

	var q Polynomial
	if n, err = q.decode(r); err != nil {
		return n, fmt.Errorf("cannot decode polynomial: %w", err)
	}

	*p = q

	return
}

func (p *Polynomial) decode(r buffer.Reader) (n int64, err error) {

	var inc int64

	var tag uint8
	if inc, err = buffer.ReadUint8(r, &tag); err != nil {
		return n + inc, err
	}
	n += inc

	switch tag {
	case tagScalar:

		var c uint64
		if inc, err = buffer.ReadUint64(r, &c); err != nil {
			return n + inc, err
		}

		*p = NewScalar(int64(c))

		return n + inc, nil

	case tagSum:

		var count uint64
		if inc, err = buffer.ReadUint64(r, &count); err != nil {
			return n + inc, err
		}
		n += inc

		if count == 0 {
			return n, fmt.Errorf("empty sum")
		}

		monomials := make([]Monomial, 0, utils.Min(count, maxPrealloc))

		for i := uint64(0); i < count; i++ {

			var mono Monomial

			if inc, err = buffer.ReadUint32(r, &mono.Exp); err != nil {
				return n + inc, err
			}
			n += inc

			if i > 0 && mono.Exp <= monomials[i-1].Exp {
				return n, fmt.Errorf("exponents are not strictly increasing")
			}

			if inc, err = mono.Coeff.decode(r); err != nil {
				return n + inc, err
			}
			n += inc

			if mono.Coeff.IsZero() {
				return n, fmt.Errorf("zero coefficient")
			}

			monomials = append(monomials, mono)
		}

		if len(monomials) == 1 && monomials[0].Exp == 0 && monomials[0].Coeff.IsScalar() {
			return n, fmt.Errorf("constant term is not encoded as a scalar")
		}

		*p = Polynomial{monomials: monomials}

		return n, nil

	default:
		return n, fmt.Errorf("invalid tag 0x%02x", tag)
	}
}

// encodeTo streams the binary encoding of p into w.
func (p Polynomial) encodeTo(w *bufio.Writer) error {
	if _, err := p.EncodeBinary(w); err != nil {
		return err
	}
	return w.Flush()
}
