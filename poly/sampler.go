package poly

import (
	"fmt"

	"github.com/tuneinsight/polycalc/utils/sampling"
)

// SamplerParams bounds the shape of the polynomials drawn by a Sampler.
type SamplerParams struct {
	// Depth is the number of variables of the sampled polynomials.
	Depth int
	// Terms is the maximum number of monomials drawn per nesting level, before merging.
	Terms int
	// MaxExp is the largest exponent drawn.
	MaxExp uint32
	// CoeffBound bounds the scalar coefficients in [-CoeffBound, CoeffBound].
	// A zero bound draws coefficients over the full int64 range.
	CoeffBound int64
}

// Sampler draws random canonical polynomials from a PRNG.
// A Sampler cannot be used concurrently.
type Sampler struct {
	prng   sampling.PRNG
	params SamplerParams
}

// NewSampler creates a new Sampler reading its randomness from prng.
// It returns an error if the parameters are invalid.
func NewSampler(prng sampling.PRNG, params SamplerParams) (*Sampler, error) {

	if params.Depth < 0 {
		return nil, fmt.Errorf("cannot NewSampler: invalid Depth=%d", params.Depth)
	}

	if params.Terms < 1 {
		return nil, fmt.Errorf("cannot NewSampler: invalid Terms=%d, must be at least 1", params.Terms)
	}

	if params.MaxExp > MaxExponent {
		return nil, fmt.Errorf("cannot NewSampler: MaxExp=%d exceeds MaxExponent=%d", params.MaxExp, MaxExponent)
	}

	if params.CoeffBound < 0 {
		return nil, fmt.Errorf("cannot NewSampler: invalid CoeffBound=%d", params.CoeffBound)
	}

	return &Sampler{prng: prng, params: params}, nil
}

// Params returns the parameters of the sampler.
func (s *Sampler) Params() SamplerParams {
	return s.params
}

// Read returns a new random polynomial in Params().Depth variables.
func (s *Sampler) Read() Polynomial {
	return s.read(s.params.Depth)
}

// ReadN returns n new random polynomials.
func (s *Sampler) ReadN(n int) (polys []Polynomial) {
	polys = make([]Polynomial, n)
	for i := range polys {
		polys[i] = s.Read()
	}
	return
}

func (s *Sampler) read(depth int) Polynomial {

	if depth == 0 {
		return NewScalar(sampling.ReadInt64Bounded(s.prng, s.params.CoeffBound))
	}

	terms := 1 + int(sampling.ReadUint64N(s.prng, uint64(s.params.Terms)))

	monomials := make([]Monomial, terms)
	for i := range monomials {
		monomials[i] = Monomial{
			Exp:   uint32(sampling.ReadUint64N(s.prng, uint64(s.params.MaxExp)+1)),
			Coeff: s.read(depth - 1),
		}
	}

	return normalize(monomials)
}
