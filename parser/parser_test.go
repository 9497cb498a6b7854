package parser

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polycalc/poly"
	"github.com/tuneinsight/polycalc/utils/sampling"
)

func C(c int64) poly.Polynomial {
	return poly.NewScalar(c)
}

func M(coeff poly.Polynomial, exp uint32) poly.Monomial {
	return poly.Monomial{Exp: exp, Coeff: coeff}
}

func P(monomials ...poly.Monomial) poly.Polynomial {
	return poly.CloneMonomials(monomials)
}

func TestParse(t *testing.T) {
	testParseValid(t)
	testParseNotLiteral(t)
	testParseMalformed(t)
	testParseMaxDepth(t)
	testParseRoundTrip(t)
}

func testParseValid(t *testing.T) {
	for _, tt := range []struct {
		line string
		want poly.Polynomial
	}{
		{"0", C(0)},
		{"-0", C(0)},
		{"42", C(42)},
		{"-42\n", C(-42)},
		{"7\r\n", C(7)},
		{"007", C(7)},
		{"9223372036854775807", C(math.MaxInt64)},
		{"-9223372036854775808", C(math.MinInt64)},
		{"(1,2)", P(M(C(1), 2))},
		{"(1,2)+(1,3)", P(M(C(1), 2), M(C(1), 3))},
		{"(1,3)+(1,2)", P(M(C(1), 2), M(C(1), 3))},
		{"(1,2)+(-1,2)", C(0)},
		{"(5,0)", C(5)},
		{"(0,4)", C(0)},
		{"(3,0)+(2,0)", C(5)},
		{"((1,2),3)", P(M(P(M(C(1), 2)), 3))},
		{"((1,0),3)", P(M(C(1), 3))},
		{"((1,3),0)+((1,2),2)+(1,3)", P(M(P(M(C(1), 3)), 0), M(P(M(C(1), 2)), 2), M(C(1), 3))},
		{"(((7,1),0),0)", P(M(P(M(P(M(C(7), 1)), 0)), 0))},
		{"(1,2147483647)", P(M(C(1), poly.MaxExponent))},
		{"(1,02)", P(M(C(1), 2))},
		{"(9223372036854775807,1)+(9223372036854775807,1)", P(M(C(-2), 1))},
	} {
		t.Run(fmt.Sprintf("Valid/%q", tt.line), func(t *testing.T) {
			have, err := Parse(tt.line)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(have), "want %v, have %v", tt.want, have)
		})
	}
}

func testParseNotLiteral(t *testing.T) {
	for _, line := range []string{"", "\n", "\r\n", "ADD", "x", "Z1"} {
		t.Run(fmt.Sprintf("NotLiteral/%q", line), func(t *testing.T) {
			p, err := Parse(line)
			require.ErrorIs(t, err, ErrNotLiteral)
			require.False(t, errors.Is(err, ErrMalformed))
			require.True(t, p.IsZero())
		})
	}
}

func testParseMalformed(t *testing.T) {
	for _, tt := range []struct {
		line   string
		offset int
	}{
		{"+", 0},
		{"-", 1},
		{"--1", 1},
		{"+1", 0},
		{" 1", 0},
		{"1 ", 1},
		{"1\n\n", 1},
		{"12a", 2},
		{"(", 1},
		{"()", 1},
		{"(1)", 2},
		{"(1,)", 3},
		{"(1,2", 4},
		{"(1,2))", 5},
		{"(1,2)3,4)", 5},
		{"(1,2)+", 6},
		{"(1,2)+3", 6},
		{"(1,2)+(3,4)+", 12},
		{"(1,-2)", 3},
		{"(1,+2)", 3},
		{"(1, 2)", 3},
		{"(+1,2)", 1},
		{"((1,2)+,3)", 7},
		{"((1,2),3", 8},
		{"((1,2)3)", 6},
		{"(1,2)(1,3)", 5},
		{"(1,2)\n(1,3)", 5},
		{"#comment", 0},
		{"(9223372036854775808,1)", 1},
		{"(-9223372036854775809,1)", 1},
		{"9223372036854775808", 0},
		{"(1,2147483648)", 3},
		{"(1,18446744073709551616)", 3},
	} {
		t.Run(fmt.Sprintf("Malformed/%q", tt.line), func(t *testing.T) {
			p, err := Parse(tt.line)
			require.ErrorIs(t, err, ErrMalformed)
			require.False(t, errors.Is(err, ErrNotLiteral))
			require.True(t, p.IsZero())

			var serr *SyntaxError
			require.True(t, errors.As(err, &serr))
			require.Equal(t, tt.offset, serr.Offset, serr.Error())
		})
	}
}

func testParseMaxDepth(t *testing.T) {

	t.Run("MaxDepth", func(t *testing.T) {

		parser := Parser{MaxDepth: 2}

		_, err := parser.Parse("((1,2),3)")
		require.NoError(t, err)

		_, err = parser.Parse("42")
		require.NoError(t, err)

		p, err := parser.Parse("(1,1)+(((1,2),3),4)")
		require.ErrorIs(t, err, ErrTooDeep)
		require.ErrorIs(t, err, ErrMalformed)
		require.True(t, p.IsZero())

		var serr *SyntaxError
		require.True(t, errors.As(err, &serr))
		require.Equal(t, 8, serr.Offset)
	})

	t.Run("MaxDepth/Disabled", func(t *testing.T) {
		line := "1"
		for i := 0; i < 512; i++ {
			line = "(" + line + ",1)"
		}

		p, err := Parser{MaxDepth: 0}.Parse(line)
		require.NoError(t, err)
		require.Equal(t, 512, p.Degree())

		_, err = Parser{MaxDepth: 511}.Parse(line)
		require.ErrorIs(t, err, ErrTooDeep)
	})
}

func testParseRoundTrip(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("polycalc-parser-tests"))
	require.NoError(t, err)

	for _, params := range []poly.SamplerParams{
		{Depth: 1, Terms: 4, MaxExp: 8, CoeffBound: 0},
		{Depth: 3, Terms: 3, MaxExp: poly.MaxExponent, CoeffBound: 100},
	} {
		sampler, err := poly.NewSampler(prng, params)
		require.NoError(t, err)

		t.Run(fmt.Sprintf("RoundTrip/Depth=%d", params.Depth), func(t *testing.T) {
			for _, want := range sampler.ReadN(32) {
				have, err := Parse(want.String() + "\n")
				require.NoError(t, err)
				require.True(t, want.Equal(have), "want %v, have %v", want, have)
			}
		})
	}
}
