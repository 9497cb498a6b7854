// Package parser implements the parsing of polynomial literals.
//
// A literal fits on a single line and follows the grammar
//
//	literal  := monomial ('+' monomial)* | scalar
//	monomial := '(' (scalar | literal) ',' exponent ')'
//	scalar   := ['-'] digit+
//	exponent := digit+
//
// where a scalar is a signed 64-bit integer and an exponent is at most [poly.MaxExponent].
// The coefficient of a monomial is a literal in the next variable: "((1,2),3)" is x_0^3 * x_1^2.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tuneinsight/polycalc/poly"
)

var (
	// ErrNotLiteral is returned for lines that are not polynomial literals at all: empty lines and
	// lines starting with a letter.
	ErrNotLiteral = errors.New("not a polynomial literal")

	// ErrMalformed is returned for lines that are intended as literals but do not follow the grammar.
	ErrMalformed = errors.New("malformed polynomial literal")

	// ErrTooDeep is returned when a literal nests more variables than allowed by Parser.MaxDepth.
	// It wraps ErrMalformed.
	ErrTooDeep = fmt.Errorf("%w: nesting too deep", ErrMalformed)
)

// SyntaxError describes why and where a line failed to parse.
// It unwraps to ErrNotLiteral, ErrMalformed or ErrTooDeep.
type SyntaxError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: offset %d: %s", e.Err, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parser parses polynomial literals.
// The zero value is a parser without nesting limit.
type Parser struct {
	// MaxDepth is the maximum number of nested literals, that is the maximum number of variables of a
	// parsed polynomial. Zero or a negative value disables the limit.
	MaxDepth int
}

// Parse parses line with a Parser without nesting limit.
func Parse(line string) (poly.Polynomial, error) {
	return Parser{}.Parse(line)
}

// Parse parses line into a canonical polynomial. A trailing newline is ignored.
// On failure the returned polynomial is zero and the error is a *SyntaxError.
func (p Parser) Parse(line string) (poly.Polynomial, error) {

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if line == "" {
		return poly.Zero(), &SyntaxError{Offset: 0, Msg: "empty line", Err: ErrNotLiteral}
	}

	if isLetter(line[0]) {
		return poly.Zero(), &SyntaxError{Offset: 0, Msg: fmt.Sprintf("unexpected %q", line[0]), Err: ErrNotLiteral}
	}

	s := &scanner{line: line, maxDepth: p.MaxDepth}

	if line[0] != '(' {

		c, err := s.scalar()
		if err != nil {
			return poly.Zero(), err
		}

		if !s.eof() {
			return poly.Zero(), s.errorf("unexpected %q after scalar", s.peek())
		}

		return poly.NewScalar(c), nil
	}

	monomials, err := s.literal(0)
	if err != nil {
		return poly.Zero(), err
	}

	if !s.eof() {
		release(monomials)
		return poly.Zero(), s.errorf("unexpected %q after literal", s.peek())
	}

	return poly.OwnMonomials(monomials), nil
}

// scanner is a recursive-descent parser over a single line.
type scanner struct {
	line     string
	pos      int
	maxDepth int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.line)
}

// peek returns the current byte, or 0 at the end of the line.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.line[s.pos]
}

func (s *scanner) expect(c byte) error {
	if s.peek() != c {
		if s.eof() {
			return s.errorf("expected %q, got end of line", c)
		}
		return s.errorf("expected %q, got %q", c, s.peek())
	}
	s.pos++
	return nil
}

func (s *scanner) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Offset: s.pos, Msg: fmt.Sprintf(format, args...), Err: ErrMalformed}
}

// literal parses a non-empty sum of monomials separated by '+'.
// On failure, every monomial parsed so far is released.
func (s *scanner) literal(depth int) (monomials []poly.Monomial, err error) {

	if s.maxDepth > 0 && depth >= s.maxDepth {
		return nil, &SyntaxError{Offset: s.pos, Msg: fmt.Sprintf("more than %d nested literals", s.maxDepth), Err: ErrTooDeep}
	}

	for {
		var mono poly.Monomial
		if mono, err = s.monomial(depth); err != nil {
			release(monomials)
			return nil, err
		}

		monomials = append(monomials, mono)

		if s.peek() != '+' {
			return monomials, nil
		}

		s.pos++

		if s.peek() != '(' {
			release(monomials)
			return nil, s.errorf("expected monomial after '+'")
		}
	}
}

// monomial parses '(' coefficient ',' exponent ')'.
func (s *scanner) monomial(depth int) (mono poly.Monomial, err error) {

	if err = s.expect('('); err != nil {
		return
	}

	var coeff poly.Polynomial

	switch c := s.peek(); {
	case c == '(':
		var monomials []poly.Monomial
		if monomials, err = s.literal(depth + 1); err != nil {
			return
		}
		coeff = poly.OwnMonomials(monomials)
	case c == '-' || isDigit(c):
		var v int64
		if v, err = s.scalar(); err != nil {
			return
		}
		coeff = poly.NewScalar(v)
	default:
		return mono, s.errorf("expected coefficient")
	}

	if err = s.expect(','); err != nil {
		coeff.Release()
		return
	}

	var exp uint32
	if exp, err = s.exponent(); err != nil {
		coeff.Release()
		return
	}

	if err = s.expect(')'); err != nil {
		coeff.Release()
		return
	}

	return poly.Monomial{Exp: exp, Coeff: coeff}, nil
}

// scalar parses an optionally negative decimal int64.
func (s *scanner) scalar() (c int64, err error) {

	start := s.pos

	if s.peek() == '-' {
		s.pos++
	}

	if !s.digits() {
		return 0, s.errorf("expected digit")
	}

	if c, err = strconv.ParseInt(s.line[start:s.pos], 10, 64); err != nil {
		return 0, &SyntaxError{Offset: start, Msg: "coefficient out of range", Err: ErrMalformed}
	}

	return
}

// exponent parses an unsigned decimal at most poly.MaxExponent.
func (s *scanner) exponent() (uint32, error) {

	start := s.pos

	if !s.digits() {
		return 0, s.errorf("expected exponent")
	}

	exp, err := strconv.ParseUint(s.line[start:s.pos], 10, 64)
	if err != nil || exp > poly.MaxExponent {
		return 0, &SyntaxError{Offset: start, Msg: "exponent out of range", Err: ErrMalformed}
	}

	return uint32(exp), nil
}

// digits advances over a run of decimal digits and reports whether it was non-empty.
func (s *scanner) digits() bool {
	start := s.pos
	for !s.eof() && isDigit(s.line[s.pos]) {
		s.pos++
	}
	return s.pos > start
}

func release(monomials []poly.Monomial) {
	for i := range monomials {
		monomials[i].Coeff.Release()
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
