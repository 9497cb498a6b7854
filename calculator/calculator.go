// Package calculator implements a line-oriented stack calculator over sparse multivariate
// polynomials.
//
// Each input line is either ignored (empty, or starting with '#'), a command (starting with an
// ASCII letter) or a polynomial literal that is pushed on the stack. Results of commands are
// written to the output stream, one per line, and erroneous lines are reported on the error
// stream as "ERROR <line> <reason>".
package calculator

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/tuneinsight/polycalc/parser"
	"github.com/tuneinsight/polycalc/poly"
)

// Config configures a Calculator.
type Config struct {
	// MaxDepth bounds the nesting of the parsed literals, see parser.Parser.
	MaxDepth int
	// Logger receives debug records of every executed line. Nil disables logging.
	Logger *slog.Logger
}

// Calculator is a stack calculator reading one line at a time.
// A Calculator cannot be used concurrently.
type Calculator struct {
	stack  Stack
	parser parser.Parser
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	line   int
}

// NewCalculator returns a new Calculator with an empty stack, writing the results of the commands
// to out and the erroneous lines to errOut.
func NewCalculator(out, errOut io.Writer, cfg Config) *Calculator {

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Calculator{
		parser: parser.Parser{MaxDepth: cfg.MaxDepth},
		out:    out,
		errOut: errOut,
		logger: logger,
	}
}

// Stack returns the stack of the calculator.
func (c *Calculator) Stack() *Stack {
	return &c.stack
}

// Lines returns the number of lines processed so far.
func (c *Calculator) Lines() int {
	return c.line
}

// Reset clears the stack and restarts the line numbering.
func (c *Calculator) Reset() {
	c.stack.Clear()
	c.line = 0
}

// Run executes every line read from r until EOF. Erroneous lines are reported on the error
// stream and do not stop the execution. The returned error is non-nil only if reading r or
// writing to one of the streams fails.
func (c *Calculator) Run(r io.Reader) error {

	br := bufio.NewReader(r)

	for {
		line, rerr := br.ReadString('\n')

		if line != "" {
			if err := c.Exec(line); err != nil {

				var lerr *LineError
				if !errors.As(err, &lerr) {
					return fmt.Errorf("cannot Run: %w", err)
				}

				if _, err := fmt.Fprintln(c.errOut, lerr.Error()); err != nil {
					return fmt.Errorf("cannot Run: %w", err)
				}
			}
		}

		if errors.Is(rerr, io.EOF) {
			return nil
		}

		if rerr != nil {
			return fmt.Errorf("cannot Run: %w", rerr)
		}
	}
}

// Exec executes a single line, with or without its trailing newline, and increments the line
// number. An erroneous line returns a *LineError and leaves the stack untouched. Any other error
// is a failure to write on the output stream.
func (c *Calculator) Exec(line string) error {

	c.line++
	n := c.line

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if line == "" || line[0] == '#' {
		return nil
	}

	if isLetter(line[0]) {

		cmd, err := ParseCommand(line)
		if err != nil {
			c.logger.Debug("rejected command", "line", n, "reason", err)
			return &LineError{Line: n, Reason: err.(Reason)}
		}

		return c.execute(n, cmd)
	}

	p, err := c.parser.Parse(line)
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			c.logger.Debug("rejected literal", "line", n, "offset", serr.Offset, "error", serr.Msg)
		}
		return &LineError{Line: n, Reason: ReasonWrongPoly, Err: err}
	}

	c.stack.Push(p)

	c.logger.Debug("pushed literal", "line", n, "stack", c.stack.Len())

	return nil
}

func (c *Calculator) execute(n int, cmd Command) (err error) {

	if c.stack.Len() < cmd.Op.arity() {
		c.logger.Debug("stack underflow", "line", n, "command", cmd.Op, "stack", c.stack.Len())
		return &LineError{Line: n, Reason: ReasonStackUnderflow}
	}

	s := &c.stack

	switch cmd.Op {
	case OpZero:
		s.Push(poly.Zero())

	case OpIsCoeff:
		err = c.printBool(s.Top().IsScalar())

	case OpIsZero:
		err = c.printBool(s.Top().IsZero())

	case OpClone:
		s.Push(s.Top().Clone())

	case OpAdd, OpMul, OpSub:
		a := s.Pop()
		b := s.Pop()

		var res poly.Polynomial
		switch cmd.Op {
		case OpAdd:
			res = a.Add(b)
		case OpMul:
			res = a.Mul(b)
		default:
			res = a.Sub(b)
		}

		a.Release()
		b.Release()
		s.Push(res)

	case OpNeg:
		s.Replace(s.Top().Neg())

	case OpIsEq:
		err = c.printBool(s.Peek(0).Equal(s.Peek(1)))

	case OpDeg:
		err = c.printInt(s.Top().Degree())

	case OpDegBy:
		k := cmd.Index
		if k > math.MaxInt {
			k = math.MaxInt
		}
		err = c.printInt(s.Top().DegreeBy(int(k)))

	case OpAt:
		s.Replace(s.Top().At(cmd.Value))

	case OpPrint:
		err = c.print(s.Top())

	case OpPop:
		p := s.Pop()
		p.Release()

	case OpCompose:
		if uint64(s.Len()-1) < cmd.Index {
			c.logger.Debug("stack underflow", "line", n, "command", cmd.Op, "stack", s.Len())
			return &LineError{Line: n, Reason: ReasonStackUnderflow}
		}

		p := s.Pop()

		subs := make([]poly.Polynomial, cmd.Index)
		for i := len(subs) - 1; i >= 0; i-- {
			subs[i] = s.Pop()
		}

		s.Push(p.Compose(subs))

		p.Release()
		for i := range subs {
			subs[i].Release()
		}

	case OpHash:
		digest := s.Top().Digest()
		_, err = fmt.Fprintln(c.out, hex.EncodeToString(digest[:]))
	}

	if err != nil {
		return fmt.Errorf("cannot execute %s: %w", cmd.Op, err)
	}

	c.logger.Debug("executed command", "line", n, "command", cmd.Op, "stack", s.Len())

	return nil
}

func (c *Calculator) printBool(b bool) (err error) {
	if b {
		_, err = io.WriteString(c.out, "1\n")
	} else {
		_, err = io.WriteString(c.out, "0\n")
	}
	return
}

func (c *Calculator) printInt(v int) (err error) {
	_, err = io.WriteString(c.out, strconv.Itoa(v)+"\n")
	return
}

func (c *Calculator) print(p poly.Polynomial) (err error) {
	if _, err = p.WriteTo(c.out); err != nil {
		return
	}
	_, err = io.WriteString(c.out, "\n")
	return
}
