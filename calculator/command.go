package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// Reason is the reason reported on an erroneous input line.
type Reason string

// Error reasons, as printed after the line number.
const (
	ReasonStackUnderflow     Reason = "STACK UNDERFLOW"
	ReasonWrongCommand       Reason = "WRONG COMMAND"
	ReasonWrongPoly          Reason = "WRONG POLY"
	ReasonDegByWrongVariable Reason = "DEG BY WRONG VARIABLE"
	ReasonAtWrongValue       Reason = "AT WRONG VALUE"
	ReasonComposeWrongParam  Reason = "COMPOSE WRONG PARAMETER"
)

func (r Reason) Error() string {
	return string(r)
}

// LineError is the error of a single input line.
// It unwraps to its Reason and, if any, to the underlying cause.
type LineError struct {
	Line   int
	Reason Reason
	Err    error
}

// Error returns the line as reported on the error stream: "ERROR <line> <reason>".
func (e *LineError) Error() string {
	return fmt.Sprintf("ERROR %d %s", e.Line, e.Reason)
}

func (e *LineError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// Op is a calculator command.
type Op int

const (
	OpZero Op = iota
	OpIsCoeff
	OpIsZero
	OpClone
	OpAdd
	OpMul
	OpNeg
	OpSub
	OpIsEq
	OpDeg
	OpDegBy
	OpAt
	OpPrint
	OpPop
	OpCompose
	OpHash
)

var opNames = [...]string{
	OpZero:    "ZERO",
	OpIsCoeff: "IS_COEFF",
	OpIsZero:  "IS_ZERO",
	OpClone:   "CLONE",
	OpAdd:     "ADD",
	OpMul:     "MUL",
	OpNeg:     "NEG",
	OpSub:     "SUB",
	OpIsEq:    "IS_EQ",
	OpDeg:     "DEG",
	OpDegBy:   "DEG_BY",
	OpAt:      "AT",
	OpPrint:   "PRINT",
	OpPop:     "POP",
	OpCompose: "COMPOSE",
	OpHash:    "HASH",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// arity is the number of polynomials the command needs on the stack.
// COMPOSE needs one more per substitution, which is checked against its argument.
func (op Op) arity() int {
	switch op {
	case OpZero:
		return 0
	case OpAdd, OpMul, OpSub, OpIsEq:
		return 2
	default:
		return 1
	}
}

// Command is a parsed command line.
type Command struct {
	Op Op
	// Value is the argument of AT.
	Value int64
	// Index is the argument of DEG_BY and COMPOSE.
	Index uint64
}

// ParseCommand parses a command line, without its trailing newline.
//
// AT, DEG_BY and COMPOSE take an argument separated from the command word by exactly one space.
// A missing or invalid argument is reported with the reason specific to the command, while a word
// that only starts like one of them, such as "ATX", is a wrong command.
func ParseCommand(line string) (cmd Command, err error) {

	switch {
	case strings.HasPrefix(line, "AT"):
		arg, err := argument(line, "AT", ReasonAtWrongValue)
		if err != nil {
			return cmd, err
		}
		if !isNumber(arg, true) {
			return cmd, ReasonAtWrongValue
		}
		if cmd.Value, err = strconv.ParseInt(arg, 10, 64); err != nil {
			return cmd, ReasonAtWrongValue
		}
		cmd.Op = OpAt
		return cmd, nil

	case strings.HasPrefix(line, "DEG_BY"):
		arg, err := argument(line, "DEG_BY", ReasonDegByWrongVariable)
		if err != nil {
			return cmd, err
		}
		if !isNumber(arg, false) {
			return cmd, ReasonDegByWrongVariable
		}
		if cmd.Index, err = strconv.ParseUint(arg, 10, 64); err != nil {
			return cmd, ReasonDegByWrongVariable
		}
		cmd.Op = OpDegBy
		return cmd, nil

	case strings.HasPrefix(line, "COMPOSE"):
		arg, err := argument(line, "COMPOSE", ReasonComposeWrongParam)
		if err != nil {
			return cmd, err
		}
		if !isNumber(arg, false) {
			return cmd, ReasonComposeWrongParam
		}
		if cmd.Index, err = strconv.ParseUint(arg, 10, 64); err != nil {
			return cmd, ReasonComposeWrongParam
		}
		cmd.Op = OpCompose
		return cmd, nil
	}

	for op, name := range opNames {
		if Op(op) == OpAt || Op(op) == OpDegBy || Op(op) == OpCompose {
			continue
		}
		if line == name {
			cmd.Op = Op(op)
			return cmd, nil
		}
	}

	return cmd, ReasonWrongCommand
}

// argument returns what follows "word " in line.
func argument(line, word string, missing Reason) (string, error) {

	rest := line[len(word):]

	if rest == "" {
		return "", missing
	}

	if rest[0] != ' ' {
		return "", ReasonWrongCommand
	}

	return rest[1:], nil
}

// isNumber reports whether s is a non-empty run of decimal digits, optionally preceded by a
// minus sign if signed is true.
func isNumber(s string, signed bool) bool {

	if signed && strings.HasPrefix(s, "-") {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
