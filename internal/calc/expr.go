package calc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Op is a binary operator understood by the evaluator.
type Op string

const (
	OpNone Op = ""
	OpAdd  Op = "+"
	OpSub  Op = "-"
	OpMul  Op = "*"
	OpDiv  Op = "/"
	OpMod  Op = "%"
	OpPow  Op = "^"
	OpRoot Op = "root"
	OpCmp  Op = "cmp"
)

var (
	// ErrSyntax indicates a line that is not "<operand> [<op> <operand>]".
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownOp indicates an operator outside the supported set.
	ErrUnknownOp = errors.New("unknown operator")
)

// Expr is one parsed input line. Op is OpNone for a lone operand.
type Expr struct {
	Left  string
	Op    Op
	Right string
}

func (e Expr) String() string {
	if e.Op == OpNone {
		return e.Left
	}
	return fmt.Sprintf("%s %s %s", e.Left, e.Op, e.Right)
}

// ParseExpr splits a whitespace-separated line into an expression.
func ParseExpr(line string) (Expr, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return Expr{Left: fields[0]}, nil
	case 3:
		op, err := parseOp(fields[1])
		if err != nil {
			return Expr{}, err
		}
		return Expr{Left: fields[0], Op: op, Right: fields[2]}, nil
	case 0:
		return Expr{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	default:
		return Expr{}, fmt.Errorf("%w: expected <operand> <op> <operand>, got %d fields", ErrSyntax, len(fields))
	}
}

func parseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(s)); op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpRoot, OpCmp:
		return op, nil
	case "**":
		return OpPow, nil
	}
	return OpNone, fmt.Errorf("%w %q", ErrUnknownOp, s)
}

// Normalize folds compatibility forms (full-width digits, operators and
// spaces) to their ASCII counterparts with NFKC.
func Normalize(line string) string {
	return norm.NFKC.String(line)
}
