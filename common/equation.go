package common

import (
	"fmt"
	"strings"
)

type Equation struct {
	Args [2]Arg
	Op   Operator
}

// ParseEquation reads "operand operator operand" separated by any run of
// whitespace. Errors from the operand and operator parsers are returned
// as they are so callers can tell them apart.
func ParseEquation(line string) (*Equation, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %d tokens in %q", ErrTooManyOrTooFewArguments, len(parts), strings.TrimSpace(line))
	}

	a0, err := ParseArg(parts[0])
	if err != nil {
		return nil, err
	}
	op, err := ParseOperator(parts[1])
	if err != nil {
		return nil, err
	}
	a1, err := ParseArg(parts[2])
	if err != nil {
		return nil, err
	}
	return &Equation{Args: [2]Arg{a0, a1}, Op: op}, nil
}

func (e *Equation) String() string {
	return fmt.Sprintf("%s %s %s", e.Args[0], e.Op, e.Args[1])
}

// Solve evaluates the operator over the improper forms of both operands and
// returns the result reduced and in mixed form.
func (e *Equation) Solve() (Arg, error) {
	x, y := e.Args[0].MixedToImproper(), e.Args[1].MixedToImproper()
	if x.Denominator == 0 || y.Denominator == 0 {
		return Arg{}, fmt.Errorf("%w in %s", ErrDivByZero, e)
	}

	var out Arg
	switch e.Op {
	case OperatorAdd:
		out.Numerator = x.Numerator*y.Denominator + y.Numerator*x.Denominator
		out.Denominator = x.Denominator * y.Denominator
	case OperatorSub:
		out.Numerator = x.Numerator*y.Denominator - y.Numerator*x.Denominator
		out.Denominator = x.Denominator * y.Denominator
	case OperatorMul:
		out.Numerator = x.Numerator * y.Numerator
		out.Denominator = x.Denominator * y.Denominator
	case OperatorDiv:
		out.Numerator = x.Numerator * y.Denominator
		out.Denominator = x.Denominator * y.Numerator
	default:
		return Arg{}, fmt.Errorf("%w %s", ErrUnsupportedOperand, e.Op)
	}
	if out.Denominator == 0 {
		return Arg{}, fmt.Errorf("%w in %s", ErrDivByZero, e)
	}

	out = out.Reduce()
	if out.Denominator < 0 {
		out.Denominator = -out.Denominator
		out.Numerator = -out.Numerator
	}
	return out.ImproperToMixed(), nil
}
