package common

import "fmt"

type Operator int

const (
	OperatorAdd Operator = iota
	OperatorSub
	OperatorMul
	OperatorDiv
)

func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OperatorAdd, nil
	case "-":
		return OperatorSub, nil
	case "x":
		return OperatorMul, nil
	case "/":
		return OperatorDiv, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedOperand, s)
}

func (o Operator) String() string {
	switch o {
	case OperatorAdd:
		return "+"
	case OperatorSub:
		return "-"
	case OperatorMul:
		return "x"
	case OperatorDiv:
		return "/"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}
