package common

import "errors"

var (
	ErrDivByZero                = errors.New("division by zero")
	ErrUnexpected               = errors.New("unexpected fraction format")
	ErrUnsupportedOperand       = errors.New("unsupported operand")
	ErrIntegerParse             = errors.New("invalid integer")
	ErrTooManyOrTooFewArguments = errors.New("too many or too few arguments")
)
