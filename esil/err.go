package esil

import (
	"errors"

	"github.com/ezrec/esilvm/translate"
)

var f = translate.From

var (
	// Stack errors
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrStackFull  = errors.New(f("stack full"))

	// Operator errors
	ErrNotImplemented = errors.New(f("operator not implemented"))
	ErrDivideByZero   = errors.New(f("divide by zero"))

	// Tokenizer errors
	ErrTokenAlloc = errors.New(f("token storage exhausted"))

	// Register errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
)

// ErrOperator tags an error with the operator that raised it.
type ErrOperator Operator

func (eo ErrOperator) Error() string {
	return f("operator '%v'", Operator(eo).String())
}

func (eo ErrOperator) Is(err error) (ok bool) {
	other, ok := err.(ErrOperator)
	ok = ok && other == eo
	return
}

// ErrUnknownSymbol is a token that is not an operator, register or literal.
type ErrUnknownSymbol string

func (err ErrUnknownSymbol) Error() string {
	return f("'%v' is not an operator, register or literal", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrToken locates an evaluation error at a token of the expression.
type ErrToken struct {
	Index int
	Token string
	Err   error
}

func (err ErrToken) Error() string {
	return f("token %d '%v' %v", err.Index, err.Token, err.Err)
}

func (err ErrToken) Unwrap() error {
	return err.Err
}
