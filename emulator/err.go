package emulator

import (
	"errors"

	"github.com/ezrec/esilvm/translate"
)

var f = translate.From

var (
	// Listing errors
	ErrDirectiveSyntax  = errors.New(f("directive syntax"))
	ErrDirectiveInvalid = errors.New(f("directive invalid"))
	ErrEquateDuplicate  = errors.New(f(".equ duplicated"))
)

// ErrSyntax indicates the location of a listing parse error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
