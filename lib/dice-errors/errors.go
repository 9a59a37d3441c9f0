package errors

import (
	"errors"
	"fmt"
)

const (
	// Parse is the error type that occurs when a string is not valid dice notation.
	Parse = iota
	// Count is the error type that occurs when a dice count is negative, or would become negative.
	Count
	// Face is the error type that occurs when a dice face is out of range for its type.
	Face
	// FaceMismatch is the error type that occurs when dice of different faces are combined.
	FaceMismatch
	// TypeMismatch is the error type that occurs when an operand of an unsupported type is used.
	TypeMismatch
	// Unexpected errors should not occur.
	Unexpected = 999
)

// Sentinel values for errors.Is. Matching is done on Code only.
var (
	ErrParse        = &DiceError{Code: Parse}
	ErrCount        = &DiceError{Code: Count}
	ErrFace         = &DiceError{Code: Face}
	ErrFaceMismatch = &DiceError{Code: FaceMismatch}
	ErrTypeMismatch = &DiceError{Code: TypeMismatch}
)

//DiceError represents a custom error thrown while handling dice
type DiceError struct {
	Err   string
	Code  int32
	Inner error
}

//Error returns the message string
func (e DiceError) Error() string {
	return e.Err
}

// Unwrap returns the error that caused this one, if any.
func (e DiceError) Unwrap() error {
	return e.Inner
}

// Is reports whether target is a DiceError with the same Code.
func (e DiceError) Is(target error) bool {
	var t *DiceError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

//NewDiceError creates a new DiceError
func NewDiceError(text string, code int32, inner error) *DiceError {
	return &DiceError{
		Err:   text,
		Code:  code,
		Inner: inner,
	}
}

//Newf creates a new DiceError with fmt.Sprintf
func Newf(code int32, text string, a ...interface{}) *DiceError {
	return NewDiceError(fmt.Sprintf(text, a...), code, nil)
}

// CodeOf returns the Code of the first DiceError in err's chain, or Unexpected.
func CodeOf(err error) int32 {
	var e *DiceError
	if errors.As(err, &e) {
		return e.Code
	}
	return Unexpected
}
