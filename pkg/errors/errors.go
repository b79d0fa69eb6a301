// Package errors provides coded errors for gramod.
//
// Every failure a user can cause carries a [Code], so both frontends can react
// to the kind of failure without matching on message text: the console exits,
// the form shows its prompt again.
//
//	err := errors.New(errors.ErrCodeInvalidModulus, "N should be larger than 1, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidModulus) {
//	    // ask again
//	}
//
// Causes are kept for errors.Unwrap:
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"   // input could not be read
	ErrCodeInvalidModulus Code = "INVALID_MODULUS" // N is not an integer > 1
	ErrCodeInvalidBase    Code = "INVALID_BASE"    // tower base below 2
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT" // unknown output format

	// ErrCodeSelfCheck means the reducer disagreed with a known residue.
	ErrCodeSelfCheck Code = "SELF_CHECK_FAILED"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// HTTPStatus maps the code to a response status.
func (c Code) HTTPStatus() int {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidModulus, ErrCodeInvalidBase, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is an error with a Code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like New but records cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns err's text without the code prefix. A wrapped cause is
// appended after a colon.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}

// HTTPStatus returns the response status for err.
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}
