// internal/extract/errors.go
package extract

import (
	"errors"
	"fmt"
)

// Common extraction errors
var (
	ErrMissingInput   = errors.New("missing input file")
	ErrParse          = errors.New("failed to parse page")
	ErrUnknownCounty  = errors.New("unknown county")
	ErrUnknownUseCode = errors.New("unknown use code")
	ErrMissingField   = errors.New("required field not found")
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeParse      ErrorCode = "PARSE_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION"
	ErrCodeMapping    ErrorCode = "MAPPING"
	ErrCodeIO         ErrorCode = "IO_ERROR"
)

// Error wraps extraction failures with a code and free-form details such as
// the parcel id or the label that was being looked up.
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches another *Error by code, otherwise defers to the underlying error.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewError creates a new Error
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
		Details:    make(map[string]interface{}),
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// MissingField reports a required label that was not on the page.
func MissingField(label string) *Error {
	return NewError(ErrCodeNotFound, fmt.Sprintf("field %q", label), ErrMissingField).
		WithDetail("label", label)
}
