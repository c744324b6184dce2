package pagearena

import (
	"errors"
	"fmt"
)

// Error represents a pagearena error with an error code.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagearena: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("pagearena: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode identifies the kind of failure the allocator reports.
type ErrorCode int

const (
	// Success indicates the operation completed without error.
	Success ErrorCode = 0

	// ErrOutOfMemory indicates no page (small path) or no contiguous run
	// of the required length (multi-page path) is available. This is a
	// normal outcome and is always surfaced to the caller.
	ErrOutOfMemory ErrorCode = iota

	// ErrInvalidAddress indicates free/realloc was called with a pointer
	// that is not the head of a currently live block: double-free,
	// foreign pointer, or a mid-run multi-page address.
	ErrInvalidAddress

	// ErrConfiguration indicates construction-time validation of the
	// tunables failed; the allocator instance is not constructed.
	ErrConfiguration
)

var errorMessages = map[ErrorCode]string{
	Success:           "success",
	ErrOutOfMemory:    "out of memory",
	ErrInvalidAddress: "invalid address",
	ErrConfiguration:  "invalid configuration",
}

func (c ErrorCode) String() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}

// NewError creates a new Error with the given code.
func NewError(code ErrorCode) *Error {
	return &Error{Code: code, Message: code.String()}
}

// WrapError creates a new Error wrapping another error.
func WrapError(code ErrorCode, err error) *Error {
	e := NewError(code)
	e.Err = err
	return e
}

// IsOutOfMemory reports whether err is (or wraps) an out-of-memory error.
func IsOutOfMemory(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrOutOfMemory
}

// IsInvalidAddress reports whether err is (or wraps) an invalid-address error.
func IsInvalidAddress(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrInvalidAddress
}

// IsConfigurationError reports whether err is (or wraps) a configuration error.
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrConfiguration
}
