package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrBadResponse        = errors.New("bad response")
	ErrRejected           = errors.New("rejected")
)

// Error codes attached by the backend transport.
const (
	CodeTransport = "transport"
	CodeStatus    = "status"
	CodeDecode    = "decode"
	CodeRejected  = "rejected"
)

// Error carries an optional machine-readable code next to the message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost coded error in the chain.
func GetCode(err error) string {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return ""
		}
		if e.Code != "" {
			return e.Code
		}
		err = e.Err
	}
	return ""
}

// GetMessage returns the message of the outermost *Error, or err.Error()
// when there is none.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsServiceUnavailable reports whether the backend could not be reached.
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// IsBadResponse reports whether the backend answered with something unusable.
func IsBadResponse(err error) bool {
	return errors.Is(err, ErrBadResponse)
}

// IsRejected reports whether the backend refused an operation with an {err} result.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
