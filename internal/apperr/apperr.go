package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error for HTTP status mapping. Services attach a
// Kind once; the boundary error handler does the rest.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindConflict
	KindTimeout
	KindCanceled
	KindUnsupported
	KindNotImplemented
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf unwraps err looking for an *Error; anything unclassified is
// internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindConflict:
		return fiber.StatusConflict
	case KindTimeout:
		return fiber.StatusGatewayTimeout
	case KindCanceled:
		return fiber.StatusRequestTimeout
	case KindUnsupported:
		return fiber.StatusMethodNotAllowed
	case KindNotImplemented:
		return fiber.StatusNotImplemented
	default:
		return fiber.StatusInternalServerError
	}
}

func (k Kind) Title() string {
	switch k {
	case KindValidation:
		return "Validation failed"
	case KindNotFound:
		return "Resource not found"
	case KindUnauthorized:
		return "Unauthorized"
	case KindConflict:
		return "Concurrency conflict"
	case KindTimeout:
		return "Operation timed out"
	case KindCanceled:
		return "Operation canceled"
	case KindUnsupported:
		return "Operation not supported"
	case KindNotImplemented:
		return "Not implemented"
	default:
		return "Internal Server Error"
	}
}

// Type is the machine-readable error type written into problem bodies.
func (k Kind) Type() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	case KindUnsupported:
		return "unsupported"
	case KindNotImplemented:
		return "not_implemented"
	default:
		return "internal_error"
	}
}
