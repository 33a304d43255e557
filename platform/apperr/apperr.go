// Package apperr provides standardized error types for the application.
// Clients return these typed errors and callers branch on the Kind instead
// of inspecting raw HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindNotFound indicates the upstream has no record for the request.
	KindNotFound
	// KindUnauthorized indicates the API key was rejected.
	KindUnauthorized
	// KindValidation indicates invalid input or configuration.
	KindValidation
	// KindUpstream indicates any other non-success status from the upstream.
	KindUpstream
	// KindTransport indicates the request never produced a response.
	KindTransport
	// KindBadResponse indicates a success status with an unreadable body.
	KindBadResponse
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	case KindBadResponse:
		return "bad_response"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional operation and cause.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Status  int    // Upstream HTTP status, 0 when none was received
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation on the error and returns it.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithStatus records the upstream HTTP status on the error and returns it.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// FromHTTPStatus maps a non-success upstream status to an error kind.
func FromHTTPStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusUnauthorized:
		return KindUnauthorized
	default:
		return KindUpstream
	}
}

// Convenience constructors for common error types.

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// GetKind extracts the error kind from an error chain.
// Returns KindUnknown if no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err carries an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
