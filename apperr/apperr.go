// Package apperr defines the error kinds every storage and domain operation
// fails with. Controllers translate a kind into an HTTP status and an
// application code in the response envelope; nothing below the controller
// layer knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	// KindValidation covers malformed or missing input.
	KindValidation Kind = iota
	// KindAuth covers missing/invalid credentials or tokens.
	KindAuth
	// KindForbidden covers authenticated actors touching resources they do not own.
	KindForbidden
	// KindConflict covers uniqueness violations surfaced by the store.
	KindConflict
	// KindNotFound covers unknown identifiers.
	KindNotFound
	// KindInternal covers unexpected persistence or runtime failures.
	KindInternal
)

// Error is the concrete error carried between layers.
type Error struct {
	Kind    Kind
	Code    int // application code placed in the JSON envelope
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

// New builds an Error of the given kind.
func New(kind Kind, code int, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap builds an Error that keeps the underlying cause for logs.
func Wrap(kind Kind, code int, message string, err error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Err: err}
}

func Validation(code int, message string) *Error { return New(KindValidation, code, message) }
func Auth(code int, message string) *Error       { return New(KindAuth, code, message) }
func Forbidden(code int, message string) *Error  { return New(KindForbidden, code, message) }
func Conflict(code int, message string) *Error   { return New(KindConflict, code, message) }
func NotFound(code int, message string) *Error   { return New(KindNotFound, code, message) }

// Internal wraps an unexpected failure.
func Internal(code int, message string, err error) *Error {
	return Wrap(KindInternal, code, message, err)
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}

// HTTPStatus maps an error to its default HTTP status. Endpoints that need a
// domain-specific mapping (like/follow conflicts answer 400) override this
// at the boundary.
func HTTPStatus(err error) int {
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
