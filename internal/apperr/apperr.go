// Package apperr defines the structured errors shared by the services and the
// HTTP boundary. Every error carries a Kind and a client-safe message.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error for the boundary layer.
type Kind int

const (
	Internal Kind = iota
	Validation
	Unauthenticated
	Unauthorized
	NotFound
	DuplicateEmail
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthenticated:
		return "unauthenticated"
	case Unauthorized:
		return "unauthorized"
	case NotFound:
		return "not_found"
	case DuplicateEmail:
		return "duplicate_email"
	default:
		return "internal"
	}
}

// GenericMessage is returned to clients for Internal errors.
const GenericMessage = "Something went wrong, try again later"

var (
	// ErrInvalidToken is returned for malformed, forged or foreign tokens.
	ErrInvalidToken = New(Unauthenticated, "invalid token")
	// ErrExpiredToken is returned once a token is past its expiration.
	ErrExpiredToken = New(Unauthenticated, "token expired")
	// ErrInvalidCredentials is shared by the unknown-email and wrong-password paths.
	ErrInvalidCredentials = New(Unauthenticated, "Invalid credentials")
	// ErrNotOwner is returned by the ownership guard.
	ErrNotOwner = New(Unauthorized, "Not authorized to access this route")
)

// Error is a classified error with a message that is safe to show to clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a cause to a classified error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Validationf joins field-level messages into one Validation error.
// It returns nil when msgs is empty.
func Validationf(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return New(Validation, strings.Join(msgs, ","))
}

// KindOf reports the kind of err, or Internal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the client-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Msg
	}
	return GenericMessage
}

// Status maps err to an HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unauthorized:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case DuplicateEmail:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
