package apperr

import "net/http"

// Kind classifies a request failure. Handlers return an *Error and the
// fiber error handler maps its Kind to an HTTP status in one place.
type Kind int

const (
	Unauthenticated Kind = iota
	InvalidCredentials
	Forbidden
	NotFound
	BadRequest
	Internal
)

// HTTPStatus returns the status code a Kind maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case Unauthenticated, InvalidCredentials:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed failure returned by handlers and middleware.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func ErrUnauthenticated() *Error { return New(Unauthenticated, "unauthorized") }

func ErrInvalidCredentials() *Error { return New(InvalidCredentials, "bad creds") }

func ErrForbidden() *Error { return New(Forbidden, "forbidden") }

func ErrNotFound() *Error { return New(NotFound, "not found") }
