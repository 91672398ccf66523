package service

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Errors returned by the backend and the commands are marked with
// one of these so callers can classify them with errors.Is; the message itself
// is what gets shown to the user.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrOperationFailed = errors.New("operation failed")
)

// NotAuthenticatedMessage is printed when no token is stored.
const NotAuthenticatedMessage = `Not authenticated. Please run "linear auth <token>" first.`

// Unauthenticated returns the error reported when no token is stored.
func Unauthenticated() error {
	return errors.Mark(errors.New(NotAuthenticatedMessage), ErrUnauthenticated)
}

// NotFoundf returns a formatted error marked as ErrNotFound.
func NotFoundf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// InvalidInputf returns a formatted error marked as ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}

// OperationFailedf returns a formatted error marked as ErrOperationFailed.
func OperationFailedf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrOperationFailed)
}
