// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"github.com/cockroachdb/errors"

	"linearcli/internal/service"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, invalid input).
	UserError = 1

	// AuthError indicates a missing or rejected credential.
	AuthError = 2

	// BackendError indicates a backend/API/network error.
	BackendError = 3
)

// For maps an error to its exit code by kind.
// Unmarked errors are backend errors.
func For(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, service.ErrUnauthenticated):
		return AuthError
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrInvalidInput):
		return UserError
	default:
		return BackendError
	}
}
