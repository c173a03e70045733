// Package types holds the error taxonomy and small shared value types used
// across the handler layer.
//
// Three error kinds cross the service boundary:
//
//   - invalid parameter: a caller-supplied argument violates a precondition.
//     Never retried; surfaced as 400.
//   - user not authorized: the repository refused the operation for this
//     caller. Passed through unchanged; surfaced as 403.
//   - property server: any failure originating from the repository itself
//     (connectivity, malformed data, conversion failure). Non-retryable at
//     this layer; surfaced as 500.
//
// Not-found for single-entity lookups by GUID is its own kind (404). "No
// results" on list queries is a normal empty outcome, never an error.
package types

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors. Check with errors.Is, wrap with errors.Wrap to add
// context while preserving the kind.
var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrUserNotAuthorized = errors.New("user not authorized")
	ErrNotFound          = errors.New("entity not found")
	ErrPropertyServer    = errors.New("property server error")
)

// NewInvalidParameterf creates an invalid-parameter error with a formatted message.
func NewInvalidParameterf(format string, args ...interface{}) error {
	return errors.Wrap(ErrInvalidParameter, errors.Newf(format, args...).Error())
}

// NewNotFoundf creates a not-found error with a formatted message.
func NewNotFoundf(format string, args ...interface{}) error {
	return errors.Wrap(ErrNotFound, errors.Newf(format, args...).Error())
}

// NewUserNotAuthorizedf creates an authorization error with a formatted message.
func NewUserNotAuthorizedf(format string, args ...interface{}) error {
	return errors.Wrap(ErrUserNotAuthorized, errors.Newf(format, args...).Error())
}

// WrapPropertyServer marks err as a repository-side failure and adds context.
func WrapPropertyServer(err error, context string) error {
	return errors.Wrap(errors.Wrap(ErrPropertyServer, err.Error()), context)
}

// NewPropertyServerf creates a repository-side failure with a formatted message.
func NewPropertyServerf(format string, args ...interface{}) error {
	return errors.Wrap(ErrPropertyServer, errors.Newf(format, args...).Error())
}

// IsInvalidParameter reports whether err is or wraps ErrInvalidParameter.
func IsInvalidParameter(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidParameter)
}

// IsUserNotAuthorized reports whether err is or wraps ErrUserNotAuthorized.
func IsUserNotAuthorized(err error) bool {
	return err != nil && errors.Is(err, ErrUserNotAuthorized)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsPropertyServer reports whether err is or wraps ErrPropertyServer.
func IsPropertyServer(err error) bool {
	return err != nil && errors.Is(err, ErrPropertyServer)
}
