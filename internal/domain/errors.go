// Package domain holds the error taxonomy shared by the repositories and
// the application layer.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSelfFollow rejects edges whose source and target are the same user.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrInvalidCredentials is returned for every authentication failure.
	// It deliberately does not say whether the username or the password
	// was wrong, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a required field that was left empty.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return e.Field + " is required"
}

// ConflictError reports a uniqueness violation on username or email.
type ConflictError struct {
	Field string
	Value string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}

// NotFoundError reports an operation referencing an unknown user id.
type NotFoundError struct {
	UserID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.UserID)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
