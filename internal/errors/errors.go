package errors

import (
	"errors"
	"fmt"
)

// Common error types for the task server
var (
	// Local input errors, caught before any remote call
	ErrValidation = errors.New("validation failed")

	// Identity errors
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrNoActiveSession      = errors.New("no active session")
	ErrUserNotFound         = errors.New("user not found")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// General errors
	ErrUnknown  = errors.New("unknown error")
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
