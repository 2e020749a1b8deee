// Package common defines sentinel errors shared across repository, service,
// and transport layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("article already saved")
	ErrConflict  = errors.New("username or email already taken")

	// Validation / signup workflow errors.
	ErrValidation   = errors.New("validation error")
	ErrNoCode       = errors.New("verification code expired or missing")
	ErrCodeMismatch = errors.New("verification code mismatch")
	ErrNotVerified  = errors.New("email not verified")

	// Auth errors. ErrInvalidCredentials deliberately covers both an unknown
	// identifier and a wrong password so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Collaborator failures.
	ErrDelivery = errors.New("email delivery failed")
	ErrUpstream = errors.New("upstream provider failed")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
