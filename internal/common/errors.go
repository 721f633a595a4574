// Package common defines shared constants and sentinel errors used across
// SkinFlow components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Registry errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session errors.
	ErrNoActiveSession = errors.New("no active session")
)
