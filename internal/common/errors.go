// Package common defines shared sentinel errors used across the identity
// storage layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors, raised before any statement is built.
	ErrInvalidArgument = errors.New("invalid argument")

	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrAmbiguousResult = errors.New("more than one row matched")

	// Capability errors.
	ErrNotSupported = errors.New("not supported")

	// Auth errors (invalid, malformed or stale token).
	ErrInvalidToken = errors.New("invalid token")
)
