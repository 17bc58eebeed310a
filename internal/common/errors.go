// Package common defines shared constants and sentinel errors used across
// client and server layers of kontax. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Decode-time errors. The scan flow recovers from both and resumes.
	ErrEmptyPayload       = errors.New("empty payload")
	ErrUnrecognizedFormat = errors.New("unrecognized payload format")

	// Merge-time validation error: no first name, last name or email.
	ErrIncompleteContact = errors.New("incomplete contact")

	// Store-level errors.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrorNotFound         = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
