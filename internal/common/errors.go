// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")

	// Code allocation and append errors.
	ErrorCodeConflict = errors.New("code conflict")

	// Ingestion errors (asset key doesn't match the expected shape).
	ErrorMalformedKey = errors.New("malformed asset key")

	// Collaborator failures (identity verification, blob storage).
	ErrorUpstream = errors.New("upstream failure")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
