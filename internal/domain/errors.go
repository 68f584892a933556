package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the requested movie does not exist upstream
	ErrMovieNotFound = errors.New("movie not found")

	// ErrUnauthorized indicates the catalog rejected the API key
	ErrUnauthorized = errors.New("api key is invalid")

	// ErrUpstream indicates the catalog returned an unexpected status
	ErrUpstream = errors.New("catalog request failed")

	// ErrNotConfigured indicates no API key has been configured
	ErrNotConfigured = errors.New("api key is not configured")
)
