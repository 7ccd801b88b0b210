package domain

import "errors"

var (
	// ErrFetchFailed is returned when a read request against the catalog API fails
	ErrFetchFailed = errors.New("catalog fetch failed")

	// ErrNotFound is returned when an entity is not present in a store
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidRequest is returned when request parameters or payloads are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
