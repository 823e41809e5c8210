package domain

import "errors"

var (
	// ErrCatalogUnavailable is returned when the catalog source cannot be reached or parsed
	ErrCatalogUnavailable = errors.New("catalog source unavailable")

	// ErrIntentServiceFailure is returned when the structured-intent service call fails
	ErrIntentServiceFailure = errors.New("intent service request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
