package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrInvalidLanguage = New(
		"INVALID_LANGUAGE",
		"Unsupported dataset language",
		http.StatusBadRequest,
	)

	ErrDatasetUnavailable = New(
		"DATASET_UNAVAILABLE",
		"Dataset could not be loaded",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
