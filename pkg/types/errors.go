package types

import "errors"

// Storage errors. The store returns these sentinels so the API layer can
// map them to status codes without inspecting messages.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates an empty or malformed entity ID.
	ErrInvalidID = errors.New("invalid id")

	// ErrCategoryNotFound indicates a note write referenced a category
	// that does not exist. Distinct from ErrNotFound so the API can
	// report it as a validation failure rather than a missing resource.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("store is closed")
)

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data dir must not be empty")
)
