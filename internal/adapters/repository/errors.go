package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound       = errors.New("project not found")
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateID    = errors.New("duplicate id")
)
