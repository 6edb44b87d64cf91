package store

import "errors"

// Predefined errors for the store layer.
var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrNoUpdateFields indicates an update request carrying no fields.
	ErrNoUpdateFields = errors.New("no fields to update")
)
