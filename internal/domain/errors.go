package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a candidate record fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
