// Package apperr defines the error kinds shared by the recipe store and the console.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownEntry  = errors.New("no such entry")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidRating = errors.New("rating must be a whole number from 1 to 5")
	ErrOutOfRange    = errors.New("position out of range")
	ErrCancelled     = errors.New("cancelled")
)
