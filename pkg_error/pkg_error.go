package pkg_error

import (
	"errors"
)

// Custom error
var (
	// Numeric literal did not contain a single digit of its base
	ErrNotANumber = errors.New("not a number")

	// Theme messages
	ErrStyleNotFound = errors.New("style not found")
	ErrInvalidTheme  = errors.New("invalid theme")

	// File messages
	ErrInvalidRegion = errors.New("invalid region")
	ErrReadonly      = errors.New("file is readonly")
)
