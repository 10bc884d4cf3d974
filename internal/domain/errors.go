package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidFilter     = errors.New("invalid filter value")
	ErrInvalidRecipe     = errors.New("invalid recipe")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
