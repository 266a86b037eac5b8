package domain

import "errors"

// Storage-level outcomes, translated by the repositories.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
