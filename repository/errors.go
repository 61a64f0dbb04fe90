package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup or update references a record
	// that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is the base error for unique-constraint violations.
	ErrConflict = errors.New("duplicate record")

	ErrDuplicateUsername = fmt.Errorf("username already taken: %w", ErrConflict)
	ErrDuplicateEmail    = fmt.Errorf("email already registered: %w", ErrConflict)
)
