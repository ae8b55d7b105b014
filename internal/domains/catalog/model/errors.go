package model

import (
	"errors"
	"fmt"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// ISBNConflictError is returned when a create or update would violate ISBN
// uniqueness across the catalog.
type ISBNConflictError struct {
	ISBN string
}

func (e *ISBNConflictError) Error() string {
	return fmt.Sprintf("Book with ISBN %s already exists", e.ISBN)
}
