package model

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// UnavailableError rejects an order whose availability check failed. The
// reason is a business-rule rejection, never a server fault, even when it
// originates from a collaborator outage.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return "Book is not available"
	}
	return e.Reason
}

// BookGoneError means an order's referenced book no longer exists in the
// catalog.
type BookGoneError struct {
	BookID int64
}

func (e *BookGoneError) Error() string {
	return fmt.Sprintf("Book %d no longer exists in catalog", e.BookID)
}
