package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is the catalog entity. IDs are server-assigned by the database.
type Book struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        *string         `json:"isbn"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BookFilter carries list/search parameters down to the repository.
type BookFilter struct {
	Search string
	Skip   int
	Limit  int
}
