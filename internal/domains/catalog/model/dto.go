package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreateBookRequest struct {
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        *string         `json:"isbn"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description *string         `json:"description"`
}

func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.ISBN, validation.Length(10, 13)),
		validation.Field(&req.Price, validation.Required, validation.By(validatePositivePrice)),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}

// UpdateBookRequest is a partial patch. Only fields explicitly present in the
// request body are applied; nil means "leave untouched".
type UpdateBookRequest struct {
	Title       *string          `json:"title"`
	Author      *string          `json:"author"`
	ISBN        *string          `json:"isbn"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Description *string          `json:"description"`
}

func (req UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.Author, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.ISBN, validation.Length(10, 13)),
		validation.Field(&req.Price, validation.By(validatePositivePrice)),
		validation.Field(&req.Quantity, validation.Min(0)),
	)
}

type ListBooksQuery struct {
	Skip   int    `form:"skip"`
	Limit  int    `form:"limit,default=100"`
	Search string `form:"search"`
}

func (q ListBooksQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Skip, validation.Min(0)),
		// Required keeps an explicit limit=0 from slipping past Min, which
		// skips zero values. The binding default covers the absent case.
		validation.Field(&q.Limit, validation.Required, validation.Min(1), validation.Max(1000)),
	)
}

type BookListResponse struct {
	Total int    `json:"total"`
	Books []Book `json:"books"`
}

func validatePositivePrice(value interface{}) error {
	var price decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		price = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		price = *v
	default:
		return nil
	}

	if price.Cmp(decimal.Zero) <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}
