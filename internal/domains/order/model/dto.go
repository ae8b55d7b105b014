package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	BookID        int64  `json:"book_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Quantity      int    `json:"quantity"`
}

func (req CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookID, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.CustomerName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.CustomerEmail, validation.Required, is.EmailFormat),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (req UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Status, validation.Required, validation.In(OrderStatuses...)),
	)
}

type ListOrdersQuery struct {
	Skip          int    `form:"skip"`
	Limit         int    `form:"limit,default=100"`
	CustomerEmail string `form:"customer_email"`
	Status        string `form:"status"`
}

func (q ListOrdersQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Skip, validation.Min(0)),
		// Required keeps an explicit limit=0 from slipping past Min, which
		// skips zero values. The binding default covers the absent case.
		validation.Field(&q.Limit, validation.Required, validation.Min(1), validation.Max(1000)),
	)
}

type OrderListResponse struct {
	Total  int     `json:"total"`
	Orders []Order `json:"orders"`
}

// OrderBookDetails is the live catalog view of an order's book, fetched on
// demand rather than stored.
type OrderBookDetails struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Available bool            `json:"available"`
}
