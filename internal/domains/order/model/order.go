package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// ORDER STATUS CONSTANTS
// =====================================================
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every accepted status value. Transitions are not
// restricted: any status may move to any other.
var OrderStatuses = []interface{}{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Order is a customer's request to purchase a quantity of one book.
// BookTitle, UnitPrice and TotalPrice are denormalized snapshots captured at
// creation time; later changes to the catalog never affect them.
type Order struct {
	ID            int64           `json:"id"`
	BookID        int64           `json:"book_id"`
	BookTitle     string          `json:"book_title"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderFilter carries list parameters down to the repository.
type OrderFilter struct {
	CustomerEmail string
	Status        string
	Skip          int
	Limit         int
}
