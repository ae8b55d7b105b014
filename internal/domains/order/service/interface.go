package service

import (
	"context"

	catalogclient "bookstore-services/internal/clients/catalog"
	"bookstore-services/internal/domains/order/model"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context, query model.ListOrdersQuery) (*model.OrderListResponse, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	GetOrderBook(ctx context.Context, orderID int64) (*model.OrderBookDetails, error)
}

// CatalogClient is the remote-call seam the coordination logic depends on.
// Satisfied by clients/catalog.Client; faked in tests.
type CatalogClient interface {
	GetBook(ctx context.Context, bookID int64) (*catalogclient.BookSnapshot, error)
	CheckAvailability(ctx context.Context, bookID int64, required int) catalogclient.AvailabilityResult
	UpdateQuantity(ctx context.Context, bookID int64, quantity int) bool
}
