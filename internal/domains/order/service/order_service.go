package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	catalogclient "bookstore-services/internal/clients/catalog"
	"bookstore-services/internal/domains/order/model"
	"bookstore-services/internal/domains/order/repository"
)

type orderService struct {
	orderRepo repository.OrderRepository
	catalog   CatalogClient
}

func NewOrderService(orderRepo repository.OrderRepository, catalog CatalogClient) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   catalog,
	}
}

// CreateOrder is the availability-check-then-create sequence. The check and
// the store write are not atomic as a pair: concurrent orders may both pass
// the check against the same stock, and no decrement or reservation happens
// here. There is no compensation if the write fails after a successful check.
func (s *orderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	result := s.catalog.CheckAvailability(ctx, req.BookID, req.Quantity)

	if !result.Available {
		return nil, &model.UnavailableError{Reason: result.Reason}
	}
	if result.Book == nil {
		// Should not happen given the client's contract; reject anyway.
		return nil, &model.UnavailableError{}
	}

	unitPrice := result.Book.Price
	order := &model.Order{
		BookID:        req.BookID,
		BookTitle:     result.Book.Title,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Quantity:      req.Quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Status:        model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	log.Info().
		Int64("order_id", order.ID).
		Int64("book_id", order.BookID).
		Int("quantity", order.Quantity).
		Str("total_price", order.TotalPrice.String()).
		Msg("Order created")

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, query model.ListOrdersQuery) (*model.OrderListResponse, error) {
	filter := &model.OrderFilter{
		CustomerEmail: query.CustomerEmail,
		Status:        query.Status,
		Skip:          query.Skip,
		Limit:         query.Limit,
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return &model.OrderListResponse{Total: total, Orders: orders}, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	return s.orderRepo.UpdateStatus(ctx, id, status)
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.orderRepo.Delete(ctx, id)
}

// GetOrderBook fetches the current catalog state of an order's book.
func (s *orderService) GetOrderBook(ctx context.Context, orderID int64) (*model.OrderBookDetails, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	book, err := s.catalog.GetBook(ctx, order.BookID)
	if err != nil {
		if errors.Is(err, catalogclient.ErrNotFound) {
			return nil, &model.BookGoneError{BookID: order.BookID}
		}
		return nil, fmt.Errorf("fetch book %d: %w", order.BookID, err)
	}

	return &model.OrderBookDetails{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Price:     book.Price,
		Quantity:  book.Quantity,
		Available: book.Quantity > 0,
	}, nil
}
