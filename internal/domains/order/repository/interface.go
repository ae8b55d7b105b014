package repository

import (
	"context"

	"bookstore-services/internal/domains/order/model"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}
