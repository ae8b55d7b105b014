package repository

import (
	"context"

	"bookstore-services/internal/domains/catalog/model"
)

type BookRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)
	List(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error)
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}
