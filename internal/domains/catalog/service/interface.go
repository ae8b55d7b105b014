package service

import (
	"context"

	"bookstore-services/internal/domains/catalog/model"
)

type BookService interface {
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	ListBooks(ctx context.Context, query model.ListBooksQuery) (*model.BookListResponse, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}
