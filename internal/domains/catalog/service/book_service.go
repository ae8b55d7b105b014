package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore-services/internal/domains/catalog/model"
	"bookstore-services/internal/domains/catalog/repository"
)

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) ListBooks(ctx context.Context, query model.ListBooksQuery) (*model.BookListResponse, error) {
	filter := &model.BookFilter{
		Search: query.Search,
		Skip:   query.Skip,
		Limit:  query.Limit,
	}

	books, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return &model.BookListResponse{Total: total, Books: books}, nil
}

func (s *bookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	// ISBN uniqueness is enforced at write time across all books.
	if req.ISBN != nil {
		if err := s.ensureISBNFree(ctx, *req.ISBN, 0); err != nil {
			return nil, err
		}
	}

	book := &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.Book, error) {
	// Updating a book's ISBN to one used by a different book fails; updating
	// to its own current value succeeds.
	if req.ISBN != nil {
		if err := s.ensureISBNFree(ctx, *req.ISBN, id); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, &req)
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) ensureISBNFree(ctx context.Context, isbn string, selfID int64) error {
	existing, err := s.repo.GetByISBN(ctx, isbn)
	if errors.Is(err, model.ErrBookNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check isbn: %w", err)
	}
	if existing.ID != selfID {
		return &model.ISBNConflictError{ISBN: isbn}
	}
	return nil
}
