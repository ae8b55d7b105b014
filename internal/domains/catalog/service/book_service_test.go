package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-services/internal/domains/catalog/model"
)

// fakeBookRepo is an in-memory stand-in for the postgres repository.
type fakeBookRepo struct {
	nextID int64
	books  map[int64]model.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{nextID: 1, books: map[int64]model.Book{}}
}

func (r *fakeBookRepo) GetByID(_ context.Context, id int64) (*model.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &book, nil
}

func (r *fakeBookRepo) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	for _, book := range r.books {
		if book.ISBN != nil && *book.ISBN == isbn {
			return &book, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *fakeBookRepo) List(_ context.Context, _ *model.BookFilter) ([]model.Book, int, error) {
	var all []model.Book
	for _, book := range r.books {
		all = append(all, book)
	}
	return all, len(all), nil
}

func (r *fakeBookRepo) Create(_ context.Context, book *model.Book) error {
	book.ID = r.nextID
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	r.nextID++
	r.books[book.ID] = *book
	return nil
}

func (r *fakeBookRepo) Update(_ context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.ISBN != nil {
		book.ISBN = patch.ISBN
	}
	if patch.Price != nil {
		book.Price = *patch.Price
	}
	if patch.Quantity != nil {
		book.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		book.Description = patch.Description
	}
	book.UpdatedAt = time.Now()
	r.books[id] = book
	return &book, nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func strPtr(s string) *string { return &s }

func duneRequest(isbn *string) model.CreateBookRequest {
	return model.CreateBookRequest{
		Title:    "Dune",
		Author:   "Frank Herbert",
		ISBN:     isbn,
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 5,
	}
}

func TestCreateBook(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	book, err := svc.CreateBook(context.Background(), duneRequest(strPtr("9780441013593")))
	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 5, book.Quantity)
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	_, err := svc.CreateBook(context.Background(), duneRequest(strPtr("9780441013593")))
	require.NoError(t, err)

	_, err = svc.CreateBook(context.Background(), duneRequest(strPtr("9780441013593")))
	var conflict *model.ISBNConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Book with ISBN 9780441013593 already exists", conflict.Error())
}

func TestCreateBooksWithoutISBN(t *testing.T) {
	// ISBN is optional; uniqueness only applies when present.
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	_, err := svc.CreateBook(context.Background(), duneRequest(nil))
	require.NoError(t, err)
	_, err = svc.CreateBook(context.Background(), duneRequest(nil))
	require.NoError(t, err)
}

func TestUpdateBookISBNRules(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)
	ctx := context.Background()

	first, err := svc.CreateBook(ctx, duneRequest(strPtr("9780441013593")))
	require.NoError(t, err)
	second, err := svc.CreateBook(ctx, duneRequest(strPtr("9780441104024")))
	require.NoError(t, err)

	t.Run("taking another book's isbn fails", func(t *testing.T) {
		_, err := svc.UpdateBook(ctx, second.ID, model.UpdateBookRequest{ISBN: strPtr("9780441013593")})
		var conflict *model.ISBNConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("re-asserting own isbn succeeds", func(t *testing.T) {
		updated, err := svc.UpdateBook(ctx, first.ID, model.UpdateBookRequest{ISBN: strPtr("9780441013593")})
		require.NoError(t, err)
		assert.Equal(t, "9780441013593", *updated.ISBN)
	})
}

func TestUpdateBookPartial(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, duneRequest(strPtr("9780441013593")))
	require.NoError(t, err)

	qty := 42
	updated, err := svc.UpdateBook(ctx, book.ID, model.UpdateBookRequest{Quantity: &qty})
	require.NoError(t, err)

	// Only the supplied field changes.
	assert.Equal(t, 42, updated.Quantity)
	assert.Equal(t, "Dune", updated.Title)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, "9780441013593", *updated.ISBN)
}

func TestUpdateBookNotFound(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())

	_, err := svc.UpdateBook(context.Background(), 999, model.UpdateBookRequest{Title: strPtr("Ghost")})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, duneRequest(nil))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(ctx, book.ID))
	assert.ErrorIs(t, svc.DeleteBook(ctx, book.ID), model.ErrBookNotFound)
	_, err = svc.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
