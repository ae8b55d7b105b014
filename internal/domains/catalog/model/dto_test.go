package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func validCreate() CreateBookRequest {
	return CreateBookRequest{
		Title:    "Dune",
		Author:   "Frank Herbert",
		ISBN:     strPtr("9780441013593"),
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 5,
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	assert.NoError(t, validCreate().Validate())

	t.Run("isbn optional", func(t *testing.T) {
		req := validCreate()
		req.ISBN = nil
		assert.NoError(t, req.Validate())
	})

	t.Run("title required", func(t *testing.T) {
		req := validCreate()
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("price must be positive", func(t *testing.T) {
		req := validCreate()
		req.Price = decimal.Zero
		assert.Error(t, req.Validate())

		req.Price = decimal.RequireFromString("-1")
		assert.Error(t, req.Validate())
	})

	t.Run("quantity may be zero but not negative", func(t *testing.T) {
		req := validCreate()
		req.Quantity = 0
		assert.NoError(t, req.Validate())

		req.Quantity = -1
		assert.Error(t, req.Validate())
	})

	t.Run("isbn length bounds", func(t *testing.T) {
		req := validCreate()
		req.ISBN = strPtr("123456789") // 9 chars
		assert.Error(t, req.Validate())

		req.ISBN = strPtr("1234567890") // 10 chars
		assert.NoError(t, req.Validate())

		req.ISBN = strPtr("1234567890123") // 13 chars
		assert.NoError(t, req.Validate())

		req.ISBN = strPtr("12345678901234") // 14 chars
		assert.Error(t, req.Validate())
	})
}

func TestUpdateBookRequestValidate(t *testing.T) {
	// Empty patch is valid; it just leaves the book untouched.
	assert.NoError(t, UpdateBookRequest{}.Validate())

	qty := 3
	assert.NoError(t, UpdateBookRequest{Quantity: &qty}.Validate())

	t.Run("supplied fields still validated", func(t *testing.T) {
		assert.Error(t, UpdateBookRequest{Title: strPtr("")}.Validate())
		assert.Error(t, UpdateBookRequest{ISBN: strPtr("short")}.Validate())

		badPrice := decimal.Zero
		assert.Error(t, UpdateBookRequest{Price: &badPrice}.Validate())

		negative := -1
		assert.Error(t, UpdateBookRequest{Quantity: &negative}.Validate())
	})
}

func TestListBooksQueryValidate(t *testing.T) {
	assert.NoError(t, ListBooksQuery{Limit: 100}.Validate())
	assert.NoError(t, ListBooksQuery{Skip: 10, Limit: 1, Search: "dune"}.Validate())

	assert.Error(t, ListBooksQuery{Skip: -1, Limit: 100}.Validate())
	// An explicit limit=0 is out of bounds, not "unset".
	assert.Error(t, ListBooksQuery{Limit: 0}.Validate())
	assert.Error(t, ListBooksQuery{Limit: 1001}.Validate())
}
