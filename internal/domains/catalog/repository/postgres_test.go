package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore-services/internal/domains/catalog/model"
)

func TestBuildBookWhereClause(t *testing.T) {
	t.Run("no search", func(t *testing.T) {
		clause, args := buildBookWhereClause(&model.BookFilter{})
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("search matches title author and isbn", func(t *testing.T) {
		clause, args := buildBookWhereClause(&model.BookFilter{Search: "dune"})
		assert.Equal(t, " WHERE (title ILIKE $1 OR author ILIKE $1 OR isbn ILIKE $1)", clause)
		assert.Equal(t, []interface{}{"%dune%"}, args)
	})
}
