package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore-services/internal/domains/order/model"
)

func TestBuildOrderWhereClause(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		clause, args := buildOrderWhereClause(&model.OrderFilter{})
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("email only", func(t *testing.T) {
		clause, args := buildOrderWhereClause(&model.OrderFilter{CustomerEmail: "paul@arrakis.example"})
		assert.Equal(t, " WHERE customer_email = $1", clause)
		assert.Equal(t, []interface{}{"paul@arrakis.example"}, args)
	})

	t.Run("status only", func(t *testing.T) {
		clause, args := buildOrderWhereClause(&model.OrderFilter{Status: model.OrderStatusPending})
		assert.Equal(t, " WHERE status = $1", clause)
		assert.Equal(t, []interface{}{"pending"}, args)
	})

	t.Run("both filters combined", func(t *testing.T) {
		clause, args := buildOrderWhereClause(&model.OrderFilter{
			CustomerEmail: "paul@arrakis.example",
			Status:        model.OrderStatusShipped,
		})
		assert.Equal(t, " WHERE customer_email = $1 AND status = $2", clause)
		assert.Equal(t, []interface{}{"paul@arrakis.example", "shipped"}, args)
	})
}
