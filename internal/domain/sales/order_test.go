package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates order successfully", func(t *testing.T) {
		order, err := NewOrder(orderDate, decimal.NewFromFloat(250.00), StatusPending)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, order.ID)
		assert.Equal(t, StatusPending, order.Status)
		assert.True(t, order.TotalValue.Equal(decimal.NewFromFloat(250.00)))
		assert.Nil(t, order.OpportunityID)
		assert.Empty(t, order.Items)
	})

	t.Run("fails with unknown status", func(t *testing.T) {
		order, err := NewOrder(orderDate, decimal.NewFromInt(100), OrderStatus("FINALIZADO"))

		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("fails with negative total", func(t *testing.T) {
		order, err := NewOrder(orderDate, decimal.NewFromInt(-1), StatusPending)

		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderAddItem(t *testing.T) {
	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	productID := uuid.New()

	newOrder := func(t *testing.T) *Order {
		order, err := NewOrder(orderDate, decimal.NewFromInt(250), StatusPending)
		require.NoError(t, err)
		return order
	}

	t.Run("adds item keyed by order and product", func(t *testing.T) {
		order := newOrder(t)

		item, err := order.AddItem(productID, 2, decimal.NewFromInt(125), "Esmeralda", "ARO_14")

		require.NoError(t, err)
		assert.Equal(t, order.ID, item.OrderID)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, SizeAro14, item.Size)
		assert.Empty(t, item.CustomSize)
		assert.Len(t, order.Items, 1)
	})

	t.Run("keeps free text for unmatched sizes", func(t *testing.T) {
		order := newOrder(t)

		item, err := order.AddItem(productID, 1, decimal.NewFromInt(80), "", "15.5mm")

		require.NoError(t, err)
		assert.Equal(t, SizeCustom, item.Size)
		assert.Equal(t, "15.5mm", item.CustomSize)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		order := newOrder(t)

		_, err := order.AddItem(productID, 0, decimal.NewFromInt(80), "", "UNICO")
		assert.Error(t, err)

		_, err = order.AddItem(productID, -3, decimal.NewFromInt(80), "", "UNICO")
		assert.Error(t, err)
		assert.Empty(t, order.Items)
	})

	t.Run("rejects the same product twice", func(t *testing.T) {
		order := newOrder(t)

		_, err := order.AddItem(productID, 1, decimal.NewFromInt(80), "", "UNICO")
		require.NoError(t, err)

		_, err = order.AddItem(productID, 2, decimal.NewFromInt(80), "", "UNICO")
		assert.Error(t, err)
		assert.Len(t, order.Items, 1)
	})
}

func TestOrderUpdateHeader(t *testing.T) {
	orderDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("overwrites scalar fields only", func(t *testing.T) {
		order, err := NewOrder(orderDate, decimal.NewFromInt(250), StatusPending)
		require.NoError(t, err)
		_, err = order.AddItem(uuid.New(), 1, decimal.NewFromInt(250), "", "ARO_12")
		require.NoError(t, err)

		newDate := orderDate.AddDate(0, 0, 7)
		err = order.UpdateHeader(newDate, decimal.NewFromInt(300), StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, newDate, order.OrderDate)
		assert.Equal(t, StatusCompleted, order.Status)
		assert.Len(t, order.Items, 1)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order, err := NewOrder(orderDate, decimal.NewFromInt(250), StatusPending)
		require.NoError(t, err)

		err = order.UpdateHeader(orderDate, decimal.NewFromInt(250), OrderStatus("nope"))

		assert.Error(t, err)
		assert.Equal(t, StatusPending, order.Status)
	})
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPending, StatusConfirmed, StatusProduction, StatusPaid,
		StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("ABERTO").Valid())
}
