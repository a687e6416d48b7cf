package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderAssignsNumber(t *testing.T) {
	db := newTestDB(t)

	order := Order{}
	require.NoError(t, db.Create(&order).Error)

	assert.NotZero(t, order.ID)
	assert.Equal(t, fmt.Sprintf("ORD-%05d", order.ID), order.OrderNumber)

	// The number must be on the stored row, not only in memory.
	var stored Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
}

func TestCreateOrderDefaults(t *testing.T) {
	db := newTestDB(t)

	order := Order{}
	require.NoError(t, db.Create(&order).Error)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.False(t, order.CreationDate.IsZero())
	assert.True(t, order.TotalFinalPrice.IsZero())
	assert.Equal(t, uint(0), order.TotalProductsCount)
	assert.Equal(t, "ORD-00001", order.OrderNumber)
}

func TestOrderNumbersAreUnique(t *testing.T) {
	db := newTestDB(t)

	first := Order{}
	second := Order{}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	assert.Equal(t, "ORD-00001", first.OrderNumber)
	assert.Equal(t, "ORD-00002", second.OrderNumber)
}

func TestOrderNumberSurvivesResave(t *testing.T) {
	db := newTestDB(t)

	order := Order{}
	require.NoError(t, db.Create(&order).Error)
	number := order.OrderNumber

	order.Status = OrderStatusCompleted
	require.NoError(t, db.Save(&order).Error)

	var stored Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, number, stored.OrderNumber)
	assert.Equal(t, OrderStatusCompleted, stored.Status)
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusPending))
	assert.True(t, ValidOrderStatus(OrderStatusInProgress))
	assert.True(t, ValidOrderStatus(OrderStatusCompleted))
	assert.False(t, ValidOrderStatus("Shipped"))
	assert.False(t, ValidOrderStatus(""))
}
