package store

import (
	"context"
	"testing"

	"capshop/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Lifecycle(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	fields := newCapFixture(t, s)
	capID, err := s.AddCap(ctx, fields)
	require.NoError(t, err)
	userID, err := s.AddCustomer(ctx, sampleCustomer("jdoe"))
	require.NoError(t, err)

	items := []domain.OrderItem{
		{CapID: capID, ColourID: fields.ColourIDs[0], Quantity: 2},
		{CapID: capID, ColourID: fields.ColourIDs[1], Quantity: 1},
	}
	orderID, err := s.AddOrder(ctx, userID, items)
	require.NoError(t, err)

	order, err := s.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, domain.OrderStatusWaiting, order.Status)
	assert.ElementsMatch(t, items, order.Items)

	require.NoError(t, s.UpdateOrderStatus(ctx, orderID, domain.OrderStatusPlaced))
	order, err = s.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)

	mine, err := s.ListOrdersForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, orderID, mine[0].ID)

	all, err := s.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	missing, err := s.GetOrderByID(ctx, orderID+50)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrder_RejectsUnknownReferences(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.AddOrder(ctx, 9999, nil)
	assert.Error(t, err)

	userID, err := s.AddCustomer(ctx, sampleCustomer("jdoe"))
	require.NoError(t, err)
	_, err = s.AddOrder(ctx, userID, []domain.OrderItem{{CapID: 9999, ColourID: 1, Quantity: 1}})
	assert.Error(t, err)

	orders, err := s.ListOrdersForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
