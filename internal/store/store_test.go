package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CancelledContextFailsWithoutResult(t *testing.T) {
	s := createTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suppliers, err := s.ListSuppliers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, suppliers)

	id, err := s.AddSupplier(ctx, "Acme", "0212345678", "a@x.com")
	assert.Error(t, err)
	assert.Zero(t, id)
}

func TestStore_TimeoutOptionStillCompletesFastCalls(t *testing.T) {
	s := createTestStore(t)
	s.timeout = 5 * time.Second

	id, err := s.AddColour(context.Background(), "Teal")
	require.NoError(t, err)
	c, err := s.GetColourByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Teal", c.Name)
}

func TestStore_ConnectionsReturnedToPool(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// A missing row, a failed insert and a success each give the connection back
	for i := 0; i < 20; i++ {
		_, _ = s.GetSupplierByID(ctx, 9999)
		_, _ = s.AddCustomer(ctx, sampleCustomer(seededAdminLogin))
		_, err := s.ListColours(ctx)
		require.NoError(t, err)
	}

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	assert.Zero(t, sqlDB.Stats().InUse)
}
