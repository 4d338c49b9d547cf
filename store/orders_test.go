package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/storage"
)

func TestOrders_AddAndStatus(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemorySlots()
	store := NewOrderStore(slots)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	o, err := store.Add(ctx, models.Order{OrderNumber: "HD-000123", Total: 2499})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(o.ID, "ORD-"))
	assert.Equal(t, models.OrderPending, o.Status)
	assert.False(t, o.CreatedAt.IsZero())

	o, found, err := store.UpdateStatus(ctx, o.ID, models.OrderShipped)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.OrderShipped, o.Status)
	assert.False(t, o.UpdatedAt.Before(o.CreatedAt))

	_, _, err = store.UpdateStatus(ctx, o.ID, "lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	shipped, err := NewOrderStore(slots).ByStatus(ctx, models.OrderShipped)
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, o.ID, shipped[0].ID)

	byNumber, found, err := store.FindByNumber(ctx, "HD-000123")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, o.ID, byNumber.ID)

	_, found, err = store.FindByNumber(ctx, "HD-999999")
	require.NoError(t, err)
	assert.False(t, found)
}
