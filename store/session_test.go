package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/storage"
)

func TestSession_StartReplaceEnd(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(storage.NewMemorySlots())

	active, err := sessions.Active(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, sessions.Start(ctx, "s1", "admin@hugodiaz.cl"))
	active, err = sessions.Active(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, active)
	email, err := sessions.Email(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@hugodiaz.cl", email)

	require.NoError(t, sessions.Start(ctx, "s2", "admin@hugodiaz.cl"))
	active, err = sessions.Active(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, sessions.End(ctx))
	active, err = sessions.Active(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, active)
	email, err = sessions.Email(ctx)
	require.NoError(t, err)
	assert.Empty(t, email)

	active, err = sessions.Active(ctx, "")
	require.NoError(t, err)
	assert.False(t, active)
}
