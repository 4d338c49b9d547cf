package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/storage"
)

func TestSettings_SeedPatchReset(t *testing.T) {
	ctx := context.Background()
	slots := storage.NewMemorySlots()
	store := NewSettingsStore(slots)

	s, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	s, err = store.Patch(ctx, []byte(`{"phone":"+56 2 0000 0000","showTestimonials":false}`))
	require.NoError(t, err)
	assert.Equal(t, "+56 2 0000 0000", s.Phone)
	assert.False(t, s.ShowTestimonials)
	assert.Equal(t, DefaultSettings().CompanyName, s.CompanyName)

	var saved models.SiteSettings
	_, err = slots.Load(ctx, storage.KeySettings, &saved)
	require.NoError(t, err)
	assert.Equal(t, s, saved)

	_, err = store.Patch(ctx, []byte(`nope`))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	s, err = store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettings_MalformedFallsBack(t *testing.T) {
	slots := storage.NewMemorySlots()
	slots.SaveRaw(storage.KeySettings, []byte(`[]`))

	s, err := NewSettingsStore(slots).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}
