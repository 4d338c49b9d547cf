package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// exercise runs the same contract against every adapter that needs no external service
func exercise(t *testing.T, s Slots) {
	ctx := context.Background()

	var got []record
	ok, err := s.Load(ctx, "clients", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []record{{ID: "1", Order: 1}, {ID: "2", Order: 2}}
	require.NoError(t, s.Save(ctx, "clients", want))

	ok, err = s.Load(ctx, "clients", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	require.NoError(t, s.Save(ctx, "clients", want[:1]))
	got = nil
	_, err = s.Load(ctx, "clients", &got)
	require.NoError(t, err)
	assert.Equal(t, want[:1], got)

	require.NoError(t, s.Delete(ctx, "clients"))
	ok, err = s.Load(ctx, "clients", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySlots(t *testing.T) {
	exercise(t, NewMemorySlots())
}

func TestBoltSlots(t *testing.T) {
	s, err := OpenBolt(filepath.Join(t.TempDir(), "slots.db"))
	require.NoError(t, err)
	defer s.Close()
	exercise(t, s)
}

func TestBoltSlots_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, KeyCart, []record{{ID: "7"}}))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	var got []record
	ok, err := s.Load(ctx, KeyCart, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []record{{ID: "7"}}, got)
}

func TestMemorySlots_Malformed(t *testing.T) {
	s := NewMemorySlots()
	s.SaveRaw(KeyClients, []byte("{not json"))

	var got []record
	ok, err := s.Load(context.Background(), KeyClients, &got)
	assert.True(t, ok)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart", CartKey(""))
	assert.Equal(t, "cart:abc", CartKey("abc"))
}
