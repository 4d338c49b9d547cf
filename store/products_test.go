package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
	"go-storefront/storage"
)

func newProduct() models.Product {
	return models.Product{
		SKU:      " CANON-G3160 ",
		Name:     "Canon PIXMA G3160",
		Category: "impresoras",
		Price:    199990,
		Stock:    -3,
		Images:   []string{"", " https://example.com/g3160.jpg "},
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10",
	}
}

func TestProducts_CreateNormalizes(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())

	p, err := store.Create(ctx, newProduct())
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "CANON-G3160", p.SKU)
	assert.Equal(t, "canon-g3160", p.Slug)
	assert.Equal(t, "Canon", p.Brand)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, []string{"https://example.com/g3160.jpg"}, p.Images)
	assert.Equal(t, "dQw4w9WgXcQ", p.VideoURL)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultProducts())+1)
}

func TestProducts_RequiredFields(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())

	for name, mutate := range map[string]func(*models.Product){
		"name":     func(p *models.Product) { p.Name = " " },
		"sku":      func(p *models.Product) { p.SKU = "" },
		"category": func(p *models.Product) { p.Category = "" },
		"images":   func(p *models.Product) { p.Images = []string{" "} },
		"price":    func(p *models.Product) { p.Price = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			p := newProduct()
			mutate(&p)
			_, err := store.Create(ctx, p)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultProducts()))
}

func TestProducts_DuplicateSKU(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())

	p := newProduct()
	p.SKU = "canon-lbp623"
	_, err := store.Create(ctx, p)
	assert.ErrorIs(t, err, ErrDuplicateSKU)

	// keeping its own sku on update is fine
	updated, found, err := store.Update(ctx, "2", func(p *models.Product) error {
		p.Stock = 3
		return nil
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, updated.Stock)

	_, _, err = store.Update(ctx, "2", func(p *models.Product) error {
		p.SKU = "CANON-GPR53"
		return nil
	})
	assert.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestProducts_LookupAndRelated(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())

	for _, ref := range []string{"1", "CANON-DX3835", "canon-dx3835"} {
		p, found, err := store.Lookup(ctx, ref)
		require.NoError(t, err)
		require.True(t, found, ref)
		assert.Equal(t, "1", p.ID)
	}
	_, found, err := store.Lookup(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, found)

	p, _, err := store.Get(ctx, "1")
	require.NoError(t, err)
	p.RelatedProducts = []string{"3", "gone", "1"}
	related, err := store.Related(ctx, p)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "3", related[0].ID)
}

func TestProducts_Search(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())

	ids := func(ps []models.Product) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	got, err := store.Search(ctx, ProductFilter{InStockOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))

	got, err = store.Search(ctx, ProductFilter{Category: "toner"})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(got))

	got, err = store.Search(ctx, ProductFilter{Query: "lbp"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(got))

	got, err = store.Search(ctx, ProductFilter{FeaturedOnly: true, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(got))

	got, err = store.Search(ctx, ProductFilter{NewOnly: true, Brand: "canon"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, ids(got))
}

func TestExtractYouTubeID(t *testing.T) {
	assert.Equal(t, "abc123", ExtractYouTubeID("https://youtu.be/abc123"))
	assert.Equal(t, "abc123", ExtractYouTubeID("https://www.youtube.com/embed/abc123?autoplay=1"))
	assert.Equal(t, "abc123", ExtractYouTubeID("https://www.youtube.com/watch?v=abc123"))
	assert.Equal(t, "abc123", ExtractYouTubeID(" abc123 "))
	assert.Equal(t, "", ExtractYouTubeID(""))
}

func TestProducts_PatchReplacesSpecifications(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())
	p := newProduct()
	p.Specifications = map[string]string{"old": "1"}
	p, err := store.Create(ctx, p)
	require.NoError(t, err)

	patched, found, err := store.Patch(ctx, p.ID, []byte(`{"specifications":{"new":"2"}}`))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]string{"new": "2"}, patched.Specifications)
	assert.Equal(t, p.Name, patched.Name)

	stored, _, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"new": "2"}, stored.Specifications)
}

func TestProducts_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewProductStore(storage.NewMemorySlots())
	p, err := store.Create(ctx, newProduct())
	require.NoError(t, err)
	require.NotEmpty(t, p.Images)
	want := p.Images[0]

	p.Images[0] = "created"
	got, _, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.Images[0])

	got.Images[0] = "got"
	all, err := store.List(ctx)
	require.NoError(t, err)
	for i := range all {
		if all[i].ID == p.ID {
			assert.Equal(t, want, all[i].Images[0])
			all[i].Images[0] = "listed"
		}
	}

	again, _, err := store.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, want, again.Images[0])
}
