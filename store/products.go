package store

import (
	"context"
	"regexp"
	"strings"

	"go-storefront/models"
	"go-storefront/storage"
)

// ProductStore is the admin-editable catalog
type ProductStore struct {
	*Collection[models.Product]
}

// NewProductStore creates the store over the products slot
func NewProductStore(slots storage.Slots) *ProductStore {
	return &ProductStore{NewCollection(slots, Schema[models.Product]{
		Key:       storage.KeyProducts,
		Defaults:  DefaultProducts,
		ID:        func(p *models.Product) *string { return &p.ID },
		Prepare:   prepareProduct,
		Validate:  validateProduct,
		Conflicts: skuConflicts,
	})}
}

var youTubePattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)

// ExtractYouTubeID returns the video id of a watch, short or embed URL; anything else
// is assumed to already be an id.
func ExtractYouTubeID(url string) string {
	url = strings.TrimSpace(url)
	if m := youTubePattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return url
}

func prepareProduct(p *models.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Category = strings.TrimSpace(p.Category)
	p.Brand = strings.TrimSpace(p.Brand)
	if p.Brand == "" {
		p.Brand = "Canon"
	}
	p.Slug = models.ProductSlug(p.SKU)
	p.VideoURL = ExtractYouTubeID(p.VideoURL)
	if p.Stock < 0 {
		p.Stock = 0
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	p.Images = images
}

func validateProduct(p *models.Product) error {
	if p.Name == "" || p.SKU == "" || p.Category == "" || len(p.Images) == 0 {
		return required("product", "Name, SKU, category and at least one main image are required")
	}
	if p.Price < 0 {
		return required("price", "Price must be >= 0")
	}
	if p.SalePrice != nil && *p.SalePrice < 0 {
		return required("sale_price", "Sale price must be >= 0")
	}
	return nil
}

func skuConflicts(existing []models.Product, p *models.Product) error {
	for _, other := range existing {
		if strings.EqualFold(other.SKU, p.SKU) {
			return &ValidationError{Field: "sku", Message: "SKU " + p.SKU + " is already in use", Err: ErrDuplicateSKU}
		}
	}
	return nil
}

// Lookup finds a product by id, SKU or slug
func (s *ProductStore) Lookup(ctx context.Context, ref string) (models.Product, bool, error) {
	if p, ok, err := s.Get(ctx, ref); err != nil || ok {
		return p, ok, err
	}
	matches, err := s.Filter(ctx, func(p *models.Product) bool {
		return strings.EqualFold(p.SKU, ref) || p.Slug == strings.ToLower(ref)
	})
	if err != nil || len(matches) == 0 {
		return models.Product{}, false, err
	}
	return matches[0], true, nil
}

// Related resolves the related product ids; ids that no longer exist are skipped.
func (s *ProductStore) Related(ctx context.Context, p models.Product) ([]models.Product, error) {
	related := make([]models.Product, 0, len(p.RelatedProducts))
	for _, id := range p.RelatedProducts {
		rp, ok, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok && rp.ID != p.ID {
			related = append(related, rp)
		}
	}
	return related, nil
}

// ProductFilter narrows the storefront listing
type ProductFilter struct {
	Category     string
	Brand        string
	Query        string
	FeaturedOnly bool
	NewOnly      bool
	InStockOnly  bool
	Limit        int
}

// Search returns the products matching f, in catalog order
func (s *ProductStore) Search(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out, err := s.Filter(ctx, func(p *models.Product) bool {
		switch {
		case f.InStockOnly && p.Stock <= 0:
			return false
		case f.Category != "" && p.Category != f.Category:
			return false
		case f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand):
			return false
		case f.FeaturedOnly && !p.IsFeatured:
			return false
		case f.NewOnly && !p.IsNew:
			return false
		case q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.SKU), q):
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}
