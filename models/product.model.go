package models

import "strings"

// Product represents a catalog entry as edited from the admin panel
type Product struct {
	ID               string            `json:"id"`
	SKU              string            `json:"sku"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug,omitempty"`
	Brand            string            `json:"brand"`
	Category         string            `json:"category"`
	Price            int64             `json:"price"`                // CLP, no decimals
	SalePrice        *int64            `json:"sale_price,omitempty"` // optional promotional price
	Stock            int               `json:"stock"`
	Images           []string          `json:"images"` // first one is the primary image
	ShortDescription string            `json:"short_description,omitempty"`
	Description      string            `json:"description,omitempty"` // may contain HTML
	PDFURL           string            `json:"pdf_url,omitempty"`
	VideoURL         string            `json:"video_url,omitempty"` // YouTube video id
	RelatedProducts  []string          `json:"related_products,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	IsFeatured       bool              `json:"is_featured"`
	IsNew            bool              `json:"is_new"`
}

// MainImage returns the primary image or an empty string
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// OnSale reports whether the sale price undercuts the base price
func (p Product) OnSale() bool {
	return p.SalePrice != nil && *p.SalePrice < p.Price
}

// ProductSlug derives the public slug from a SKU
func ProductSlug(sku string) string {
	return strings.ToLower(strings.TrimSpace(sku))
}

// Category is a static catalog section
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
