package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cast"

	"go-storefront/models"
	"go-storefront/pricing"
	"go-storefront/store"
	"go-storefront/utils"
)

// ProductController handles product-related requests
type ProductController struct {
	Products *store.ProductStore
	*Resource[models.Product]
}

// NewProductController creates a new ProductController
func NewProductController(products *store.ProductStore) *ProductController {
	return &ProductController{
		Products: products,
		Resource: &Resource[models.Product]{Name: "product", Collection: products.Collection},
	}
}

// GetProducts lists the storefront catalog. Out of stock products are hidden.
// Query: category, brand, q, featured, new, limit.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ProductFilter{
		Category:     q.Get("category"),
		Brand:        q.Get("brand"),
		Query:        q.Get("q"),
		FeaturedOnly: cast.ToBool(q.Get("featured")),
		NewOnly:      cast.ToBool(q.Get("new")),
		InStockOnly:  true,
		Limit:        cast.ToInt(q.Get("limit")),
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	products, err := pc.Products.Search(ctx, filter)
	if err != nil {
		storeError(w, err, "Error fetching products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a product by id, SKU or slug along with its related products
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	product, found, err := pc.Products.Lookup(ctx, mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err, "Error fetching product")
		return
	}
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	related, err := pc.Products.Related(ctx, product)
	if err != nil {
		storeError(w, err, "Error fetching related products")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product":  product,
		"related":  related,
		"discount": pricing.CalculateDiscount(product.Price, product.SalePrice),
	})
}

// GetCategories returns the static category list
func (pc *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Categories)
}

// GetBrands returns the static brand list
func (pc *ProductController) GetBrands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.Brands)
}

// GenerateSKU suggests a fresh SKU for the product form (Admin only)
func (pc *ProductController) GenerateSKU(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"sku": utils.GenerateSKU(time.Now())})
}
