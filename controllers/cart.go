package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/models"
	"go-storefront/pricing"
	"go-storefront/store"
)

// CartController handles cart-related requests. The visitor cart is picked by the
// X-Cart-ID header.
type CartController struct {
	Carts    *store.CartRegistry
	Products *store.ProductStore
}

// NewCartController creates a new CartController
func NewCartController(carts *store.CartRegistry, products *store.ProductStore) *CartController {
	return &CartController{Carts: carts, Products: products}
}

type cartResponse struct {
	Items   []models.CartItem `json:"items"`
	Summary pricing.Summary   `json:"summary"`
}

func (cc *CartController) respond(w http.ResponseWriter, cart *store.CartStore) {
	items := cart.Items()
	writeJSON(w, http.StatusOK, cartResponse{Items: items, Summary: pricing.Summarize(items)})
}

// GetCart returns the cart lines and totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	cart, err := cc.Carts.Get(ctx, cartID(r))
	if err != nil {
		storeError(w, err, "Error loading cart")
		return
	}
	cc.respond(w, cart)
}

// AddToCart adds a product to the cart; quantity defaults to 1 and is capped at the stock
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	product, found, err := cc.Products.Get(ctx, req.ProductID)
	if err != nil {
		storeError(w, err, "Error fetching product")
		return
	}
	if !found {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	cart, err := cc.Carts.Get(ctx, cartID(r))
	if err != nil {
		storeError(w, err, "Error loading cart")
		return
	}
	if err := cart.AddItem(ctx, product, quantity); err != nil {
		storeError(w, err, "Error updating cart")
		return
	}
	cc.respond(w, cart)
}

// UpdateCartItem sets the quantity of a line; 0 removes it
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	cart, err := cc.Carts.Get(ctx, cartID(r))
	if err != nil {
		storeError(w, err, "Error loading cart")
		return
	}
	if err := cart.UpdateQuantity(ctx, mux.Vars(r)["id"], req.Quantity); err != nil {
		storeError(w, err, "Error updating cart")
		return
	}
	cc.respond(w, cart)
}

// RemoveFromCart removes a product line from the cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	cart, err := cc.Carts.Get(ctx, cartID(r))
	if err != nil {
		storeError(w, err, "Error loading cart")
		return
	}
	if err := cart.RemoveItem(ctx, mux.Vars(r)["id"]); err != nil {
		storeError(w, err, "Error updating cart")
		return
	}
	cc.respond(w, cart)
}

// ClearCart empties the cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	cart, err := cc.Carts.Get(ctx, cartID(r))
	if err != nil {
		storeError(w, err, "Error loading cart")
		return
	}
	if err := cart.Clear(ctx); err != nil {
		storeError(w, err, "Error clearing cart")
		return
	}
	cc.respond(w, cart)
}
