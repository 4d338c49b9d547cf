package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/models"
	"go-storefront/store"
)

// OrderController handles checkout and order requests
type OrderController struct {
	Checkout *store.Checkout
	Orders   *store.OrderStore
	Carts    *store.CartRegistry
}

// NewOrderController creates a new OrderController
func NewOrderController(checkout *store.Checkout, carts *store.CartRegistry) *OrderController {
	return &OrderController{Checkout: checkout, Orders: checkout.Orders, Carts: carts}
}

// CreateOrder turns the visitor cart into a pending order and returns the payment link
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req store.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// the artificial processing delay is added on top of the storage timeout
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout+oc.Checkout.Delay)
	defer cancel()

	cart, err := oc.Carts.Get(ctx, cartID(r))
	if err != nil {
		storeError(w, err, "Error loading cart")
		return
	}
	order, err := oc.Checkout.PlaceOrder(ctx, cart, req)
	if err != nil {
		storeError(w, err, "Error creating order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// PaymentResult settles the order the payment page redirected back for
func (oc *OrderController) PaymentResult(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		http.Error(w, "Order ID missing", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	order, err := oc.Checkout.ConfirmPayment(ctx, orderID, r.URL.Query().Get("status"))
	if err != nil {
		storeError(w, err, "Error updating payment status")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GetOrder returns an order by its id
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	oc.findOrder(w, r, oc.Orders.Get)
}

// LookupOrder returns an order by id or customer facing number (Admin only)
func (oc *OrderController) LookupOrder(w http.ResponseWriter, r *http.Request) {
	oc.findOrder(w, r, oc.Orders.FindByNumber)
}

func (oc *OrderController) findOrder(w http.ResponseWriter, r *http.Request, find func(context.Context, string) (models.Order, bool, error)) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	order, found, err := find(ctx, mux.Vars(r)["id"])
	if err != nil {
		storeError(w, err, "Error fetching order")
		return
	}
	if !found {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// GetOrders lists orders, optionally filtered by ?status= (Admin only)
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var (
		orders []models.Order
		err    error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		orders, err = oc.Orders.ByStatus(ctx, status)
	} else {
		orders, err = oc.Orders.List(ctx)
	}
	if err != nil {
		storeError(w, err, "Error fetching orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to another status (Admin only)
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	order, found, err := oc.Orders.UpdateStatus(ctx, mux.Vars(r)["id"], req.Status)
	if err != nil {
		storeError(w, err, "Error updating order")
		return
	}
	if !found {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
