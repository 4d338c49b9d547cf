package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/controllers"
	"go-storefront/middleware"
)

// Controllers groups the handlers the router is built from
type Controllers struct {
	Admin    *controllers.AdminController
	Products *controllers.ProductController
	Content  *controllers.ContentController
	Settings *controllers.SettingsController
	Cart     *controllers.CartController
	Orders   *controllers.OrderController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, sessions middleware.SessionChecker) {
	router.Use(middleware.RequestLogger)

	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}).Methods("GET")

	// Catalog routes
	router.HandleFunc("/products", c.Products.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", c.Products.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", c.Products.GetCategories).Methods("GET")
	router.HandleFunc("/brands", c.Products.GetBrands).Methods("GET")

	// Home page content
	router.HandleFunc("/content/slides", c.Content.Slides.ListActive).Methods("GET")
	router.HandleFunc("/content/testimonials", c.Content.Testimonials.ListActive).Methods("GET")
	router.HandleFunc("/content/clients", c.Content.Clients.ListActive).Methods("GET")
	router.HandleFunc("/settings", c.Settings.GetSettings).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", c.Cart.GetCart).Methods("GET")
	router.HandleFunc("/cart", c.Cart.AddToCart).Methods("POST")
	router.HandleFunc("/cart", c.Cart.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/items/{id}", c.Cart.UpdateCartItem).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", c.Cart.RemoveFromCart).Methods("DELETE")

	// Order routes
	router.HandleFunc("/checkout", c.Orders.CreateOrder).Methods("POST")
	router.HandleFunc("/payments/result", c.Orders.PaymentResult).Methods("GET")
	router.HandleFunc("/orders/{id}", c.Orders.GetOrder).Methods("GET")

	router.HandleFunc("/admin/login", c.Admin.Login).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware(sessions))
	admin.HandleFunc("/logout", c.Admin.Logout).Methods("POST")
	admin.HandleFunc("/me", c.Admin.Me).Methods("GET")

	admin.HandleFunc("/products", c.Products.List).Methods("GET")
	admin.HandleFunc("/products", c.Products.Create).Methods("POST")
	admin.HandleFunc("/products/sku", c.Products.GenerateSKU).Methods("GET")
	admin.HandleFunc("/products/{id}", c.Products.Get).Methods("GET")
	admin.HandleFunc("/products/{id}", c.Products.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}", c.Products.Delete).Methods("DELETE")

	registerContent(admin.PathPrefix("/slides").Subrouter(), c.Content.Slides, true)
	registerContent(admin.PathPrefix("/testimonials").Subrouter(), c.Content.Testimonials, false)
	registerContent(admin.PathPrefix("/clients").Subrouter(), c.Content.Clients, true)

	admin.HandleFunc("/settings", c.Settings.GetSettings).Methods("GET")
	admin.HandleFunc("/settings", c.Settings.UpdateSettings).Methods("PUT")
	admin.HandleFunc("/settings/reset", c.Settings.ResetSettings).Methods("POST")

	admin.HandleFunc("/orders", c.Orders.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}", c.Orders.LookupOrder).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", c.Orders.UpdateOrderStatus).Methods("PUT")
}

func registerContent[T any](r *mux.Router, res *controllers.Resource[T], ordered bool) {
	r.HandleFunc("", res.List).Methods("GET")
	r.HandleFunc("", res.Create).Methods("POST")
	r.HandleFunc("/{id}", res.Get).Methods("GET")
	r.HandleFunc("/{id}", res.Update).Methods("PUT")
	r.HandleFunc("/{id}", res.Delete).Methods("DELETE")
	r.HandleFunc("/{id}/toggle", res.Toggle).Methods("POST")
	if ordered {
		r.HandleFunc("/{id}/move", res.Move).Methods("POST")
	}
}
