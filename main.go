package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-storefront/controllers"
	"go-storefront/payment"
	"go-storefront/routes"
	"go-storefront/storage"
	"go-storefront/store"
	"go-storefront/utils"
)

func main() {
	utils.LoadEnv()
	cfg := utils.LoadConfig()

	if err := utils.InitLogger(cfg.Log); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)
	if err := utils.InitIDs(cfg.NodeID); err != nil {
		zap.S().Fatal(err)
	}

	ctx := context.Background()
	slots, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		zap.S().Fatalf("Error opening %s storage: %v", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := slots.Close(); err != nil {
			zap.S().Error(err)
		}
	}()

	if err := store.Migrate(ctx, slots, store.Migrations); err != nil {
		zap.S().Fatalf("Error migrating storage: %v", err)
	}

	passwordHash := cfg.Admin.PasswordHash
	if passwordHash == "" {
		if passwordHash, err = utils.HashPassword(cfg.Admin.Password); err != nil {
			zap.S().Fatalf("Error hashing admin password: %v", err)
		}
	}

	// Initialize stores
	products := store.NewProductStore(slots)
	carts := store.NewCartRegistry(slots)
	sessions := store.NewSessionStore(slots)
	checkout := &store.Checkout{
		Orders:   store.NewOrderStore(slots),
		Payments: payment.NewGateway(cfg.Payment),
		Notifier: utils.NewEmailService(cfg.Mail),
		Delay:    cfg.CheckoutDelay,
	}

	// Initialize controllers
	c := routes.Controllers{
		Admin:    controllers.NewAdminController(sessions, cfg.Admin.Email, passwordHash),
		Products: controllers.NewProductController(products),
		Content: controllers.NewContentController(
			store.NewSlideStore(slots),
			store.NewTestimonialStore(slots),
			store.NewClientStore(slots),
		),
		Settings: controllers.NewSettingsController(store.NewSettingsStore(slots)),
		Cart:     controllers.NewCartController(carts, products),
		Orders:   controllers.NewOrderController(checkout, carts),
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, c, sessions)

	zap.S().Infof("Server is running on port %s (storage: %s)", cfg.Port, cfg.Storage.Driver)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		zap.S().Fatal(err)
	}
}
