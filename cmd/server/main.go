package main

import (
	"log"

	"sustainsports-be/internal/cart"
	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/checkout"
	"sustainsports-be/internal/config"
	"sustainsports-be/internal/db"
	"sustainsports-be/internal/donation"
	"sustainsports-be/internal/handlers"
	"sustainsports-be/internal/localstore"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/order"
	"sustainsports-be/internal/review"
	"sustainsports-be/internal/routes"
	"sustainsports-be/internal/user"
	"sustainsports-be/internal/wishlist"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	// Client-held state (carts, orders, wishlists, reviews) lives in the
	// file store, not the database.
	store, err := localstore.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("failed to open data dir %s: %v", cfg.DataDir, err)
	}

	catalogSvc := catalog.NewService(catalog.NewRepository(database))
	userSvc := user.NewService(user.NewRepository(database))
	donationSvc := donation.NewService(donation.NewRepository(database))

	carts := cart.NewStore(store)
	ledger := order.NewLedger(store)
	checkoutSvc := checkout.NewService(carts, ledger)
	reviews := review.NewStore(store)
	wishlists := wishlist.NewStore(store)

	r := routes.SetupRouter(routes.Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogSvc),
		User:     handlers.NewUserHandler(userSvc),
		Donation: handlers.NewDonationHandler(donationSvc),
		Cart:     handlers.NewCartHandler(carts, catalogSvc),
		Checkout: handlers.NewCheckoutHandler(checkoutSvc),
		Order:    handlers.NewOrderHandler(ledger),
		Review:   handlers.NewReviewHandler(reviews, ledger, catalogSvc),
		Wishlist: handlers.NewWishlistHandler(wishlists, catalogSvc),
		Stats:    handlers.NewStatsHandler(catalogSvc, userSvc, donationSvc, ledger),
	})

	log.Printf("🚀 Sustain Sports API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(r.Run(":" + cfg.AppPort))
}
