package routes

import (
	"net/http"

	"sustainsports-be/internal/handlers"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the wired handler set the router mounts.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	User     *handlers.UserHandler
	Donation *handlers.DonationHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Order    *handlers.OrderHandler
	Review   *handlers.ReviewHandler
	Wishlist *handlers.WishlistHandler
	Stats    *handlers.StatsHandler
}

func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.PrometheusMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", h.Catalog.Browse)
		api.GET("/products/:id", h.Catalog.Get)
		api.GET("/products/:id/reviews", h.Review.ListByProduct)
		api.GET("/categories", h.Catalog.Categories)

		api.POST("/users/register", h.User.Register)
		api.POST("/users/login", h.User.Login)
		api.POST("/users/logout", h.User.Logout)
	}

	authed := api.Group("", middleware.AuthMiddleware())
	{
		authed.POST("/donations", h.Donation.Submit)
		authed.GET("/donations/mydonations", h.Donation.MyDonations)

		authed.GET("/cart", h.Cart.Get)
		authed.POST("/cart", h.Cart.Add)
		authed.PUT("/cart/:productId", h.Cart.UpdateQuantity)
		authed.DELETE("/cart/:productId", h.Cart.Remove)
		authed.DELETE("/cart", h.Cart.Clear)

		authed.GET("/checkout/quote", h.Checkout.Quote)
		authed.POST("/checkout", h.Checkout.Submit)

		authed.GET("/orders/myorders", h.Order.MyOrders)
		authed.GET("/orders/:id", h.Order.Get)
		authed.PUT("/orders/:id/cancel", h.Order.Cancel)

		authed.POST("/products/:id/reviews", h.Review.Add)

		authed.GET("/wishlist", h.Wishlist.List)
		authed.POST("/wishlist/:productId", h.Wishlist.Add)
		authed.DELETE("/wishlist/:productId", h.Wishlist.Remove)
		authed.DELETE("/wishlist", h.Wishlist.Clear)
	}

	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products", h.Catalog.List)
		admin.POST("/products", h.Catalog.Create)
		admin.GET("/products/:id", h.Catalog.Get)
		admin.PUT("/products/:id", h.Catalog.Update)
		admin.DELETE("/products/:id", h.Catalog.Delete)

		admin.GET("/users", h.User.List)
		admin.GET("/users/:id", h.User.Get)
		admin.DELETE("/users/:id", h.User.Delete)

		admin.GET("/stats", h.Stats.Stats)

		admin.GET("/donations", h.Donation.ListAll)
		admin.PUT("/donations/:id", h.Donation.UpdateStatus)

		admin.GET("/orders", h.Order.ListAll)
		admin.PUT("/orders/:id/status", h.Order.UpdateStatus)
	}

	return r
}
