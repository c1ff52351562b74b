package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"
	"sustainsports-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	wishlists *wishlist.Store
	catalog   catalog.Service
}

func NewWishlistHandler(wishlists *wishlist.Store, catalogSvc catalog.Service) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists, catalog: catalogSvc}
}

func (h *WishlistHandler) List(c *gin.Context) {
	items, err := h.wishlists.List(middleware.UserEmail(c))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list wishlist", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Add snapshots the product into the wishlist. Adding an item already there
// is a no-op, not an error.
func (h *WishlistHandler) Add(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to look up product", zap.Error(err))
		respondInternal(c)
		return
	}

	if err := h.wishlists.Add(middleware.UserEmail(c), *p); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to add wishlist item", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "added to wishlist"})
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.wishlists.Remove(middleware.UserEmail(c), c.Param("productId")); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to remove wishlist item", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}

func (h *WishlistHandler) Clear(c *gin.Context) {
	if err := h.wishlists.Clear(middleware.UserEmail(c)); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to clear wishlist", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "wishlist cleared"})
}
