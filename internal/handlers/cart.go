package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/cart"
	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the per-user cart. The catalog is consulted only at add
// time; lines keep the price captured then.
type CartHandler struct {
	carts   *cart.Store
	catalog catalog.Service
}

func NewCartHandler(carts *cart.Store, catalogSvc catalog.Service) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalogSvc}
}

func cartView(c *cart.Cart) gin.H {
	return gin.H{
		"items": c.Lines,
		"total": c.Total(),
		"count": c.Count(),
	}
}

func (h *CartHandler) Get(c *gin.Context) {
	userCart, err := h.carts.Load(middleware.UserEmail(c))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load cart", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, cartView(userCart))
}

type addCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	p, err := h.catalog.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to look up product", zap.Error(err))
		respondInternal(c)
		return
	}

	userKey := middleware.UserEmail(c)
	userCart, err := h.carts.Load(userKey)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load cart", zap.Error(err))
		respondInternal(c)
		return
	}

	userCart.Add(*p, req.Quantity)
	if err := h.carts.Save(userKey, userCart); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to save cart", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, cartView(userCart))
}

type updateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	userKey := middleware.UserEmail(c)
	userCart, err := h.carts.Load(userKey)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load cart", zap.Error(err))
		respondInternal(c)
		return
	}

	userCart.SetQuantity(c.Param("productId"), req.Quantity)
	if err := h.carts.Save(userKey, userCart); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to save cart", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, cartView(userCart))
}

func (h *CartHandler) Remove(c *gin.Context) {
	userKey := middleware.UserEmail(c)
	userCart, err := h.carts.Load(userKey)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load cart", zap.Error(err))
		respondInternal(c)
		return
	}

	userCart.Remove(c.Param("productId"))
	if err := h.carts.Save(userKey, userCart); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to save cart", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, cartView(userCart))
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(middleware.UserEmail(c)); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to clear cart", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
