package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Browse lists products filtered and ordered by the query string. Unknown
// sort keys fall back to name order, malformed price bounds are ignored.
func (h *CatalogHandler) Browse(c *gin.Context) {
	q := catalog.Query{
		Search:     c.Query("search"),
		CategoryID: c.Query("category"),
		Sort:       catalog.SortKey(c.Query("sort")),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		q.MaxPrice = &v
	}

	products, err := h.svc.Browse(c.Request.Context(), q)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to browse products", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to get product", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list categories", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// List returns the unfiltered catalog for the admin table.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list products", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Create inserts a stub product the admin then fills in via Update.
func (h *CatalogHandler) Create(c *gin.Context) {
	p, err := h.svc.CreateDefault(c.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrNoCategories) {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to create product", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update applies a partial update. Absent fields keep their current values,
// present-but-falsy fields are applied.
func (h *CatalogHandler) Update(c *gin.Context) {
	var params catalog.UpdateParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, catalog.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, catalog.ErrNoFields):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to update product", zap.Error(err))
			respondInternal(c)
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to delete product", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
