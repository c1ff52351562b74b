package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"
	"sustainsports-be/internal/order"
	"sustainsports-be/internal/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler serves product reviews. A review posted against one of the
// caller's delivered orders is marked verified and the order is flagged so
// it cannot be reviewed twice.
type ReviewHandler struct {
	reviews *review.Store
	ledger  order.Ledger
	catalog catalog.Service
}

func NewReviewHandler(reviews *review.Store, ledger order.Ledger, catalogSvc catalog.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, ledger: ledger, catalog: catalogSvc}
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	if _, err := h.catalog.Get(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to look up product", zap.Error(err))
		respondInternal(c)
		return
	}

	reviews, err := h.reviews.ListByProduct(c.Param("id"))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list reviews", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type addReviewRequest struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	OrderID string `json:"orderId"`
}

func (h *ReviewHandler) Add(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	productID := c.Param("id")
	if _, err := h.catalog.Get(c.Request.Context(), productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to look up product", zap.Error(err))
		respondInternal(c)
		return
	}

	author := req.Author
	if author == "" {
		author = middleware.UserEmail(c)
	}

	verified := false
	if req.OrderID != "" {
		o, err := h.ledger.GetByIDAndUser(c.Request.Context(), req.OrderID, middleware.UserEmail(c))
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				respondError(c, http.StatusNotFound, err)
				return
			}
			logger.FromCtx(c.Request.Context()).Error("failed to look up order", zap.Error(err))
			respondInternal(c)
			return
		}

		reviewed, err := h.reviews.IsOrderReviewed(req.OrderID)
		if err != nil {
			logger.FromCtx(c.Request.Context()).Error("failed to check reviewed orders", zap.Error(err))
			respondInternal(c)
			return
		}
		if reviewed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order has already been reviewed"})
			return
		}
		verified = o.Status == order.StatusDelivered
	}

	r, err := h.reviews.Add(productID, author, req.Rating, req.Comment, verified)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating), errors.Is(err, review.ErrMissingAuthor):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to add review", zap.Error(err))
			respondInternal(c)
		}
		return
	}

	if req.OrderID != "" {
		if err := h.reviews.MarkOrderReviewed(req.OrderID); err != nil {
			logger.FromCtx(c.Request.Context()).Warn("failed to flag order as reviewed",
				zap.String("orderId", req.OrderID), zap.Error(err))
		}
	}
	c.JSON(http.StatusCreated, r)
}
