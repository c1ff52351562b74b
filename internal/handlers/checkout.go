package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/checkout"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	svc checkout.Service
}

func NewCheckoutHandler(svc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Quote prices the current cart without committing anything. An invalid
// promo code is reported alongside the undiscounted quote, not as a failure.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	quote, err := h.svc.QuoteCart(c.Request.Context(), middleware.UserEmail(c), c.Query("promo_code"))
	if err != nil && !errors.Is(err, checkout.ErrInvalidPromoCode) {
		logger.FromCtx(c.Request.Context()).Error("failed to quote cart", zap.Error(err))
		respondInternal(c)
		return
	}

	resp := gin.H{"quote": quote}
	if errors.Is(err, checkout.ErrInvalidPromoCode) {
		resp["promoError"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// Submit turns the cart into an order. The cart survives any failure here;
// it is cleared only once the order is recorded.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var input checkout.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), middleware.UserEmail(c), input)
	if err != nil {
		var fieldErr *checkout.FieldError
		switch {
		case errors.As(err, &fieldErr), errors.Is(err, checkout.ErrEmptyCart):
			middleware.RecordOperation("checkout", false)
			respondError(c, http.StatusBadRequest, err)
		default:
			middleware.RecordOperation("checkout", false)
			logger.FromCtx(c.Request.Context()).Error("failed to submit checkout", zap.Error(err))
			respondInternal(c)
		}
		return
	}

	middleware.RecordOperation("checkout", true)
	c.JSON(http.StatusCreated, result)
}
