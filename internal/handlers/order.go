package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"
	"sustainsports-be/internal/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	ledger order.Ledger
}

func NewOrderHandler(ledger order.Ledger) *OrderHandler {
	return &OrderHandler{ledger: ledger}
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := h.ledger.ListByUser(c.Request.Context(), middleware.UserEmail(c))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list orders", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get returns one of the caller's orders. Someone else's order id reads as
// not found, never as forbidden.
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.ledger.GetByIDAndUser(c.Request.Context(), c.Param("id"), middleware.UserEmail(c))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to get order", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, o)
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.ledger.Cancel(c.Request.Context(), c.Param("id"), middleware.UserEmail(c), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, order.ErrReasonRequired), errors.Is(err, order.ErrInvalidTransition):
			middleware.RecordOperation("order_cancel", false)
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to cancel order", zap.Error(err))
			respondInternal(c)
		}
		return
	}

	middleware.RecordOperation("order_cancel", true)
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.ledger.ListAll(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list orders", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status order.Status `json:"status"`
}

// UpdateStatus is the admin walk along the fulfilment state machine. It
// honors the same transition table as user cancellation but needs no reason.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.ledger.AdminSetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrInvalidTransition):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to update order status", zap.Error(err))
			respondInternal(c)
		}
		return
	}
	c.JSON(http.StatusOK, o)
}
