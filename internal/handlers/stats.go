package handlers

import (
	"net/http"

	"sustainsports-be/internal/catalog"
	"sustainsports-be/internal/donation"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/order"
	"sustainsports-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler aggregates the counters shown on the admin dashboard.
type StatsHandler struct {
	catalog   catalog.Service
	users     user.Service
	donations donation.Service
	ledger    order.Ledger
}

func NewStatsHandler(catalogSvc catalog.Service, users user.Service, donations donation.Service, ledger order.Ledger) *StatsHandler {
	return &StatsHandler{catalog: catalogSvc, users: users, donations: donations, ledger: ledger}
}

func (h *StatsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	productCount, err := h.catalog.Count(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to count products", zap.Error(err))
		respondInternal(c)
		return
	}

	userCount, err := h.users.Count(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to count users", zap.Error(err))
		respondInternal(c)
		return
	}

	donations, err := h.donations.ListAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list donations", zap.Error(err))
		respondInternal(c)
		return
	}
	var pendingDonations int
	for _, d := range donations {
		if d.Status == donation.StatusPending {
			pendingDonations++
		}
	}

	orders, err := h.ledger.ListAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list orders", zap.Error(err))
		respondInternal(c)
		return
	}
	var revenue float64
	for _, o := range orders {
		if o.Status != order.StatusCancelled {
			revenue += o.Total
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":         productCount,
		"users":            userCount,
		"orders":           len(orders),
		"revenue":          revenue,
		"donations":        len(donations),
		"pendingDonations": pendingDonations,
	})
}
