package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/donation"
	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DonationHandler struct {
	svc donation.Service
}

func NewDonationHandler(svc donation.Service) *DonationHandler {
	return &DonationHandler{svc: svc}
}

type submitDonationRequest struct {
	ItemName        string `json:"itemName"`
	ItemDescription string `json:"itemDescription"`
}

func (h *DonationHandler) Submit(c *gin.Context) {
	var req submitDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	d, err := h.svc.Submit(c.Request.Context(), middleware.UserID(c), req.ItemName, req.ItemDescription)
	if err != nil {
		if errors.Is(err, donation.ErrMissingFields) {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to submit donation", zap.Error(err))
		respondInternal(c)
		return
	}

	middleware.RecordOperation("donation_submit", true)
	c.JSON(http.StatusCreated, d)
}

func (h *DonationHandler) MyDonations(c *gin.Context) {
	donations, err := h.svc.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list donations", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, donations)
}

func (h *DonationHandler) ListAll(c *gin.Context) {
	donations, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list donations", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, donations)
}

type updateDonationRequest struct {
	Status donation.Status `json:"status"`
}

// UpdateStatus moves a donation through the review enum. First approval
// mints the reward promo code.
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	var req updateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	d, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, donation.ErrNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, donation.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to update donation", zap.Error(err))
			respondInternal(c)
		}
		return
	}
	c.JSON(http.StatusOK, d)
}
