package handlers

import (
	"errors"
	"net/http"

	"sustainsports-be/internal/logger"
	"sustainsports-be/internal/middleware"
	"sustainsports-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// cookie lifetime matched to the JWT expiry (72h).
const tokenMaxAge = 72 * 60 * 60

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, tokenMaxAge, "/", "", false, true)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	token, u, err := h.svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			respondError(c, http.StatusConflict, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to register user", zap.Error(err))
		respondInternal(c)
		return
	}

	middleware.RecordOperation("user_register", true)
	setAuthCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": u})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			middleware.RecordOperation("user_login", false)
			respondError(c, http.StatusUnauthorized, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to log in user", zap.Error(err))
		respondInternal(c)
		return
	}

	middleware.RecordOperation("user_login", true)
	setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list users", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(c, http.StatusNotFound, err)
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to get user", zap.Error(err))
		respondInternal(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Delete removes a customer account. Administrator accounts are refused.
func (h *UserHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			respondError(c, http.StatusNotFound, err)
		case errors.Is(err, user.ErrAdminUser):
			respondError(c, http.StatusBadRequest, err)
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to delete user", zap.Error(err))
			respondInternal(c)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
