package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alliance-hq/roster/internal/model"
	"github.com/alliance-hq/roster/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account. Role defaults to "user".
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Registration input"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} model.FieldErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.RegisterResponse{
		Message: "user registered successfully",
		User:    user.Summary(),
	})
}

// Login godoc
// @Summary Login
// @Description Verifies credentials and returns a bearer access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Username and password"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.FieldErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Message:     "login successful",
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        user.Summary(),
	})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LogoutResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), GetPrincipal(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.LogoutResponse{Status: "logged_out"})
}

// Me godoc
// @Summary Get current principal
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, model.MeResponse{
		UserID:   principal.UserID,
		Username: principal.Username,
		Role:     principal.Role,
	})
}
