package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridercritic/internal/middleware"
	"ridercritic/internal/repositories/interfaces"
	"ridercritic/internal/services"
	"ridercritic/internal/utils"
	"ridercritic/internal/validators"
	"ridercritic/pkg/logger"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new email/password account.
func (h *AuthHandler) Register(c *gin.Context) {
	var request services.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateStruct(&request); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	response, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		h.logger.WithError(err).Warn("Registration failed")
		utils.ConflictResponse(c, "Email already registered")
		return
	}

	utils.CreatedResponse(c, "Account created", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	if errs := validators.ValidateStruct(&request); errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		h.logger.WithError(err).Error("Login failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Login successful", response)
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var request refreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.RefreshToken == "" {
		utils.BadRequestResponse(c, "refresh_token is required")
		return
	}

	response, err := h.authService.RefreshToken(c.Request.Context(), request.RefreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid refresh token")
		return
	}

	utils.SuccessResponse(c, "Token refreshed", response)
}

type googleLoginRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// GoogleLogin signs a user in with a Google OAuth access token, creating
// the account on first sight.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var request googleLoginRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.AccessToken == "" {
		utils.BadRequestResponse(c, "access_token is required")
		return
	}

	response, err := h.authService.GoogleLogin(c.Request.Context(), request.AccessToken)
	if err != nil {
		h.logger.WithError(err).Warn("Google login failed")
		utils.ErrorResponse(c, http.StatusUnauthorized, "GOOGLE_AUTH_FAILED", "Google sign-in failed")
		return
	}

	utils.SuccessResponse(c, "Login successful", response)
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserUID)

	user, err := h.authService.GetUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		h.logger.WithError(err).Error("Failed to load user profile")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Profile retrieved", user)
}
