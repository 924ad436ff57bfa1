package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	authUseCase "papertrader/internal/domain/usecase/auth"
	"papertrader/internal/infrastructure/adapter/api/dto"
	"papertrader/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration, login, logout and the availability check
type AuthHandler struct {
	authService *authUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService *authUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMissingUsername,
			Message: "invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Confirmation)
	if err != nil {
		h.rejectAuth(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
		Cash:     user.FormattedCash(),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMissingUsername,
			Message: "invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.rejectAuth(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		UserID:    result.UserID,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles POST /logout; it revokes the presented session token
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := c.Get(middleware.TokenKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "not logged in",
		})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token.(string)); err != nil {
		h.logger.Error("Logout failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// Check handles GET /check?username=; it answers the live availability probe
func (h *AuthHandler) Check(c *gin.Context) {
	username := c.Query("username")

	available, err := h.authService.CheckAvailability(c.Request.Context(), username)
	if err != nil {
		h.logger.Error("Availability check failed", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *AuthHandler) rejectAuth(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case domainerr.IsValidationError(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsAuthError(err):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domainerr.ErrUsernameTaken):
		statusCode = http.StatusConflict
		message = err.Error()
	default:
		h.logger.Error("Auth operation failed", map[string]any{"error": err.Error()})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
