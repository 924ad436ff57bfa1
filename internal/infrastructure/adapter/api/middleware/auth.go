package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/session"
	"papertrader/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	UserIDKey = "user_id"
	TokenKey  = "session_token"
)

// RequireAuth verifies the bearer token and binds the request to a user id.
// Revoked tokens (logout) are rejected even when otherwise valid.
func RequireAuth(tokens session.TokenManager, revoked session.TokenStore, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "authorization header required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := tokens.Verify(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "invalid or expired token",
			})
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), tokenString)
		if err != nil {
			logger.Error("Revocation check failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.CodeInternalServer,
				Message: "internal server error",
			})
			return
		}
		if isRevoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "session has been logged out",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user id from the request context
func CurrentUserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
