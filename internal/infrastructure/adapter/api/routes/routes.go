package routes

import (
	"github.com/gin-gonic/gin"

	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/session"
	"papertrader/internal/infrastructure/adapter/api/handler"
	"papertrader/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	quoteHandler *handler.QuoteHandler,
	tradeHandler *handler.TradeHandler,
	portfolioHandler *handler.PortfolioHandler,
	tokens session.TokenManager,
	revoked session.TokenStore,
	logger coreport.Logger,
) {
	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/check", authHandler.Check)

	// Everything else requires a valid, non-revoked session token
	authed := router.Group("/")
	authed.Use(middleware.RequireAuth(tokens, revoked, logger))
	{
		authed.POST("/logout", authHandler.Logout)

		authed.GET("/quote/:symbol", quoteHandler.Quote)

		authed.POST("/buy", tradeHandler.Buy)
		authed.POST("/sell", tradeHandler.Sell)

		authed.GET("/portfolio", portfolioHandler.Portfolio)
		authed.GET("/history", portfolioHandler.History)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
