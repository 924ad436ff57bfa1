package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	authUseCase "papertrader/internal/domain/usecase/auth"
	"papertrader/internal/domain/usecase/portfolio"
	"papertrader/internal/domain/usecase/trading"
	"papertrader/internal/infrastructure/adapter/api/handler"
	"papertrader/internal/infrastructure/adapter/api/routes"
	"papertrader/internal/infrastructure/adapter/database"
	"papertrader/internal/infrastructure/adapter/logger"
	quoteAdapter "papertrader/internal/infrastructure/adapter/quote"
	"papertrader/internal/infrastructure/adapter/repository"
	sessionAdapter "papertrader/internal/infrastructure/adapter/session"
	timeProvider "papertrader/internal/infrastructure/adapter/time"
	"papertrader/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Database.LogLevel,
	}

	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	if err := conn.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Connect to redis for the quote cache and token revocation store
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		appLogger.Error("Failed to connect to redis", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(conn.DB, appLogger)

	// Quote provider with a redis read-through cache
	httpQuotes := quoteAdapter.NewHTTPProvider(cfg.Quote.BaseURL, cfg.Quote.APIKey, cfg.Quote.Timeout, appLogger)
	quotes := quoteAdapter.NewCachedProvider(httpQuotes, rdb, cfg.Quote.CacheTTL, appLogger)

	// Session token management
	tokens := sessionAdapter.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	revoked := sessionAdapter.NewRedisTokenStore(rdb)

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, tokens, revoked, tp, appLogger, cfg.Trading.StartingCash, cfg.Auth.BcryptCost)
	tradingService := trading.NewService(userRepo, ledgerRepo, quotes, appLogger)
	aggregator := portfolio.NewAggregator(userRepo, ledgerRepo, quotes, appLogger)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	quoteHandler := handler.NewQuoteHandler(quotes, appLogger)
	tradeHandler := handler.NewTradeHandler(tradingService, appLogger)
	portfolioHandler := handler.NewPortfolioHandler(aggregator, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, authHandler, quoteHandler, tradeHandler, portfolioHandler, tokens, revoked, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PT_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PT_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PT_DB_NAME environment variable)")
	}

	if cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}

	if cfg.Quote.BaseURL == "" {
		missingConfigs = append(missingConfigs, "quote.baseUrl")
	}
	if cfg.Quote.APIKey == "" {
		missingConfigs = append(missingConfigs, "quote.apiKey (or PT_QUOTE_API_KEY environment variable)")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or PT_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTtl")
	}

	if cfg.Trading.StartingCash == "" {
		missingConfigs = append(missingConfigs, "trading.startingCash")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
