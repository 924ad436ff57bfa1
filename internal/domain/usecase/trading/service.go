package trading

import (
	"context"
	"net/http"

	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/persistence"
	quoteport "papertrader/internal/domain/port/quote"
)

// TradeResponse is the engine result translated for the transport layer
type TradeResponse struct {
	Success      bool
	Symbol       string
	Shares       int64
	Price        string
	Cash         string
	ErrorMessage string
	StatusCode   int
}

// Service wraps the trade engine and maps domain errors to apology statuses
type Service struct {
	engine *Engine
	logger coreport.Logger
}

// NewService creates a new trading service
func NewService(
	userRepo persistence.UserRepository,
	ledgerRepo persistence.LedgerRepository,
	quotes quoteport.Provider,
	logger coreport.Logger,
) *Service {
	return &Service{
		engine: NewEngine(userRepo, ledgerRepo, quotes, logger),
		logger: logger,
	}
}

// Buy executes a purchase and returns a transport-ready response
func (s *Service) Buy(ctx context.Context, userID uint64, symbol, shares string) (*TradeResponse, error) {
	result, err := s.engine.Buy(ctx, userID, symbol, shares)
	if err != nil {
		return s.reject(userID, "buy", symbol, shares, err), err
	}
	return s.accept(result), nil
}

// Sell executes a sale and returns a transport-ready response
func (s *Service) Sell(ctx context.Context, userID uint64, symbol, shares string) (*TradeResponse, error) {
	result, err := s.engine.Sell(ctx, userID, symbol, shares)
	if err != nil {
		return s.reject(userID, "sell", symbol, shares, err), err
	}
	return s.accept(result), nil
}

func (s *Service) accept(result *TradeResult) *TradeResponse {
	shares := result.Entry.Shares
	if shares < 0 {
		shares = -shares
	}
	return &TradeResponse{
		Success:    true,
		Symbol:     result.Entry.Symbol,
		Shares:     shares,
		Price:      result.Quote.Price.StringFixed(2),
		Cash:       result.User.FormattedCash(),
		StatusCode: http.StatusOK,
	}
}

func (s *Service) reject(userID uint64, side, symbol, shares string, err error) *TradeResponse {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	// Validation, not-found and business-rule rejections surface their own
	// message; anything unexpected stays a generic 500 with no detail leakage.
	switch {
	case errs.IsValidationError(err), errs.IsBusinessRuleViolation(err):
		statusCode = http.StatusBadRequest
		errorMessage = err.Error()
	case errs.IsNotFoundError(err):
		statusCode = http.StatusBadRequest
		errorMessage = err.Error()
	case errs.IsQuoteUnavailableError(err):
		statusCode = http.StatusServiceUnavailable
		errorMessage = err.Error()
	}

	s.logger.Error("Trade rejected", map[string]any{
		"user_id":     userID,
		"side":        side,
		"symbol":      symbol,
		"shares":      shares,
		"error":       err.Error(),
		"status_code": statusCode,
	})

	return &TradeResponse{
		Success:      false,
		ErrorMessage: errorMessage,
		StatusCode:   statusCode,
	}
}
