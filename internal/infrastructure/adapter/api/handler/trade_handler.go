package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/usecase/trading"
	"papertrader/internal/infrastructure/adapter/api/dto"
	"papertrader/internal/infrastructure/adapter/api/middleware"
)

// TradeHandler handles buy and sell requests
type TradeHandler struct {
	tradingService *trading.Service
	logger         coreport.Logger
}

// NewTradeHandler creates a new trade handler instance
func NewTradeHandler(tradingService *trading.Service, logger coreport.Logger) *TradeHandler {
	return &TradeHandler{
		tradingService: tradingService,
		logger:         logger,
	}
}

// Buy handles POST /buy
func (h *TradeHandler) Buy(c *gin.Context) {
	h.execute(c, h.tradingService.Buy)
}

// Sell handles POST /sell
func (h *TradeHandler) Sell(c *gin.Context) {
	h.execute(c, h.tradingService.Sell)
}

func (h *TradeHandler) execute(c *gin.Context, trade func(ctx context.Context, userID uint64, symbol, shares string) (*trading.TradeResponse, error)) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "not logged in",
		})
		return
	}

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMissingSymbol,
			Message: "invalid request format: " + err.Error(),
		})
		return
	}

	response, err := trade(c.Request.Context(), userID, req.Symbol, req.Shares)
	if err != nil {
		c.JSON(response.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: response.ErrorMessage,
		})
		return
	}

	c.JSON(response.StatusCode, dto.TradeResponse{
		Success: response.Success,
		Symbol:  response.Symbol,
		Shares:  response.Shares,
		Price:   response.Price,
		Cash:    response.Cash,
	})
}
