package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	quoteport "papertrader/internal/domain/port/quote"
	"papertrader/internal/infrastructure/adapter/api/dto"
)

// QuoteHandler handles symbol price lookups
type QuoteHandler struct {
	quotes quoteport.Provider
	logger coreport.Logger
}

// NewQuoteHandler creates a new quote handler instance
func NewQuoteHandler(quotes quoteport.Provider, logger coreport.Logger) *QuoteHandler {
	return &QuoteHandler{
		quotes: quotes,
		logger: logger,
	}
}

// Quote handles GET /quote/:symbol
func (h *QuoteHandler) Quote(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeMissingSymbol,
			Message: domainerr.ErrMissingSymbol.Error(),
		})
		return
	}

	quote, err := h.quotes.Lookup(c.Request.Context(), symbol)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "internal server error"
		switch {
		case domainerr.IsNotFoundError(err):
			statusCode = http.StatusBadRequest
			message = err.Error()
		case domainerr.IsQuoteUnavailableError(err):
			statusCode = http.StatusServiceUnavailable
			message = err.Error()
		default:
			h.logger.Error("Quote lookup failed", map[string]any{
				"symbol": symbol,
				"error":  err.Error(),
			})
		}
		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Symbol: quote.Symbol,
		Name:   quote.Name,
		Price:  quote.Price.StringFixed(2),
	})
}
