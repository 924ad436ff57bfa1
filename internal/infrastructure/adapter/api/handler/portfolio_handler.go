package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/usecase/portfolio"
	"papertrader/internal/infrastructure/adapter/api/dto"
	"papertrader/internal/infrastructure/adapter/api/middleware"
)

// PortfolioHandler handles the portfolio and transaction history views
type PortfolioHandler struct {
	aggregator *portfolio.Aggregator
	logger     coreport.Logger
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(aggregator *portfolio.Aggregator, logger coreport.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		aggregator: aggregator,
		logger:     logger,
	}
}

// Portfolio handles GET /portfolio
func (h *PortfolioHandler) Portfolio(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "not logged in",
		})
		return
	}

	summary, err := h.aggregator.Summarize(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Portfolio summary failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "internal server error",
		})
		return
	}

	rows := make([]dto.HoldingRow, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		rows = append(rows, dto.HoldingRow{
			Symbol:           r.Symbol,
			Name:             r.Name,
			Shares:           r.Shares,
			Price:            r.Price,
			Value:            r.Value,
			QuoteUnavailable: r.QuoteUnavailable,
		})
	}

	c.JSON(http.StatusOK, dto.PortfolioResponse{
		Holdings: rows,
		Cash:     summary.Cash,
		Total:    summary.Total,
	})
}

// History handles GET /history
func (h *PortfolioHandler) History(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "not logged in",
		})
		return
	}

	entries, err := h.aggregator.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("History listing failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "internal server error",
		})
		return
	}

	rows := make([]dto.HistoryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dto.HistoryRow{
			Symbol: e.Symbol,
			Name:   e.Name,
			Shares: e.Shares,
			Price:  e.Price,
			Side:   e.Side,
			Date:   e.Date,
		})
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{Transactions: rows})
}
