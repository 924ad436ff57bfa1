package trading

import (
	"strconv"
	"strings"

	errs "papertrader/internal/domain/error"
)

// TradeValidator normalizes and validates raw trade form input.
// Share counts arrive string-encoded from the client and are rejected, not
// coerced, when non-numeric or not strictly positive.
type TradeValidator struct{}

// NewTradeValidator creates a new TradeValidator
func NewTradeValidator() *TradeValidator {
	return &TradeValidator{}
}

// NormalizeSymbol trims and uppercases a symbol, rejecting empty input
func (v *TradeValidator) NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", errs.ErrMissingSymbol
	}
	return symbol, nil
}

// ParseShares validates a string-encoded share count.
// "abc", "-5", "0", "1.5" and empty input all fail before any storage access.
func (v *TradeValidator) ParseShares(shares string) (int64, error) {
	shares = strings.TrimSpace(shares)
	if shares == "" {
		return 0, errs.ErrMissingShares
	}

	n, err := strconv.ParseUint(shares, 10, 63)
	if err != nil {
		return 0, errs.ErrInvalidShares
	}
	if n == 0 {
		return 0, errs.ErrInvalidShares
	}

	return int64(n), nil
}
