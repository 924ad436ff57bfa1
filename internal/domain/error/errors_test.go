package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		err  error
		code int
	}{
		{ErrMissingSymbol, CodeMissingSymbol},
		{ErrMissingShares, CodeMissingShares},
		{ErrInvalidShares, CodeInvalidShares},
		{ErrInsufficientCash, CodeInsufficientCash},
		{ErrInsufficientHoldings, CodeInsufficientHoldings},
		{ErrSymbolNotOwned, CodeSymbolNotOwned},
		{ErrSymbolNotFound, CodeSymbolNotFound},
		{ErrQuoteUnavailable, CodeQuoteUnavailable},
		{ErrUsernameTaken, CodeUsernameTaken},
		{ErrInvalidCredentials, CodeInvalidCredentials},
		{errors.New("anything else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.code, ErrorCode(tc.err), "error %v", tc.err)
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrInsufficientCash)
		assert.Equal(t, CodeInsufficientCash, ErrorCode(wrapped))
	})
}

func TestInsufficientCashError(t *testing.T) {
	err := NewInsufficientCashError(7, "NFLX", "5000.00", "100.00")

	assert.ErrorIs(t, err, ErrInsufficientCash)
	assert.Equal(t, CodeInsufficientCash, ErrorCode(err))
	assert.Contains(t, err.Error(), "NFLX")
	assert.Contains(t, err.Error(), "5000.00")

	var detailed *InsufficientCashError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, uint64(7), detailed.UserID)
	assert.Equal(t, CodeInsufficientCash, detailed.LogFields()["error_code"])
}

func TestInsufficientHoldingsError(t *testing.T) {
	err := NewInsufficientHoldingsError(7, "NFLX", 6, 5)

	assert.ErrorIs(t, err, ErrInsufficientHoldings)
	assert.Equal(t, CodeInsufficientHoldings, ErrorCode(err))

	var detailed *InsufficientHoldingsError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, int64(6), detailed.Requested)
	assert.Equal(t, int64(5), detailed.Held)
}

func TestTradeError(t *testing.T) {
	err := NewTradeError(7, "NFLX", "buy", "10", "quote failed", ErrQuoteUnavailable)

	assert.ErrorIs(t, err, ErrQuoteUnavailable)
	assert.Contains(t, err.Error(), "buy")
	assert.Contains(t, err.Error(), "quote failed")

	var detailed *TradeError
	assert.True(t, errors.As(err, &detailed))
	assert.Equal(t, CodeQuoteUnavailable, detailed.LogFields()["error_code"])
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("Validation errors", func(t *testing.T) {
		for _, err := range []error{ErrMissingSymbol, ErrMissingShares, ErrInvalidShares, ErrMissingUsername, ErrMissingPassword, ErrPasswordMismatch, ErrInvalidAmount} {
			assert.True(t, IsValidationError(err), "error %v", err)
		}
		assert.False(t, IsValidationError(ErrInsufficientCash))
	})

	t.Run("Business rule violations", func(t *testing.T) {
		for _, err := range []error{ErrInsufficientCash, ErrInsufficientHoldings, ErrSymbolNotOwned} {
			assert.True(t, IsBusinessRuleViolation(err), "error %v", err)
		}
		assert.False(t, IsBusinessRuleViolation(ErrMissingSymbol))
	})

	t.Run("Not found errors", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrSymbolNotFound))
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.False(t, IsNotFoundError(ErrQuoteUnavailable))
	})

	t.Run("Quote unavailable", func(t *testing.T) {
		assert.True(t, IsQuoteUnavailableError(ErrQuoteUnavailable))
		assert.False(t, IsQuoteUnavailableError(ErrSymbolNotFound))
	})

	t.Run("Auth errors", func(t *testing.T) {
		assert.True(t, IsAuthError(ErrInvalidCredentials))
		assert.False(t, IsAuthError(ErrUsernameTaken))
	})
}
