package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeMissingSymbol        = 4001
	CodeMissingShares        = 4002
	CodeInvalidShares        = 4003
	CodeInsufficientCash     = 4004
	CodeInsufficientHoldings = 4005
	CodeSymbolNotOwned       = 4006
	CodeInvalidUserID        = 4007
	CodeMissingUsername      = 4010
	CodeMissingPassword      = 4011
	CodePasswordMismatch     = 4012
	CodeUsernameTaken        = 4013
	CodeInvalidCredentials   = 4030
	CodeSymbolNotFound       = 4040
	CodeUserNotFound         = 4041

	// 5xxx - Server errors
	CodeQuoteUnavailable = 5030
	CodeInternalServer   = 5000
)

// Base error types
var (
	// ErrMissingSymbol is returned when no symbol was submitted
	ErrMissingSymbol = errors.New("must provide symbol")

	// ErrMissingShares is returned when no share count was submitted
	ErrMissingShares = errors.New("must provide shares")

	// ErrInvalidShares is returned when the share count is not a positive integer
	ErrInvalidShares = errors.New("shares must be a positive integer")

	// ErrInsufficientCash is returned when a purchase exceeds the user's cash
	ErrInsufficientCash = errors.New("not enough cash for this number of shares at the current price")

	// ErrInsufficientHoldings is returned when a sale exceeds the current holding
	ErrInsufficientHoldings = errors.New("not enough of the stock to sell")

	// ErrSymbolNotOwned is returned when selling a symbol the user does not hold
	ErrSymbolNotOwned = errors.New("cannot sell stocks you do not own")

	// ErrSymbolNotFound is returned when the quote provider does not know the symbol
	ErrSymbolNotFound = errors.New("symbol does not exist")

	// ErrQuoteUnavailable is returned when the quote provider fails or times out
	ErrQuoteUnavailable = errors.New("quote service unavailable")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingUsername is returned when no username was submitted
	ErrMissingUsername = errors.New("must provide username")

	// ErrMissingPassword is returned when no password was submitted
	ErrMissingPassword = errors.New("must provide password")

	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrUsernameTaken is returned when registering an already used username
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials is returned on a failed login attempt
	ErrInvalidCredentials = errors.New("invalid username and/or password")

	// ErrInvalidAmount is returned when a monetary amount has a bad format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when a monetary value would overflow int64 cents
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized apology codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingSymbol):
		return CodeMissingSymbol
	case errors.Is(err, ErrMissingShares):
		return CodeMissingShares
	case errors.Is(err, ErrInvalidShares):
		return CodeInvalidShares
	case errors.Is(err, ErrInsufficientCash):
		return CodeInsufficientCash
	case errors.Is(err, ErrInsufficientHoldings):
		return CodeInsufficientHoldings
	case errors.Is(err, ErrSymbolNotOwned):
		return CodeSymbolNotOwned
	case errors.Is(err, ErrSymbolNotFound):
		return CodeSymbolNotFound
	case errors.Is(err, ErrQuoteUnavailable):
		return CodeQuoteUnavailable
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrMissingUsername):
		return CodeMissingUsername
	case errors.Is(err, ErrMissingPassword):
		return CodeMissingPassword
	case errors.Is(err, ErrPasswordMismatch):
		return CodePasswordMismatch
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	default:
		return CodeInternalServer
	}
}

// InsufficientCashError provides detailed error information for a rejected buy
type InsufficientCashError struct {
	UserID   uint64
	Symbol   string
	Required string
	Cash     string
}

// Error implements the error interface
func (e *InsufficientCashError) Error() string {
	return fmt.Sprintf("insufficient cash for user %d buying %s: required %s, available %s",
		e.UserID, e.Symbol, e.Required, e.Cash)
}

// Is checks if the target error is an ErrInsufficientCash
func (e *InsufficientCashError) Is(target error) bool {
	return target == ErrInsufficientCash
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCashError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_cash",
		"user_id":    e.UserID,
		"symbol":     e.Symbol,
		"required":   e.Required,
		"cash":       e.Cash,
		"error_code": CodeInsufficientCash,
	}
}

// NewInsufficientCashError creates a new detailed insufficient cash error
func NewInsufficientCashError(userID uint64, symbol, required, cash string) error {
	return &InsufficientCashError{
		UserID:   userID,
		Symbol:   symbol,
		Required: required,
		Cash:     cash,
	}
}

// InsufficientHoldingsError provides detailed error information for a rejected sell
type InsufficientHoldingsError struct {
	UserID    uint64
	Symbol    string
	Requested int64
	Held      int64
}

// Error implements the error interface
func (e *InsufficientHoldingsError) Error() string {
	return fmt.Sprintf("insufficient holdings for user %d selling %s: requested %d, held %d",
		e.UserID, e.Symbol, e.Requested, e.Held)
}

// Is checks if the target error is an ErrInsufficientHoldings
func (e *InsufficientHoldingsError) Is(target error) bool {
	return target == ErrInsufficientHoldings
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientHoldingsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_holdings",
		"user_id":    e.UserID,
		"symbol":     e.Symbol,
		"requested":  e.Requested,
		"held":       e.Held,
		"error_code": CodeInsufficientHoldings,
	}
}

// NewInsufficientHoldingsError creates a new detailed insufficient holdings error
func NewInsufficientHoldingsError(userID uint64, symbol string, requested, held int64) error {
	return &InsufficientHoldingsError{
		UserID:    userID,
		Symbol:    symbol,
		Requested: requested,
		Held:      held,
	}
}

// TradeError represents an error raised while executing a buy or sell
type TradeError struct {
	UserID uint64
	Symbol string
	Side   string
	Shares string
	Reason string
	Err    error
}

// Error implements the error interface for TradeError
func (e *TradeError) Error() string {
	return fmt.Sprintf("%s of %s failed for user %d (shares: %s): %s - %v",
		e.Side, e.Symbol, e.UserID, e.Shares, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TradeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TradeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "trade_error",
		"user_id":    e.UserID,
		"symbol":     e.Symbol,
		"side":       e.Side,
		"shares":     e.Shares,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTradeError creates a detailed trade error
func NewTradeError(userID uint64, symbol, side, shares, reason string, err error) error {
	return &TradeError{
		UserID: userID,
		Symbol: symbol,
		Side:   side,
		Shares: shares,
		Reason: reason,
		Err:    err,
	}
}

// IsValidationError reports whether the error is a malformed/missing field rejection
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingSymbol) ||
		errors.Is(err, ErrMissingShares) ||
		errors.Is(err, ErrInvalidShares) ||
		errors.Is(err, ErrMissingUsername) ||
		errors.Is(err, ErrMissingPassword) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrInvalidAmount)
}

// IsBusinessRuleViolation reports whether the error is a rejected trade rule
func IsBusinessRuleViolation(err error) bool {
	return errors.Is(err, ErrInsufficientCash) ||
		errors.Is(err, ErrInsufficientHoldings) ||
		errors.Is(err, ErrSymbolNotOwned)
}

// IsNotFoundError reports whether the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrSymbolNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsQuoteUnavailableError reports whether the quote provider failed
func IsQuoteUnavailableError(err error) bool {
	return errors.Is(err, ErrQuoteUnavailable)
}

// IsAuthError reports whether the error is a credential failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
