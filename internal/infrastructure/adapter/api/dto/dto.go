package dto

import "time"

// ErrorResponse is the apology payload returned for every rejected operation
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the payload for POST /register
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// RegisterResponse confirms a created account
type RegisterResponse struct {
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Cash     string `json:"cash"`
}

// LoginRequest is the payload for POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	UserID    uint64    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AvailabilityResponse answers the live username check
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// TradeRequest is the payload for POST /buy and POST /sell.
// Shares stays a string so malformed input is rejected by the engine's
// validator, not silently coerced by JSON number handling.
type TradeRequest struct {
	Symbol string `json:"symbol"`
	Shares string `json:"shares"`
}

// TradeResponse confirms an executed trade
type TradeResponse struct {
	Success bool   `json:"success"`
	Symbol  string `json:"symbol"`
	Shares  int64  `json:"shares"`
	Price   string `json:"price"`
	Cash    string `json:"cash"`
}

// QuoteResponse is the GET /quote/:symbol payload
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// HoldingRow is one position in the portfolio view
type HoldingRow struct {
	Symbol           string `json:"symbol"`
	Name             string `json:"name,omitempty"`
	Shares           int64  `json:"shares"`
	Price            string `json:"price,omitempty"`
	Value            string `json:"value,omitempty"`
	QuoteUnavailable bool   `json:"quoteUnavailable,omitempty"`
}

// PortfolioResponse is the GET /portfolio payload
type PortfolioResponse struct {
	Holdings []HoldingRow `json:"holdings"`
	Cash     string       `json:"cash"`
	Total    string       `json:"total"`
}

// HistoryRow is one ledger entry in the history view
type HistoryRow struct {
	Symbol string    `json:"symbol"`
	Name   string    `json:"name"`
	Shares int64     `json:"shares"`
	Price  string    `json:"price"`
	Side   string    `json:"side"`
	Date   time.Time `json:"date"`
}

// HistoryResponse is the GET /history payload
type HistoryResponse struct {
	Transactions []HistoryRow `json:"transactions"`
}
