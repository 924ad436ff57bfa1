package entity

import (
	"time"

	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
)

// TradeSide identifies the direction of a ledger entry
type TradeSide string

// Trade sides
const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// IsValidSide validates if the trade side is allowed
func IsValidSide(side string) bool {
	return side == string(SideBuy) || side == string(SideSell)
}

// LedgerEntry is an immutable record of one executed buy or sell.
// Shares are signed: positive for buys, negative for sells. The ledger is
// append-only; entries are never updated or deleted, and a user's holding for
// a symbol is the sum of the entry deltas.
type LedgerEntry struct {
	ID         uint64    // Unique identifier for the entry
	UserID     uint64    // ID of the user this entry belongs to
	Symbol     string    // Ticker symbol, stored uppercase
	Shares     int64     // Signed share delta
	PriceCents int64     // Per-share execution price in cents
	Side       TradeSide // buy or sell
	CreatedAt  time.Time // Execution time
}

// NewBuyEntry creates a ledger entry for a purchase of shares at priceCents
func NewBuyEntry(userID uint64, symbol string, shares, priceCents int64, timeProvider coreport.TimeProvider) (*LedgerEntry, error) {
	return newEntry(userID, symbol, shares, priceCents, SideBuy, timeProvider)
}

// NewSellEntry creates a ledger entry for a sale; the stored delta is negative
func NewSellEntry(userID uint64, symbol string, shares, priceCents int64, timeProvider coreport.TimeProvider) (*LedgerEntry, error) {
	entry, err := newEntry(userID, symbol, shares, priceCents, SideSell, timeProvider)
	if err != nil {
		return nil, err
	}
	entry.Shares = -entry.Shares
	return entry, nil
}

func newEntry(userID uint64, symbol string, shares, priceCents int64, side TradeSide, timeProvider coreport.TimeProvider) (*LedgerEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if symbol == "" {
		return nil, errs.ErrMissingSymbol
	}
	if shares <= 0 {
		return nil, errs.ErrInvalidShares
	}
	if priceCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &LedgerEntry{
		UserID:     userID,
		Symbol:     symbol,
		Shares:     shares,
		PriceCents: priceCents,
		Side:       side,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// CostCents returns the signed cash effect of the entry: positive for buys
// (cash out), negative for sells (cash in).
func (e *LedgerEntry) CostCents() (int64, error) {
	shares := e.Shares
	if shares < 0 {
		shares = -shares
	}
	cost, err := MulShares(shares, e.PriceCents)
	if err != nil {
		return 0, err
	}
	if e.Side == SideSell {
		return -cost, nil
	}
	return cost, nil
}

// Holding is the derived current position for one user and symbol
type Holding struct {
	Symbol string
	Shares int64
}
