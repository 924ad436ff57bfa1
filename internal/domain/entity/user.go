package entity

import (
	"time"

	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
)

// User represents a registered account holding virtual cash
type User struct {
	ID           uint64    // Unique identifier for the user
	Username     string    // Unique login name
	PasswordHash string    // bcrypt hash, never the plaintext password
	cash         int64     // Cash balance in cents (private, mutated only through trade methods)
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
	TradeCount   uint64    // Count of trades executed for this user
}

// NewUser creates a new user with the given starting cash ("10000.00" style string)
func NewUser(username, passwordHash, startingCash string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.ErrMissingUsername
	}

	cashCents, err := ParseCents(startingCash)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		cash:         cashCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Cash returns the current cash balance in cents
func (u *User) Cash() int64 {
	return u.cash
}

// FormattedCash returns the cash balance as a string with two decimal places
func (u *User) FormattedCash() string {
	return CentsToString(u.cash)
}

// SetCash overwrites the cash balance (used by repositories when hydrating)
func (u *User) SetCash(cents int64, timeProvider coreport.TimeProvider) {
	u.cash = cents
	u.UpdatedAt = timeProvider.Now()
}

// CanAfford reports whether the user has the cash to cover a cost in cents
func (u *User) CanAfford(costCents int64) bool {
	return u.cash >= costCents
}

// ApplyBuy debits the cost of a purchase from cash.
// Returns ErrInsufficientCash without mutating anything when cash is short.
func (u *User) ApplyBuy(costCents int64, timeProvider coreport.TimeProvider) error {
	if u.cash < costCents {
		return errs.ErrInsufficientCash
	}

	u.cash -= costCents
	u.UpdatedAt = timeProvider.Now()
	u.TradeCount++
	return nil
}

// ApplySell credits the proceeds of a sale to cash
func (u *User) ApplySell(proceedsCents int64, timeProvider coreport.TimeProvider) {
	u.cash += proceedsCents
	u.UpdatedAt = timeProvider.Now()
	u.TradeCount++
}
