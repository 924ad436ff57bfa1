package persistence

import (
	"context"

	"papertrader/internal/domain/entity"
)

// TradeCommand describes one validated buy or sell to execute atomically.
// Shares is the positive requested count; the repository stores the signed
// delta and adjusts cash in the same database transaction.
type TradeCommand struct {
	UserID     uint64
	Symbol     string
	Shares     int64
	PriceCents int64
	Side       entity.TradeSide
}

// UserRepository defines the methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// UsernameExists reports whether a user with the given username exists.
	// Backs registration uniqueness and the live availability check.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Create creates a new user, assigning its ID
	//
	// Possible errors:
	// - ErrUsernameTaken: If a user with the same username already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// ExecuteTrade applies one buy or sell atomically: it locks the user row,
	// re-checks the cash or holdings precondition against current state,
	// appends the ledger entry and adjusts cash. Either all effects commit or
	// none do, and concurrent trades for the same user serialize on the lock.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientCash: If a buy exceeds the user's cash
	// - ErrInsufficientHoldings: If a sell exceeds the current summed holding
	// - ErrDatabaseConnection: If database connection fails
	ExecuteTrade(ctx context.Context, cmd TradeCommand) (*entity.User, *entity.LedgerEntry, error)
}
