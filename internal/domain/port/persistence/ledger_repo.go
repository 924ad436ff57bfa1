package persistence

import (
	"context"

	"papertrader/internal/domain/entity"
)

// LedgerRepository defines read access to the append-only trade ledger.
// Writes happen only through UserRepository.ExecuteTrade so that the ledger
// entry and the cash mutation share one database transaction.
type LedgerRepository interface {
	// ListByUser returns all ledger entries for a user ordered by creation time
	ListByUser(ctx context.Context, userID uint64) ([]entity.LedgerEntry, error)

	// Holdings returns per-symbol summed share counts for a user, filtered to
	// positive totals and ordered by symbol
	Holdings(ctx context.Context, userID uint64) ([]entity.Holding, error)

	// HoldingFor returns the summed share count for one user and symbol.
	// A symbol the user never traded sums to zero, not an error.
	HoldingFor(ctx context.Context, userID uint64, symbol string) (int64, error)
}
