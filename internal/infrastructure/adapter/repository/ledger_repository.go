package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/infrastructure/adapter/model"
)

// LedgerRepository implements persistence.LedgerRepository using GORM.
// It only ever reads; inserts go through UserRepository.ExecuteTrade so the
// entry and the cash mutation share one transaction.
type LedgerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns all ledger entries for a user ordered by creation time
func (r *LedgerRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntry
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]entity.LedgerEntry, 0, len(entryModels))
	for _, m := range entryModels {
		entries = append(entries, entity.LedgerEntry{
			ID:         m.ID,
			UserID:     m.UserID,
			Symbol:     m.Symbol,
			Shares:     m.Shares,
			PriceCents: m.PriceCents,
			Side:       entity.TradeSide(m.Side),
			CreatedAt:  m.CreatedAt,
		})
	}
	return entries, nil
}

// Holdings sums signed share deltas per symbol, keeping only positive totals.
// Fully-sold positions vanish from this view while their entries remain.
func (r *LedgerRepository) Holdings(ctx context.Context, userID uint64) ([]entity.Holding, error) {
	var holdings []entity.Holding
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntry{}).
		Select("symbol, SUM(shares) AS shares").
		Where("user_id = ?", userID).
		Group("symbol").
		Having("SUM(shares) > 0").
		Order("symbol ASC").
		Scan(&holdings)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return holdings, nil
}

// HoldingFor returns the summed share count for one user and symbol
func (r *LedgerRepository) HoldingFor(ctx context.Context, userID uint64, symbol string) (int64, error) {
	var held int64
	result := r.db.WithContext(ctx).
		Model(&model.LedgerEntry{}).
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Select("COALESCE(SUM(shares), 0)").
		Scan(&held)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return held, nil
}
