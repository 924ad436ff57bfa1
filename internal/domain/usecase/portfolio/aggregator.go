package portfolio

import (
	"context"
	"time"

	"papertrader/internal/domain/entity"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/persistence"
	quoteport "papertrader/internal/domain/port/quote"
)

// HoldingRow is one line of the portfolio view: a derived holding augmented
// with a live quote. A quote-provider failure degrades the row instead of
// failing the whole view: the raw holding stays visible and QuoteUnavailable
// marks the missing price data.
type HoldingRow struct {
	Symbol           string
	Shares           int64
	Name             string
	Price            string
	Value            string
	QuoteUnavailable bool
}

// Summary is the full portfolio view: priced rows plus cash and grand total
type Summary struct {
	Rows  []HoldingRow
	Cash  string
	Total string
}

// HistoryRow is one ledger entry annotated for display. Name is the quote
// provider's current display name, not the name at trade time.
type HistoryRow struct {
	Symbol string
	Name   string
	Shares int64
	Price  string
	Side   string
	Date   time.Time
}

// Aggregator computes current holdings and portfolio value from the ledger
type Aggregator struct {
	userRepo   persistence.UserRepository
	ledgerRepo persistence.LedgerRepository
	quotes     quoteport.Provider
	logger     coreport.Logger
}

// NewAggregator creates a new portfolio aggregator
func NewAggregator(
	userRepo persistence.UserRepository,
	ledgerRepo persistence.LedgerRepository,
	quotes quoteport.Provider,
	logger coreport.Logger,
) *Aggregator {
	return &Aggregator{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		quotes:     quotes,
		logger:     logger,
	}
}

// Holdings returns the user's current positions with live quotes, ordered by
// symbol. Fully-sold positions are absent; their entries remain in the ledger.
func (a *Aggregator) Holdings(ctx context.Context, userID uint64) ([]HoldingRow, error) {
	holdings, err := a.ledgerRepo.Holdings(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]HoldingRow, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, a.priceRow(ctx, h))
	}
	return rows, nil
}

// Summarize returns the holdings view plus cash and grand total.
// Degraded rows contribute nothing to the total beyond their absence of a
// price; cash and all priced rows are still summed.
func (a *Aggregator) Summarize(ctx context.Context, userID uint64) (*Summary, error) {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := a.Holdings(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalCents := user.Cash()
	for _, row := range rows {
		if row.QuoteUnavailable {
			continue
		}
		valueCents, err := entity.ParseCents(row.Value)
		if err != nil {
			return nil, err
		}
		totalCents += valueCents
	}

	return &Summary{
		Rows:  rows,
		Cash:  user.FormattedCash(),
		Total: entity.CentsToString(totalCents),
	}, nil
}

// History returns all of the user's ledger entries in entry order, each
// annotated with the provider's current display name for its symbol. When the
// provider cannot supply a name the raw symbol is used.
func (a *Aggregator) History(ctx context.Context, userID uint64) ([]HistoryRow, error) {
	entries, err := a.ledgerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.Symbol]
		if !ok {
			name = e.Symbol
			if q, err := a.quotes.Lookup(ctx, e.Symbol); err == nil {
				name = q.Name
			} else {
				a.logger.Warn("Quote name unavailable for history row", map[string]any{
					"user_id": userID,
					"symbol":  e.Symbol,
					"error":   err.Error(),
				})
			}
			names[e.Symbol] = name
		}

		rows = append(rows, HistoryRow{
			Symbol: e.Symbol,
			Name:   name,
			Shares: e.Shares,
			Price:  entity.CentsToString(e.PriceCents),
			Side:   string(e.Side),
			Date:   e.CreatedAt,
		})
	}
	return rows, nil
}

func (a *Aggregator) priceRow(ctx context.Context, h entity.Holding) HoldingRow {
	q, err := a.quotes.Lookup(ctx, h.Symbol)
	if err != nil {
		a.logger.Warn("Quote unavailable, degrading portfolio row", map[string]any{
			"symbol": h.Symbol,
			"error":  err.Error(),
		})
		return HoldingRow{
			Symbol:           h.Symbol,
			Shares:           h.Shares,
			QuoteUnavailable: true,
		}
	}

	priceCents, err := q.PriceCents()
	if err != nil {
		a.logger.Warn("Quote price unusable, degrading portfolio row", map[string]any{
			"symbol": h.Symbol,
			"error":  err.Error(),
		})
		return HoldingRow{
			Symbol:           h.Symbol,
			Shares:           h.Shares,
			Name:             q.Name,
			QuoteUnavailable: true,
		}
	}

	valueCents, err := entity.MulShares(h.Shares, priceCents)
	if err != nil {
		return HoldingRow{
			Symbol:           h.Symbol,
			Shares:           h.Shares,
			Name:             q.Name,
			QuoteUnavailable: true,
		}
	}

	return HoldingRow{
		Symbol: h.Symbol,
		Shares: h.Shares,
		Name:   q.Name,
		Price:  entity.CentsToString(priceCents),
		Value:  entity.CentsToString(valueCents),
	}
}
