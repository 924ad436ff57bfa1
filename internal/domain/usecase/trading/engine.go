package trading

import (
	"context"
	"fmt"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/persistence"
	quoteport "papertrader/internal/domain/port/quote"
)

// Engine validates and applies buy/sell operations against the ledger store
// and the quote provider. Preconditions are checked in a fixed order with the
// first failure winning; the cash and holdings checks are re-run inside the
// repository's database transaction, so a stale read here can never commit.
type Engine struct {
	userRepo   persistence.UserRepository
	ledgerRepo persistence.LedgerRepository
	quotes     quoteport.Provider
	validator  *TradeValidator
	logger     coreport.Logger
}

// NewEngine creates a new trade engine
func NewEngine(
	userRepo persistence.UserRepository,
	ledgerRepo persistence.LedgerRepository,
	quotes quoteport.Provider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		quotes:     quotes,
		validator:  NewTradeValidator(),
		logger:     logger,
	}
}

// TradeResult carries the state after a committed trade
type TradeResult struct {
	User  *entity.User
	Entry *entity.LedgerEntry
	Quote *entity.Quote
}

// Buy purchases shares of symbol at the current quoted price.
// Check order: symbol present, symbol resolvable, shares present, shares a
// positive integer, cash sufficient. On success the ledger entry and the cash
// debit commit together.
func (e *Engine) Buy(ctx context.Context, userID uint64, symbol, shares string) (*TradeResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	sym, err := e.validator.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	q, err := e.quotes.Lookup(ctx, sym)
	if err != nil {
		return nil, err
	}

	count, err := e.validator.ParseShares(shares)
	if err != nil {
		return nil, err
	}

	priceCents, err := q.PriceCents()
	if err != nil {
		return nil, fmt.Errorf("quote price for %s: %w", sym, err)
	}

	user, entry, err := e.userRepo.ExecuteTrade(ctx, persistence.TradeCommand{
		UserID:     userID,
		Symbol:     sym,
		Shares:     count,
		PriceCents: priceCents,
		Side:       entity.SideBuy,
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Buy executed", map[string]any{
		"user_id": userID,
		"symbol":  sym,
		"shares":  count,
		"price":   entity.CentsToString(priceCents),
		"cash":    user.FormattedCash(),
	})

	return &TradeResult{User: user, Entry: entry, Quote: q}, nil
}

// Sell sells shares of a currently held symbol at the current quoted price,
// never the historical purchase price. Check order: symbol present, symbol
// currently held, shares present, shares a positive integer, shares within
// the summed holding. On success the ledger entry and the cash credit commit
// together.
func (e *Engine) Sell(ctx context.Context, userID uint64, symbol, shares string) (*TradeResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	sym, err := e.validator.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	held, err := e.ledgerRepo.HoldingFor(ctx, userID, sym)
	if err != nil {
		return nil, err
	}
	if held <= 0 {
		return nil, errs.ErrSymbolNotOwned
	}

	count, err := e.validator.ParseShares(shares)
	if err != nil {
		return nil, err
	}

	if count > held {
		return nil, errs.NewInsufficientHoldingsError(userID, sym, count, held)
	}

	q, err := e.quotes.Lookup(ctx, sym)
	if err != nil {
		return nil, err
	}

	priceCents, err := q.PriceCents()
	if err != nil {
		return nil, fmt.Errorf("quote price for %s: %w", sym, err)
	}

	user, entry, err := e.userRepo.ExecuteTrade(ctx, persistence.TradeCommand{
		UserID:     userID,
		Symbol:     sym,
		Shares:     count,
		PriceCents: priceCents,
		Side:       entity.SideSell,
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Sell executed", map[string]any{
		"user_id": userID,
		"symbol":  sym,
		"shares":  count,
		"price":   entity.CentsToString(priceCents),
		"cash":    user.FormattedCash(),
	})

	return &TradeResult{User: user, Entry: entry, Quote: q}, nil
}
