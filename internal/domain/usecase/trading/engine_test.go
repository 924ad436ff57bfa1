package trading

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	"papertrader/internal/domain/port/persistence"
	coremocks "papertrader/mocks/port/core"
	persistencemocks "papertrader/mocks/port/persistence"
	quotemocks "papertrader/mocks/port/quote"
)

func nflxQuote() *entity.Quote {
	return &entity.Quote{
		Symbol: "NFLX",
		Name:   "Netflix, Inc.",
		Price:  decimal.RequireFromString("500.00"),
	}
}

func newTestUser(t *testing.T, cash string) *entity.User {
	t.Helper()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Once()

	user, err := entity.NewUser("alice", "hash", cash, mockTime)
	require.NoError(t, err)
	user.ID = 1
	return user
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	t.Helper()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestEngineBuy(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful buy debits cash and records the entry", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockQuotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(nflxQuote(), nil).Once()

		user := newTestUser(t, "5000.00")
		mockUserRepo.EXPECT().ExecuteTrade(mock.Anything, persistence.TradeCommand{
			UserID:     1,
			Symbol:     "NFLX",
			Shares:     10,
			PriceCents: 50000,
			Side:       entity.SideBuy,
		}).Return(user, &entity.LedgerEntry{
			UserID:     1,
			Symbol:     "NFLX",
			Shares:     10,
			PriceCents: 50000,
			Side:       entity.SideBuy,
		}, nil).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		result, err := engine.Buy(ctx, 1, "nflx", "10")

		require.NoError(t, err)
		assert.Equal(t, "NFLX", result.Entry.Symbol)
		assert.Equal(t, int64(10), result.Entry.Shares)
		assert.Equal(t, "5000.00", result.User.FormattedCash())
	})

	t.Run("Missing symbol rejected before anything else", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		// No quote lookup, no share parsing, no repository call.
		_, err := engine.Buy(ctx, 1, "", "abc")

		assert.ErrorIs(t, err, errs.ErrMissingSymbol)
	})

	t.Run("Unknown symbol rejected before shares are parsed", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockQuotes.EXPECT().Lookup(mock.Anything, "ZZZZ").Return(nil, errs.ErrSymbolNotFound).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		_, err := engine.Buy(ctx, 1, "zzzz", "abc")

		assert.ErrorIs(t, err, errs.ErrSymbolNotFound)
	})

	t.Run("Invalid share counts never reach storage", func(t *testing.T) {
		for _, shares := range []string{"abc", "-5", "0", "1.5"} {
			mockUserRepo := persistencemocks.NewMockUserRepository(t)
			mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
			mockQuotes := quotemocks.NewMockProvider(t)

			mockQuotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(nflxQuote(), nil).Once()

			engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

			_, err := engine.Buy(ctx, 1, "NFLX", shares)

			assert.ErrorIs(t, err, errs.ErrInvalidShares, "shares %q", shares)
		}
	})

	t.Run("Missing shares rejected", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockQuotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(nflxQuote(), nil).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		_, err := engine.Buy(ctx, 1, "NFLX", "")

		assert.ErrorIs(t, err, errs.ErrMissingShares)
	})

	t.Run("Insufficient cash surfaces unchanged", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockQuotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(nflxQuote(), nil).Once()
		mockUserRepo.EXPECT().ExecuteTrade(mock.Anything, mock.Anything).
			Return(nil, nil, errs.NewInsufficientCashError(1, "NFLX", "5000.00", "100.00")).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		_, err := engine.Buy(ctx, 1, "NFLX", "10")

		assert.ErrorIs(t, err, errs.ErrInsufficientCash)
	})
}

func TestEngineSell(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful sell credits cash at the current price", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockLedgerRepo.EXPECT().HoldingFor(mock.Anything, uint64(1), "NFLX").Return(10, nil).Once()
		mockQuotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(nflxQuote(), nil).Once()

		user := newTestUser(t, "7500.00")
		mockUserRepo.EXPECT().ExecuteTrade(mock.Anything, persistence.TradeCommand{
			UserID:     1,
			Symbol:     "NFLX",
			Shares:     5,
			PriceCents: 50000,
			Side:       entity.SideSell,
		}).Return(user, &entity.LedgerEntry{
			UserID:     1,
			Symbol:     "NFLX",
			Shares:     -5,
			PriceCents: 50000,
			Side:       entity.SideSell,
		}, nil).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		result, err := engine.Sell(ctx, 1, "NFLX", "5")

		require.NoError(t, err)
		assert.Equal(t, int64(-5), result.Entry.Shares)
		assert.Equal(t, "7500.00", result.User.FormattedCash())
	})

	t.Run("Selling an unowned symbol rejected before share parsing", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockLedgerRepo.EXPECT().HoldingFor(mock.Anything, uint64(1), "AAPL").Return(0, nil).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		// Malformed share count must not mask the ownership failure.
		_, err := engine.Sell(ctx, 1, "AAPL", "abc")

		assert.ErrorIs(t, err, errs.ErrSymbolNotOwned)
	})

	t.Run("Selling more than held rejected without a quote lookup", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
		mockQuotes := quotemocks.NewMockProvider(t)

		mockLedgerRepo.EXPECT().HoldingFor(mock.Anything, uint64(1), "NFLX").Return(5, nil).Once()

		engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

		_, err := engine.Sell(ctx, 1, "NFLX", "6")

		assert.ErrorIs(t, err, errs.ErrInsufficientHoldings)
	})

	t.Run("Invalid share counts rejected after the ownership check", func(t *testing.T) {
		for _, shares := range []string{"abc", "-5", "0"} {
			mockUserRepo := persistencemocks.NewMockUserRepository(t)
			mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
			mockQuotes := quotemocks.NewMockProvider(t)

			mockLedgerRepo.EXPECT().HoldingFor(mock.Anything, uint64(1), "NFLX").Return(10, nil).Once()

			engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

			_, err := engine.Sell(ctx, 1, "NFLX", shares)

			assert.ErrorIs(t, err, errs.ErrInvalidShares, "shares %q", shares)
		}
	})
}

// Covers the round trip: 10000.00 cash, buy 10 NFLX at 500.00, sell 5 at
// 500.00. Cash goes 10000.00 -> 5000.00 -> 7500.00 and the ledger carries
// deltas +10 and -5.
func TestEngineBuySellRoundTrip(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, err := entity.NewUser("alice", "hash", "10000.00", mockTime)
	require.NoError(t, err)
	user.ID = 1

	holding := int64(0)

	mockUserRepo := persistencemocks.NewMockUserRepository(t)
	mockLedgerRepo := persistencemocks.NewMockLedgerRepository(t)
	mockQuotes := quotemocks.NewMockProvider(t)

	mockQuotes.EXPECT().Lookup(mock.Anything, "NFLX").Return(nflxQuote(), nil).Times(2)
	mockLedgerRepo.EXPECT().HoldingFor(mock.Anything, uint64(1), "NFLX").
		RunAndReturn(func(context.Context, uint64, string) (int64, error) {
			return holding, nil
		}).Once()

	// Stand-in for the real repository: apply the cash effect and track the
	// summed holding so the second trade sees the first one's state.
	mockUserRepo.EXPECT().ExecuteTrade(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cmd persistence.TradeCommand) (*entity.User, *entity.LedgerEntry, error) {
			cost, err := entity.MulShares(cmd.Shares, cmd.PriceCents)
			if err != nil {
				return nil, nil, err
			}

			var entry *entity.LedgerEntry
			if cmd.Side == entity.SideBuy {
				if err := user.ApplyBuy(cost, mockTime); err != nil {
					return nil, nil, err
				}
				entry, err = entity.NewBuyEntry(cmd.UserID, cmd.Symbol, cmd.Shares, cmd.PriceCents, mockTime)
			} else {
				user.ApplySell(cost, mockTime)
				entry, err = entity.NewSellEntry(cmd.UserID, cmd.Symbol, cmd.Shares, cmd.PriceCents, mockTime)
			}
			if err != nil {
				return nil, nil, err
			}

			holding += entry.Shares
			return user, entry, nil
		}).Times(2)

	engine := NewEngine(mockUserRepo, mockLedgerRepo, mockQuotes, quietLogger(t))

	buyResult, err := engine.Buy(ctx, 1, "NFLX", "10")
	require.NoError(t, err)
	assert.Equal(t, "5000.00", buyResult.User.FormattedCash())
	assert.Equal(t, int64(10), buyResult.Entry.Shares)
	assert.Equal(t, int64(10), holding)

	sellResult, err := engine.Sell(ctx, 1, "NFLX", "5")
	require.NoError(t, err)
	assert.Equal(t, "7500.00", sellResult.User.FormattedCash())
	assert.Equal(t, int64(-5), sellResult.Entry.Shares)
	assert.Equal(t, int64(5), holding)
}
