package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "papertrader/internal/domain/error"
	coremocks "papertrader/mocks/port/core"
)

func TestNewBuyEntry(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		entry, err := NewBuyEntry(1, "NFLX", 10, 50000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), entry.UserID)
		assert.Equal(t, "NFLX", entry.Symbol)
		assert.Equal(t, int64(10), entry.Shares)
		assert.Equal(t, int64(50000), entry.PriceCents)
		assert.Equal(t, SideBuy, entry.Side)
		assert.Equal(t, fixedTime, entry.CreatedAt)
	})

	t.Run("Validation failures", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		testCases := []struct {
			name       string
			userID     uint64
			symbol     string
			shares     int64
			priceCents int64
			wantErr    error
		}{
			{"zero user id", 0, "NFLX", 10, 50000, errs.ErrInvalidUserID},
			{"empty symbol", 1, "", 10, 50000, errs.ErrMissingSymbol},
			{"zero shares", 1, "NFLX", 0, 50000, errs.ErrInvalidShares},
			{"negative shares", 1, "NFLX", -5, 50000, errs.ErrInvalidShares},
			{"zero price", 1, "NFLX", 10, 0, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				entry, err := NewBuyEntry(tc.userID, tc.symbol, tc.shares, tc.priceCents, mockTime)
				assert.Nil(t, entry)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestNewSellEntry(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	entry, err := NewSellEntry(1, "NFLX", 5, 50000, mockTime)

	require.NoError(t, err)
	assert.Equal(t, int64(-5), entry.Shares, "sell entries store a negative delta")
	assert.Equal(t, SideSell, entry.Side)
}

func TestLedgerEntryCostCents(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Times(2)

	buy, err := NewBuyEntry(1, "NFLX", 10, 50000, mockTime)
	require.NoError(t, err)
	cost, err := buy.CostCents()
	require.NoError(t, err)
	assert.Equal(t, int64(500000), cost, "buys cost cash")

	sell, err := NewSellEntry(1, "NFLX", 5, 50000, mockTime)
	require.NoError(t, err)
	proceeds, err := sell.CostCents()
	require.NoError(t, err)
	assert.Equal(t, int64(-250000), proceeds, "sells return cash")
}

func TestIsValidSide(t *testing.T) {
	assert.True(t, IsValidSide("buy"))
	assert.True(t, IsValidSide("sell"))
	assert.False(t, IsValidSide("short"))
	assert.False(t, IsValidSide(""))
}
