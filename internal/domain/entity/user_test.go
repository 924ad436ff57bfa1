package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "papertrader/internal/domain/error"
	coremocks "papertrader/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice", "hash", "10000.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, int64(1000000), user.Cash())
		assert.Equal(t, "10000.00", user.FormattedCash())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Missing username", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("", "hash", "10000.00", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrMissingUsername)
	})

	t.Run("Invalid starting cash", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("alice", "hash", "not-money", mockTime)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUserApplyBuy(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	laterTime := fixedTime.Add(time.Hour)

	t.Run("Debits cash and bumps trade count", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice", "hash", "10000.00", mockTime)
		require.NoError(t, err)

		mockTime.EXPECT().Now().Return(laterTime).Once()
		err = user.ApplyBuy(500000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "5000.00", user.FormattedCash())
		assert.Equal(t, uint64(1), user.TradeCount)
		assert.Equal(t, laterTime, user.UpdatedAt)
	})

	t.Run("Insufficient cash leaves state untouched", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("alice", "hash", "100.00", mockTime)
		require.NoError(t, err)

		err = user.ApplyBuy(10001, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientCash)
		assert.Equal(t, "100.00", user.FormattedCash())
		assert.Equal(t, uint64(0), user.TradeCount)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Exact cash is affordable", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Times(2)

		user, err := NewUser("alice", "hash", "100.00", mockTime)
		require.NoError(t, err)

		assert.True(t, user.CanAfford(10000))
		require.NoError(t, user.ApplyBuy(10000, mockTime))
		assert.Equal(t, "0.00", user.FormattedCash())
	})
}

func TestUserApplySell(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Times(2)

	user, err := NewUser("alice", "hash", "5000.00", mockTime)
	require.NoError(t, err)

	user.ApplySell(250000, mockTime)

	assert.Equal(t, "7500.00", user.FormattedCash())
	assert.Equal(t, uint64(1), user.TradeCount)
}
