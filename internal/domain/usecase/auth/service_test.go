package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	coremocks "papertrader/mocks/port/core"
	persistencemocks "papertrader/mocks/port/persistence"
	sessionmocks "papertrader/mocks/port/session"
)

func quietLogger(t *testing.T) *coremocks.MockLogger {
	t.Helper()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newService(t *testing.T, userRepo *persistencemocks.MockUserRepository, tokens *sessionmocks.MockTokenManager, revoked *sessionmocks.MockTokenStore, tp *coremocks.MockTimeProvider) *Service {
	t.Helper()
	return NewService(userRepo, tokens, revoked, tp, quietLogger(t), "10000.00", bcrypt.MinCost)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRepo.EXPECT().UsernameExists(mock.Anything, "alice").Return(false, nil).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "alice" && user.FormattedCash() == "10000.00"
		})).RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 7
			return nil
		}).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		user, err := svc.Register(ctx, "alice", "secret", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "secret", user.PasswordHash, "plaintext must never be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
	})

	t.Run("Validation failures in order", func(t *testing.T) {
		testCases := []struct {
			name         string
			username     string
			password     string
			confirmation string
			wantErr      error
		}{
			{"missing username", "", "secret", "secret", errs.ErrMissingUsername},
			{"blank username", "   ", "secret", "secret", errs.ErrMissingUsername},
			{"missing password", "alice", "", "", errs.ErrMissingPassword},
			{"missing confirmation", "alice", "secret", "", errs.ErrPasswordMismatch},
			{"mismatched confirmation", "alice", "secret", "other", errs.ErrPasswordMismatch},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := persistencemocks.NewMockUserRepository(t)
				mockTokens := sessionmocks.NewMockTokenManager(t)
				mockRevoked := sessionmocks.NewMockTokenStore(t)
				mockTime := coremocks.NewMockTimeProvider(t)

				svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

				user, err := svc.Register(ctx, tc.username, tc.password, tc.confirmation)

				assert.Nil(t, user)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("Taken username", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().UsernameExists(mock.Anything, "alice").Return(true, nil).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		user, err := svc.Register(ctx, "alice", "secret", "secret")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	expiry := fixedTime.Add(24 * time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := func(t *testing.T) *entity.User {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		user, err := entity.NewUser("alice", string(hash), "10000.00", mockTime)
		require.NoError(t, err)
		user.ID = 7
		return user
	}

	t.Run("Successful login issues a token", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(storedUser(t), nil).Once()
		mockTokens.EXPECT().Issue(mock.Anything, uint64(7)).Return("token-123", expiry, nil).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		result, err := svc.Login(ctx, "alice", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), result.UserID)
		assert.Equal(t, "token-123", result.Token)
		assert.Equal(t, expiry, result.ExpiresAt)
	})

	t.Run("Unknown username and wrong password look identical", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().GetByUsername(mock.Anything, "alice").Return(storedUser(t), nil).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		_, unknownErr := svc.Login(ctx, "ghost", "secret")
		_, wrongErr := svc.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, unknownErr, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, errs.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		_, err := svc.Login(ctx, "", "secret")
		assert.ErrorIs(t, err, errs.ErrMissingUsername)

		_, err = svc.Login(ctx, "alice", "")
		assert.ErrorIs(t, err, errs.ErrMissingPassword)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Revokes for the remaining lifetime", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTokens.EXPECT().Verify(mock.Anything, "token-123").Return(uint64(7), fixedTime.Add(time.Hour), nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		mockRevoked.EXPECT().Revoke(mock.Anything, "token-123", time.Hour).Return(nil).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		assert.NoError(t, svc.Logout(ctx, "token-123"))
	})

	t.Run("Invalid token needs no revocation", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTokens.EXPECT().Verify(mock.Anything, "garbage").Return(uint64(0), time.Time{}, errs.ErrInvalidCredentials).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		assert.NoError(t, svc.Logout(ctx, "garbage"))
	})

	t.Run("Expired token needs no revocation", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTokens.EXPECT().Verify(mock.Anything, "stale").Return(uint64(7), fixedTime.Add(-time.Minute), nil).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		assert.NoError(t, svc.Logout(ctx, "stale"))
	})
}

func TestCheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Free username is available", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().UsernameExists(mock.Anything, "alice").Return(false, nil).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		available, err := svc.CheckAvailability(ctx, "alice")

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Taken username is unavailable", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().UsernameExists(mock.Anything, "alice").Return(true, nil).Once()

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		available, err := svc.CheckAvailability(ctx, "alice")

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Empty username is never available", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTokens := sessionmocks.NewMockTokenManager(t)
		mockRevoked := sessionmocks.NewMockTokenStore(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		svc := newService(t, mockRepo, mockTokens, mockRevoked, mockTime)

		// No repository call for blank input.
		available, err := svc.CheckAvailability(ctx, "   ")

		require.NoError(t, err)
		assert.False(t, available)
	})
}
