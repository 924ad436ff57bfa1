package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/persistence"
	"papertrader/internal/domain/port/session"
)

// Service implements the auth gateway: registration, login, logout and the
// live username-availability check. Passwords are stored only as bcrypt
// hashes; session identity is a signed token carried per request, never
// ambient state.
type Service struct {
	userRepo     persistence.UserRepository
	tokens       session.TokenManager
	revoked      session.TokenStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	startingCash string
	bcryptCost   int
}

// NewService creates a new auth service. startingCash is the cash every new
// account begins with, e.g. "10000.00".
func NewService(
	userRepo persistence.UserRepository,
	tokens session.TokenManager,
	revoked session.TokenStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingCash string,
	bcryptCost int,
) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:     userRepo,
		tokens:       tokens,
		revoked:      revoked,
		timeProvider: timeProvider,
		logger:       logger,
		startingCash: startingCash,
		bcryptCost:   bcryptCost,
	}
}

// Register creates a new account. Username must be non-empty and unused,
// password present and equal to its confirmation.
func (s *Service) Register(ctx context.Context, username, password, confirmation string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrMissingUsername
	}
	if password == "" {
		return nil, errs.ErrMissingPassword
	}
	if confirmation == "" || password != confirmation {
		return nil, errs.ErrPasswordMismatch
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(username, string(hash), s.startingCash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

// LoginResult carries the session token issued on a successful login
type LoginResult struct {
	UserID    uint64
	Token     string
	ExpiresAt time.Time
}

// Login verifies the credentials and issues a session token.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrMissingUsername
	}
	if password == "" {
		return nil, errs.ErrMissingPassword
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &LoginResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the session token for the remainder of its lifetime
func (s *Service) Logout(ctx context.Context, token string) error {
	_, expiresAt, err := s.tokens.Verify(ctx, token)
	if err != nil {
		// An already invalid token needs no revocation.
		return nil
	}

	ttl := expiresAt.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, token, ttl)
}

// CheckAvailability reports whether a candidate username can be registered:
// the name must be non-empty and no existing user may hold it.
func (s *Service) CheckAvailability(ctx context.Context, username string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, nil
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
