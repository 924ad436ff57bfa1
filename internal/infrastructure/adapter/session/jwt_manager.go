package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	sessionport "papertrader/internal/domain/port/session"
)

// JWTManager issues and verifies HS256 session tokens
type JWTManager struct {
	secret       []byte
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a token manager with the given signing secret and TTL
func NewJWTManager(secret string, tokenTTL time.Duration, timeProvider coreport.TimeProvider) *JWTManager {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &JWTManager{
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token carrying the user id
func (m *JWTManager) Issue(_ context.Context, userID uint64) (string, time.Time, error) {
	now := m.timeProvider.Now()
	expiresAt := now.Add(m.tokenTTL)

	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify checks the signature and expiry and returns the bound user id
func (m *JWTManager) Verify(_ context.Context, tokenString string) (uint64, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, errs.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, errs.ErrInvalidCredentials
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return 0, time.Time{}, errs.ErrInvalidCredentials
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, time.Time{}, errs.ErrInvalidCredentials
	}
	if m.timeProvider.Now().After(exp.Time) {
		return 0, time.Time{}, errs.ErrInvalidCredentials
	}

	return uint64(rawID), exp.Time, nil
}

var _ sessionport.TokenManager = (*JWTManager)(nil)
