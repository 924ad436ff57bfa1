package session

import (
	"context"
	"time"
)

// TokenManager issues and verifies session tokens binding a request to a user id
type TokenManager interface {
	// Issue creates a signed token for the user, returning it with its expiry
	Issue(ctx context.Context, userID uint64) (token string, expiresAt time.Time, err error)

	// Verify checks a token's signature and expiry and returns the bound user id
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the token is malformed, forged or expired
	Verify(ctx context.Context, token string) (userID uint64, expiresAt time.Time, err error)
}
