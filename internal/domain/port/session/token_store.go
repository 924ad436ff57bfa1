package session

import (
	"context"
	"time"
)

// TokenStore tracks revoked session tokens until their natural expiry.
// Logout places a token here; the auth middleware rejects anything present.
type TokenStore interface {
	// Revoke marks a token as invalid for the remainder of its lifetime
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether a token has been revoked
	IsRevoked(ctx context.Context, token string) (bool, error)
}
