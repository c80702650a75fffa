package ports

import (
	"context"
	"time"

	"github.com/hrc-navate/worklog/internal/core/domain"
)

// TokenRevoker remembers logged-out tokens until they would have expired.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService authenticates accounts and issues tokens.
type AuthService interface {
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
