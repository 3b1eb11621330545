package ports

import (
	"context"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// RefreshTokenRepository defines the interface for refresh-token persistence.
// Records are always addressed by the SHA-256 hash of the opaque value; the
// raw value is never stored.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	// Revoke flips is_revoked false→true as a conditional update and returns
	// the number of rows affected. Zero means another caller already rotated
	// the token; that caller won the race.
	Revoke(ctx context.Context, id string) (int64, error)
	// Delete removes a token row outright. Used for eager cleanup of expired
	// tokens discovered during verification.
	Delete(ctx context.Context, id string) error
}
