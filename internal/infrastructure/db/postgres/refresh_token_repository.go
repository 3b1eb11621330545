package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fitstack/gym-api/internal/core/domain"
)

type RefreshTokenRepository struct {
	db *DB
}

func NewRefreshTokenRepository(db *DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

const (
	qTokenInsert = `
INSERT INTO refresh_tokens (token_id, user_id, token_hash, expires_at, is_revoked, created_at)
VALUES ($1, $2, $3, $4, FALSE, $5);`

	qTokenByHash = `
SELECT token_id, user_id, token_hash, expires_at, is_revoked, created_at
FROM refresh_tokens
WHERE token_hash = $1;`

	// The is_revoked guard makes revocation a compare-and-set: of two
	// concurrent rotations of the same token, only one update reports an
	// affected row.
	qTokenRevoke = `
UPDATE refresh_tokens SET is_revoked = TRUE
WHERE token_id = $1 AND is_revoked = FALSE;`

	qTokenDelete = `
DELETE FROM refresh_tokens WHERE token_id = $1;`
)

func (r *RefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	_, err := r.db.querier(ctx).Exec(ctx, qTokenInsert,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var t domain.RefreshToken
	err := r.db.querier(ctx).QueryRow(ctx, qTokenByHash, tokenHash).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.IsRevoked, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &t, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id string) (int64, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.querier(ctx).Exec(ctx, qTokenRevoke, id)
	if err != nil {
		return 0, fmt.Errorf("revoke refresh token: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.querier(ctx).Exec(ctx, qTokenDelete, id); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}
