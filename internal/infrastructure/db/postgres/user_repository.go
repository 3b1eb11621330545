package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

const (
	qUserInsert = `
INSERT INTO users (email, password_hash, is_active)
VALUES ($1, $2, TRUE)
RETURNING user_id, email, password_hash, is_active, created_at, last_login;`

	qUserByEmail = `
SELECT user_id, email, password_hash, is_active, created_at, last_login
FROM users
WHERE email = $1;`

	qUserByID = `
SELECT user_id, email, password_hash, is_active, created_at, last_login
FROM users
WHERE user_id = $1;`

	qUserTouchLogin = `
UPDATE users SET last_login = $2 WHERE user_id = $1;`
)

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var u domain.User
	err := scanUser(r.db.querier(ctx).QueryRow(ctx, qUserInsert, email, passwordHash), &u)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var u domain.User
	if err := scanUser(r.db.querier(ctx).QueryRow(ctx, qUserByEmail, email), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var u domain.User
	if err := scanUser(r.db.querier(ctx).QueryRow(ctx, qUserByID, id), &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.querier(ctx).Exec(ctx, qUserTouchLogin, id, at); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row, out *domain.User) error {
	return row.Scan(&out.ID, &out.Email, &out.PasswordHash, &out.IsActive, &out.CreatedAt, &out.LastLogin)
}
