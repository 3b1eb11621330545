package ports

import (
	"context"
	"time"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	// UpdateLastLogin stamps a successful login. Callers treat failures as
	// best-effort: a lost timestamp never fails an authentication flow.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// EntitlementSource exposes the read-only subscription snapshot owned by the
// billing subsystem. Implementations return domain.DefaultEntitlement when no
// subscription row exists.
type EntitlementSource interface {
	ForUser(ctx context.Context, userID string) (domain.Entitlement, error)
}

// Transactor runs fn inside a single store transaction. Repository calls made
// with the ctx passed to fn join that transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
