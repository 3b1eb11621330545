package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// EntitlementRepository reads the subscription snapshot maintained by the
// billing subsystem. This side only ever reads it.
type EntitlementRepository struct {
	db *DB
}

func NewEntitlementRepository(db *DB) *EntitlementRepository {
	return &EntitlementRepository{db: db}
}

const qEntitlementByUser = `
SELECT tier_name, ai_features_included, max_workouts_per_month
FROM user_subscription_status
WHERE user_id = $1;`

// ForUser returns the user's entitlement snapshot, or the basic-tier defaults
// when no subscription row exists.
func (r *EntitlementRepository) ForUser(ctx context.Context, userID string) (domain.Entitlement, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var ent domain.Entitlement
	err := r.db.querier(ctx).QueryRow(ctx, qEntitlementByUser, userID).
		Scan(&ent.SubscriptionTier, &ent.AIFeaturesIncluded, &ent.MaxWorkoutsPerMonth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultEntitlement(), nil
		}
		return domain.Entitlement{}, fmt.Errorf("find entitlement: %w", err)
	}
	return ent, nil
}
