package domain

import "time"

// User models a registered account. The password hash never leaves the core
// layer; email comparisons are case-sensitive (no normalisation on write or
// lookup).
type User struct {
	ID           string     `json:"user_id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Entitlement is the subscription snapshot joined at authentication time.
// Owned by the billing subsystem; the core only reads it.
type Entitlement struct {
	SubscriptionTier    string `json:"subscription_tier"`
	AIFeaturesIncluded  bool   `json:"ai_features_included"`
	MaxWorkoutsPerMonth *int   `json:"max_workouts_per_month"`
}

// DefaultEntitlement applies when a user has no subscription row.
func DefaultEntitlement() Entitlement {
	return Entitlement{SubscriptionTier: "basic"}
}
