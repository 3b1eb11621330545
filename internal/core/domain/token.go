package domain

import "time"

// RefreshToken is a stored rotation capability. Only the SHA-256 hash of the
// opaque value is persisted; the raw value exists solely in the response that
// delivered it to the client.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	IsRevoked bool
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// AccessClaims is the self-contained identity snapshot carried by an access
// token. Entitlement fields are captured at issuance time and go stale until
// the next login or refresh.
type AccessClaims struct {
	UserID      string
	Email       string
	IsActive    bool
	Entitlement *Entitlement
}

// TokenPair is what every successful authentication flow hands back.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}
