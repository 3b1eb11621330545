package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

// entitlementClaims mirrors domain.Entitlement inside the JWT payload. It is
// an optional sub-object: absent entirely when the caller has no snapshot.
type entitlementClaims struct {
	SubscriptionTier    string `json:"subscription_tier"`
	AIFeaturesIncluded  bool   `json:"ai_features_included"`
	MaxWorkoutsPerMonth *int   `json:"max_workouts_per_month,omitempty"`
}

type accessTokenClaims struct {
	jwt.RegisteredClaims
	Email       string             `json:"email"`
	IsActive    bool               `json:"is_active"`
	Entitlement *entitlementClaims `json:"entitlement,omitempty"`
}

// TokenService issues HS256 access tokens and opaque refresh tokens. Refresh
// tokens are stored as SHA-256 hashes; the raw value only travels in the
// response that delivered it.
type TokenService struct {
	tokens     ports.RefreshTokenRepository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenService validates the signing configuration up front so a
// misconfigured process fails at startup instead of on the first request.
func NewTokenService(tokens ports.RefreshTokenRepository, secret string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is not configured")
	}
	if accessTTL <= 0 {
		return nil, errors.New("token service: access token TTL must be positive")
	}
	if refreshTTL <= 0 {
		return nil, errors.New("token service: refresh token TTL must be positive")
	}
	return &TokenService{
		tokens:     tokens,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

func (s *TokenService) IssueAccessToken(claims domain.AccessClaims) (string, error) {
	now := s.now().UTC()
	tc := accessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
		Email:    claims.Email,
		IsActive: claims.IsActive,
	}
	if claims.Entitlement != nil {
		tc.Entitlement = &entitlementClaims{
			SubscriptionTier:    claims.Entitlement.SubscriptionTier,
			AIFeaturesIncluded:  claims.Entitlement.AIFeaturesIncluded,
			MaxWorkoutsPerMonth: claims.Entitlement.MaxWorkoutsPerMonth,
		}
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken checks signature and expiry only. Claims are
// self-contained and possibly stale; no store lookup happens here.
func (s *TokenService) VerifyAccessToken(token string) (*domain.AccessClaims, error) {
	var tc accessTokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims := &domain.AccessClaims{
		UserID:   tc.Subject,
		Email:    tc.Email,
		IsActive: tc.IsActive,
	}
	if tc.Entitlement != nil {
		claims.Entitlement = &domain.Entitlement{
			SubscriptionTier:    tc.Entitlement.SubscriptionTier,
			AIFeaturesIncluded:  tc.Entitlement.AIFeaturesIncluded,
			MaxWorkoutsPerMonth: tc.Entitlement.MaxWorkoutsPerMonth,
		}
	}
	return claims, nil
}

// IssueRefreshToken mints an opaque value, persists its hash with an absolute
// expiry, and returns both the stored record and the raw value.
func (s *TokenService) IssueRefreshToken(ctx context.Context, userID string) (*domain.RefreshToken, string, error) {
	raw := uuid.NewString()
	now := s.now().UTC()
	token := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TokenHash: HashRefreshToken(raw),
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, "", fmt.Errorf("store refresh token: %w", err)
	}
	return token, raw, nil
}

// VerifyRefreshToken resolves a raw value against the store. Missing or
// revoked tokens are indistinguishable to the caller; expired tokens are
// deleted on sight to bound store growth.
func (s *TokenService) VerifyRefreshToken(ctx context.Context, raw string) (*domain.RefreshToken, error) {
	token, err := s.tokens.FindByHash(ctx, HashRefreshToken(raw))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if token.IsRevoked {
		return nil, domain.ErrInvalidToken
	}
	if token.Expired(s.now().UTC()) {
		_ = s.tokens.Delete(ctx, token.ID)
		return nil, domain.ErrTokenExpired
	}
	return token, nil
}

// RotateRefreshToken revokes a token as a conditional update. When two
// callers race on the same token, exactly one sees an affected row; the other
// gets ErrInvalidToken.
func (s *TokenService) RotateRefreshToken(ctx context.Context, id string) error {
	affected, err := s.tokens.Revoke(ctx, id)
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	if affected == 0 {
		return domain.ErrInvalidToken
	}
	return nil
}

// HashRefreshToken is the one-way commitment applied before a refresh token
// value touches the store.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
