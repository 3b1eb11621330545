package ports

import (
	"context"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// AuthResult is the payload returned by every successful authentication flow.
type AuthResult struct {
	UserID      string              `json:"user_id"`
	Email       string              `json:"email"`
	Entitlement *domain.Entitlement `json:"subscription,omitempty"`
	domain.TokenPair
}

// AuthService orchestrates sign-up, login and refresh-token rotation.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// TokenService issues and verifies both halves of a token pair.
type TokenService interface {
	IssueAccessToken(claims domain.AccessClaims) (string, error)
	VerifyAccessToken(token string) (*domain.AccessClaims, error)
	IssueRefreshToken(ctx context.Context, userID string) (*domain.RefreshToken, string, error)
	VerifyRefreshToken(ctx context.Context, raw string) (*domain.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, id string) error
}

// PasswordHasher produces and verifies one-way salted password digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
