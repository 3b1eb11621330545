package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

// AuthService orchestrates sign-up, login and refresh-token rotation.
//
// Unknown email and wrong password both surface as ErrInvalidCredentials so
// responses cannot be used to enumerate accounts.
type AuthService struct {
	users        ports.UserRepository
	entitlements ports.EntitlementSource
	tokens       ports.TokenService
	hasher       ports.PasswordHasher
	tx           ports.Transactor
	activity     ports.ActivitySink
}

func NewAuthService(
	users ports.UserRepository,
	entitlements ports.EntitlementSource,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
	tx ports.Transactor,
	activity ports.ActivitySink,
) *AuthService {
	return &AuthService{
		users:        users,
		entitlements: entitlements,
		tokens:       tokens,
		hasher:       hasher,
		tx:           tx,
		activity:     activity,
	}
}

// SignUp registers a new account. The user row and its first refresh token
// are written in one transaction: a user either appears with working
// credentials or not at all.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var (
		user    *domain.User
		access  string
		refresh *domain.RefreshToken
		raw     string
	)
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		u, err := s.users.Create(ctx, email, hash)
		if err != nil {
			return err
		}
		token, value, err := s.tokens.IssueRefreshToken(ctx, u.ID)
		if err != nil {
			return err
		}
		signed, err := s.tokens.IssueAccessToken(domain.AccessClaims{
			UserID:   u.ID,
			Email:    u.Email,
			IsActive: u.IsActive,
		})
		if err != nil {
			return err
		}
		user, access, refresh, raw = u, signed, token, value
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &ports.AuthResult{
		UserID: user.ID,
		Email:  user.Email,
		TokenPair: domain.TokenPair{
			AccessToken:      access,
			RefreshToken:     raw,
			RefreshExpiresAt: refresh.ExpiresAt,
		},
	}, nil
}

// Login verifies credentials and issues a fresh token pair carrying the
// current entitlement snapshot. The last-login touch is queued best-effort
// and never fails the login.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	ent, err := s.entitlements.ForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("entitlement lookup: %w", err)
	}

	result, err := s.issuePair(ctx, user, ent)
	if err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.AccountActivity{UserID: user.ID, LoginAt: time.Now().UTC()})
	}
	return result, nil
}

// Refresh rotates a refresh token. The presented token is revoked before the
// replacement pair is issued, so concurrent callers can never both succeed;
// an inactive owner still loses the token, which is the forced-logout path.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	token, err := s.tokens.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.RotateRefreshToken(ctx, token.ID); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	ent, err := s.entitlements.ForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("entitlement lookup: %w", err)
	}

	return s.issuePair(ctx, user, ent)
}

func (s *AuthService) issuePair(ctx context.Context, user *domain.User, ent domain.Entitlement) (*ports.AuthResult, error) {
	access, err := s.tokens.IssueAccessToken(domain.AccessClaims{
		UserID:      user.ID,
		Email:       user.Email,
		IsActive:    user.IsActive,
		Entitlement: &ent,
	})
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refresh, raw, err := s.tokens.IssueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &ports.AuthResult{
		UserID:      user.ID,
		Email:       user.Email,
		Entitlement: &ent,
		TokenPair: domain.TokenPair{
			AccessToken:      access,
			RefreshToken:     raw,
			RefreshExpiresAt: refresh.ExpiresAt,
		},
	}, nil
}
