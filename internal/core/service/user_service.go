package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

// UserService serves the combined profile view and the profile-setup steps.
type UserService struct {
	users        ports.UserRepository
	entitlements ports.EntitlementSource
	profiles     ports.ProfileRepository
}

func NewUserService(users ports.UserRepository, entitlements ports.EntitlementSource, profiles ports.ProfileRepository) *UserService {
	return &UserService{users: users, entitlements: entitlements, profiles: profiles}
}

// GetProfile joins account, subscription snapshot and fitness profile. A
// missing profile is not an error; the view simply omits it.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ent, err := s.entitlements.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("entitlement lookup: %w", err)
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup profile: %w", err)
	}

	return &domain.ProfileView{
		UserID:      user.ID,
		Email:       user.Email,
		IsActive:    user.IsActive,
		Entitlement: ent,
		Profile:     profile,
		CreatedAt:   user.CreatedAt,
		LastLogin:   user.LastLogin,
	}, nil
}

func (s *UserService) SetupBasicProfile(ctx context.Context, userID string, in ports.BasicProfileInput) (*domain.UserProfile, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	profile, err := s.profiles.UpsertBasic(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("upsert basic profile: %w", err)
	}
	return profile, nil
}

func (s *UserService) SetupFitnessProfile(ctx context.Context, userID string, in ports.FitnessProfileInput) (*domain.UserProfile, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	profile, err := s.profiles.UpsertFitness(ctx, userID, in)
	if err != nil {
		return nil, fmt.Errorf("upsert fitness profile: %w", err)
	}
	return profile, nil
}
