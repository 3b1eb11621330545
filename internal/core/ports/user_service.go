package ports

import (
	"context"
	"time"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// BasicProfileInput carries the first profile-setup step.
type BasicProfileInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	HeightCm    float64
	WeightKg    float64
}

// FitnessProfileInput carries the second profile-setup step.
type FitnessProfileInput struct {
	FitnessLevel             string
	PrimaryGoal              string
	PreferredWorkoutDuration int
	WorkoutFrequency         int
}

// ProfileRepository defines the interface for fitness-profile persistence.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	UpsertBasic(ctx context.Context, userID string, in BasicProfileInput) (*domain.UserProfile, error)
	UpsertFitness(ctx context.Context, userID string, in FitnessProfileInput) (*domain.UserProfile, error)
}

// UserService serves profile reads and the two profile-setup steps.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error)
	SetupBasicProfile(ctx context.Context, userID string, in BasicProfileInput) (*domain.UserProfile, error)
	SetupFitnessProfile(ctx context.Context, userID string, in FitnessProfileInput) (*domain.UserProfile, error)
}
