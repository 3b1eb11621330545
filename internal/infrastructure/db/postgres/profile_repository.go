package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const (
	qProfileCols = `
user_id, first_name, last_name, date_of_birth, gender, height, weight,
fitness_level, primary_goal, preferences, setup_completed,
preferred_workout_duration, workout_frequency, created_at, updated_at`

	qProfileByUser = `
SELECT ` + qProfileCols + `
FROM user_profiles
WHERE user_id = $1;`

	qProfileUpsertBasic = `
INSERT INTO user_profiles (user_id, first_name, last_name, date_of_birth, gender, height, weight)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
    first_name    = EXCLUDED.first_name,
    last_name     = EXCLUDED.last_name,
    date_of_birth = EXCLUDED.date_of_birth,
    gender        = EXCLUDED.gender,
    height        = EXCLUDED.height,
    weight        = EXCLUDED.weight,
    updated_at    = NOW()
RETURNING ` + qProfileCols + `;`

	qProfileUpsertFitness = `
INSERT INTO user_profiles (user_id, fitness_level, primary_goal,
    preferred_workout_duration, workout_frequency, setup_completed)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (user_id) DO UPDATE SET
    fitness_level              = EXCLUDED.fitness_level,
    primary_goal               = EXCLUDED.primary_goal,
    preferred_workout_duration = EXCLUDED.preferred_workout_duration,
    workout_frequency          = EXCLUDED.workout_frequency,
    setup_completed            = TRUE,
    updated_at                 = NOW()
RETURNING ` + qProfileCols + `;`
)

// FindByUserID returns nil without error when the user has not set up a
// profile yet.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var p domain.UserProfile
	if err := scanProfile(r.db.querier(ctx).QueryRow(ctx, qProfileByUser, userID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpsertBasic(ctx context.Context, userID string, in ports.BasicProfileInput) (*domain.UserProfile, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var p domain.UserProfile
	row := r.db.querier(ctx).QueryRow(ctx, qProfileUpsertBasic,
		userID, in.FirstName, in.LastName, in.DateOfBirth, in.Gender, in.HeightCm, in.WeightKg)
	if err := scanProfile(row, &p); err != nil {
		return nil, fmt.Errorf("upsert basic profile: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpsertFitness(ctx context.Context, userID string, in ports.FitnessProfileInput) (*domain.UserProfile, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var p domain.UserProfile
	row := r.db.querier(ctx).QueryRow(ctx, qProfileUpsertFitness,
		userID, in.FitnessLevel, in.PrimaryGoal, in.PreferredWorkoutDuration, in.WorkoutFrequency)
	if err := scanProfile(row, &p); err != nil {
		return nil, fmt.Errorf("upsert fitness profile: %w", err)
	}
	return &p, nil
}

func scanProfile(row pgx.Row, out *domain.UserProfile) error {
	return row.Scan(&out.UserID, &out.FirstName, &out.LastName, &out.DateOfBirth,
		&out.Gender, &out.HeightCm, &out.WeightKg, &out.FitnessLevel, &out.PrimaryGoal,
		&out.Preferences, &out.SetupCompleted, &out.PreferredWorkoutDuration,
		&out.WorkoutFrequency, &out.CreatedAt, &out.UpdatedAt)
}
