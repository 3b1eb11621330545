package domain

import "time"

// Gender values accepted on profile setup.
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer_not_to_say"
)

// Fitness levels accepted on profile setup.
const (
	FitnessBeginner     = "beginner"
	FitnessIntermediate = "intermediate"
	FitnessAdvanced     = "advanced"
	FitnessExpert       = "expert"
)

// UserProfile holds the optional fitness profile a user fills in after
// sign-up. All fields except the owning id are nullable until setup runs.
type UserProfile struct {
	UserID                   string         `json:"user_id"`
	FirstName                *string        `json:"first_name"`
	LastName                 *string        `json:"last_name"`
	DateOfBirth              *time.Time     `json:"date_of_birth"`
	Gender                   *string        `json:"gender"`
	HeightCm                 *float64       `json:"height"`
	WeightKg                 *float64       `json:"weight"`
	FitnessLevel             *string        `json:"fitness_level"`
	PrimaryGoal              *string        `json:"primary_goal"`
	Preferences              map[string]any `json:"preferences,omitempty"`
	SetupCompleted           bool           `json:"setup_completed"`
	PreferredWorkoutDuration *int           `json:"preferred_workout_duration"`
	WorkoutFrequency         *int           `json:"workout_frequency"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
}

// ProfileView is the combined account + subscription + profile payload served
// by GET /users/profile.
type ProfileView struct {
	UserID      string       `json:"user_id"`
	Email       string       `json:"email"`
	IsActive    bool         `json:"is_active"`
	Entitlement Entitlement  `json:"subscription"`
	Profile     *UserProfile `json:"profile,omitempty"`
	CreatedAt   time.Time    `json:"account_created_at"`
	LastLogin   *time.Time   `json:"last_login,omitempty"`
}
