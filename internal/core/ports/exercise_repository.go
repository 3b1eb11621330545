package ports

import (
	"context"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// ExerciseFilter narrows catalog listings.
type ExerciseFilter struct {
	Difficulty string
}

// ExerciseRepository defines the interface for exercise catalog reads.
type ExerciseRepository interface {
	List(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	FindByID(ctx context.Context, id string) (*domain.Exercise, error)
	MuscleGroupsFor(ctx context.Context, exerciseID string) ([]domain.ExerciseMuscleGroup, error)
	KnowledgeFor(ctx context.Context, exerciseID string) (*domain.ExerciseKnowledge, error)
	FindMuscleGroup(ctx context.Context, id string) (*domain.MuscleGroup, error)
	ExerciseIDsForMuscleGroup(ctx context.Context, muscleGroupID string) ([]string, error)
	ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
}

// ExerciseService serves the read-only exercise catalog.
type ExerciseService interface {
	GetExercises(ctx context.Context, filter ExerciseFilter) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id string) (*domain.ExerciseDetail, error)
	GetExercisesByMuscleGroup(ctx context.Context, muscleGroupID string) ([]domain.ExerciseDetail, error)
	GetMuscleGroupsByRegion(ctx context.Context) ([]domain.MuscleGroupRegion, error)
}
