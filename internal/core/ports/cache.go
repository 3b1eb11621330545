package ports

import (
	"context"

	"github.com/fitstack/gym-api/internal/core/domain"
)

// CatalogCache is a read-through cache for the exercise catalog. A (nil, nil)
// return means a miss; errors are treated as misses by callers so a cache
// outage never takes down catalog reads.
type CatalogCache interface {
	GetExerciseDetail(ctx context.Context, id string) (*domain.ExerciseDetail, error)
	SetExerciseDetail(ctx context.Context, detail *domain.ExerciseDetail) error
	GetMuscleGroupRegions(ctx context.Context) ([]domain.MuscleGroupRegion, error)
	SetMuscleGroupRegions(ctx context.Context, regions []domain.MuscleGroupRegion) error
}

// ActivitySink accepts account-activity events for asynchronous processing.
type ActivitySink interface {
	Enqueue(activity AccountActivity)
}
