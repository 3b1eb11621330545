package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

// ExerciseService serves the read-only exercise catalog. Detail and taxonomy
// reads go through an optional cache; cache failures fall back to the store.
type ExerciseService struct {
	repo  ports.ExerciseRepository
	cache ports.CatalogCache
}

func NewExerciseService(repo ports.ExerciseRepository, cache ports.CatalogCache) *ExerciseService {
	return &ExerciseService{repo: repo, cache: cache}
}

func (s *ExerciseService) GetExercises(ctx context.Context, filter ports.ExerciseFilter) ([]domain.Exercise, error) {
	exercises, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (s *ExerciseService) GetExerciseByID(ctx context.Context, id string) (*domain.ExerciseDetail, error) {
	if s.cache != nil {
		if detail, err := s.cache.GetExerciseDetail(ctx, id); err == nil && detail != nil {
			return detail, nil
		}
	}

	detail, err := s.loadDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetExerciseDetail(ctx, detail)
	}
	return detail, nil
}

func (s *ExerciseService) GetExercisesByMuscleGroup(ctx context.Context, muscleGroupID string) ([]domain.ExerciseDetail, error) {
	if _, err := s.repo.FindMuscleGroup(ctx, muscleGroupID); err != nil {
		if errors.Is(err, domain.ErrMuscleGroupNotFound) {
			return nil, domain.ErrMuscleGroupNotFound
		}
		return nil, fmt.Errorf("lookup muscle group: %w", err)
	}

	ids, err := s.repo.ExerciseIDsForMuscleGroup(ctx, muscleGroupID)
	if err != nil {
		return nil, fmt.Errorf("list exercises for muscle group: %w", err)
	}

	details := make([]domain.ExerciseDetail, 0, len(ids))
	for _, id := range ids {
		detail, err := s.GetExerciseByID(ctx, id)
		if err != nil {
			// A row deleted between the id listing and the detail read is
			// skipped rather than failing the whole listing.
			if errors.Is(err, domain.ErrExerciseNotFound) {
				continue
			}
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *ExerciseService) GetMuscleGroupsByRegion(ctx context.Context) ([]domain.MuscleGroupRegion, error) {
	if s.cache != nil {
		if regions, err := s.cache.GetMuscleGroupRegions(ctx); err == nil && regions != nil {
			return regions, nil
		}
	}

	groups, err := s.repo.ListMuscleGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}

	// Rows arrive ordered by region then name; fold consecutive rows of the
	// same region together.
	regions := make([]domain.MuscleGroupRegion, 0)
	for _, g := range groups {
		if n := len(regions); n > 0 && regions[n-1].Region == g.BodyRegion {
			regions[n-1].MuscleGroups = append(regions[n-1].MuscleGroups, g)
			continue
		}
		regions = append(regions, domain.MuscleGroupRegion{
			Region:       g.BodyRegion,
			MuscleGroups: []domain.MuscleGroup{g},
		})
	}

	if s.cache != nil {
		_ = s.cache.SetMuscleGroupRegions(ctx, regions)
	}
	return regions, nil
}

func (s *ExerciseService) loadDetail(ctx context.Context, id string) (*domain.ExerciseDetail, error) {
	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrExerciseNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}

	groups, err := s.repo.MuscleGroupsFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("muscle groups for exercise: %w", err)
	}

	knowledge, err := s.repo.KnowledgeFor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("knowledge for exercise: %w", err)
	}

	return &domain.ExerciseDetail{
		Exercise:     *exercise,
		MuscleGroups: groups,
		Knowledge:    knowledge,
	}, nil
}
