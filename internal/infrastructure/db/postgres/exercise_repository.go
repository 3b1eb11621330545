package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

type ExerciseRepository struct {
	db *DB
}

func NewExerciseRepository(db *DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

const (
	qExerciseCols = `
exercise_id, name, description, COALESCE(instructions, ''), difficulty,
is_standard, created_by_user_id, COALESCE(video_url, ''), COALESCE(image_url, '')`

	qExerciseByID = `
SELECT ` + qExerciseCols + `
FROM exercises
WHERE exercise_id = $1;`

	qExerciseMuscleGroups = `
SELECT mg.muscle_group_id, mg.name, COALESCE(mg.description, ''), mg.body_region, emg.is_primary
FROM exercise_muscle_groups emg
JOIN muscle_groups mg ON mg.muscle_group_id = emg.muscle_group_id
WHERE emg.exercise_id = $1
ORDER BY emg.is_primary DESC, mg.name;`

	qExerciseKnowledge = `
SELECT content, COALESCE(source, '')
FROM exercise_knowledge
WHERE exercise_id = $1;`

	qMuscleGroupByID = `
SELECT muscle_group_id, name, COALESCE(description, ''), body_region
FROM muscle_groups
WHERE muscle_group_id = $1;`

	qExerciseIDsForMuscleGroup = `
SELECT DISTINCT exercise_id
FROM exercise_muscle_groups
WHERE muscle_group_id = $1;`

	qMuscleGroupsAll = `
SELECT muscle_group_id, name, COALESCE(description, ''), body_region
FROM muscle_groups
ORDER BY body_region, name;`
)

func (r *ExerciseRepository) List(ctx context.Context, filter ports.ExerciseFilter) ([]domain.Exercise, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + qExerciseCols + ` FROM exercises`
	args := []any{}
	if filter.Difficulty != "" {
		query += ` WHERE difficulty = $1`
		args = append(args, filter.Difficulty)
	}
	query += ` ORDER BY name;`

	rows, err := r.db.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var out []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := scanExercise(rows, &e); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExerciseRepository) FindByID(ctx context.Context, id string) (*domain.Exercise, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var e domain.Exercise
	if err := scanExercise(r.db.querier(ctx).QueryRow(ctx, qExerciseByID, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("find exercise: %w", err)
	}
	return &e, nil
}

func (r *ExerciseRepository) MuscleGroupsFor(ctx context.Context, exerciseID string) ([]domain.ExerciseMuscleGroup, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.querier(ctx).Query(ctx, qExerciseMuscleGroups, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("muscle groups for exercise: %w", err)
	}
	defer rows.Close()

	out := []domain.ExerciseMuscleGroup{}
	for rows.Next() {
		var g domain.ExerciseMuscleGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.BodyRegion, &g.IsPrimary); err != nil {
			return nil, fmt.Errorf("scan muscle group link: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *ExerciseRepository) KnowledgeFor(ctx context.Context, exerciseID string) (*domain.ExerciseKnowledge, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var k domain.ExerciseKnowledge
	err := r.db.querier(ctx).QueryRow(ctx, qExerciseKnowledge, exerciseID).Scan(&k.Content, &k.Source)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("knowledge for exercise: %w", err)
	}
	return &k, nil
}

func (r *ExerciseRepository) FindMuscleGroup(ctx context.Context, id string) (*domain.MuscleGroup, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var g domain.MuscleGroup
	err := r.db.querier(ctx).QueryRow(ctx, qMuscleGroupByID, id).
		Scan(&g.ID, &g.Name, &g.Description, &g.BodyRegion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMuscleGroupNotFound
		}
		return nil, fmt.Errorf("find muscle group: %w", err)
	}
	return &g, nil
}

func (r *ExerciseRepository) ExerciseIDsForMuscleGroup(ctx context.Context, muscleGroupID string) ([]string, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.querier(ctx).Query(ctx, qExerciseIDsForMuscleGroup, muscleGroupID)
	if err != nil {
		return nil, fmt.Errorf("exercise ids for muscle group: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan exercise id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ExerciseRepository) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.querier(ctx).Query(ctx, qMuscleGroupsAll)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	var out []domain.MuscleGroup
	for rows.Next() {
		var g domain.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.BodyRegion); err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanExercise(row pgx.Row, out *domain.Exercise) error {
	return row.Scan(&out.ID, &out.Name, &out.Description, &out.Instructions,
		&out.Difficulty, &out.IsStandard, &out.CreatedByUserID, &out.VideoURL, &out.ImageURL)
}
