package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/gym-api/internal/core/domain"
	"github.com/fitstack/gym-api/internal/core/ports"
)

type ExerciseHandler struct {
	exerciseService ports.ExerciseService
}

func NewExerciseHandler(exerciseService ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// List returns the catalog, optionally filtered by difficulty.
func (h *ExerciseHandler) List(c echo.Context) error {
	difficulty := c.QueryParam("difficulty")
	switch difficulty {
	case "", domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "difficulty must be one of: beginner, intermediate, advanced")
	}

	exercises, err := h.exerciseService.GetExercises(c.Request().Context(), ports.ExerciseFilter{Difficulty: difficulty})
	if err != nil {
		return err
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return c.JSON(http.StatusOK, exercises)
}

// Get returns one exercise with its muscle groups and coaching content.
func (h *ExerciseHandler) Get(c echo.Context) error {
	detail, err := h.exerciseService.GetExerciseByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// ByMuscleGroup returns all exercises training the given muscle group.
func (h *ExerciseHandler) ByMuscleGroup(c echo.Context) error {
	details, err := h.exerciseService.GetExercisesByMuscleGroup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// MuscleGroups returns the taxonomy grouped by body region.
func (h *ExerciseHandler) MuscleGroups(c echo.Context) error {
	regions, err := h.exerciseService.GetMuscleGroupsByRegion(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]domain.MuscleGroupRegion{"regions": regions})
}
