package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitstack/gym-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type basicProfileRequest struct {
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	DateOfBirth string  `json:"date_of_birth" validate:"required"`
	Gender      string  `json:"gender" validate:"required,oneof=male female other prefer_not_to_say"`
	Height      float64 `json:"height" validate:"required,gte=100,lte=250"`
	Weight      float64 `json:"weight" validate:"required,gte=30,lte=300"`
}

type fitnessProfileRequest struct {
	FitnessLevel             string `json:"fitness_level" validate:"required,oneof=beginner intermediate advanced expert"`
	PrimaryGoal              string `json:"primary_goal" validate:"required,oneof=weight_loss muscle_gain endurance strength flexibility general_fitness sports_performance"`
	PreferredWorkoutDuration int    `json:"preferred_workout_duration" validate:"required,gte=10,lte=240"`
	WorkoutFrequency         int    `json:"workout_frequency" validate:"required,gte=1,lte=14"`
}

// Profile returns the combined account, subscription and fitness-profile view.
func (h *UserHandler) Profile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.userService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// SetupBasicProfile upserts name, birth date and body measurements.
func (h *UserHandler) SetupBasicProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req basicProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
	}

	profile, err := h.userService.SetupBasicProfile(c.Request().Context(), userID, ports.BasicProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Gender:      req.Gender,
		HeightCm:    req.Height,
		WeightKg:    req.Weight,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// SetupFitnessProfile upserts fitness level, goal and workout preferences,
// and marks setup complete.
func (h *UserHandler) SetupFitnessProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req fitnessProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.userService.SetupFitnessProfile(c.Request().Context(), userID, ports.FitnessProfileInput{
		FitnessLevel:             req.FitnessLevel,
		PrimaryGoal:              req.PrimaryGoal,
		PreferredWorkoutDuration: req.PreferredWorkoutDuration,
		WorkoutFrequency:         req.WorkoutFrequency,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}
