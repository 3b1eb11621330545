package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("account inactive")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrMuscleGroupNotFound = errors.New("muscle group not found")
)
