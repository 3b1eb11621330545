package service

import (
	"context"
	"fmt"

	"github.com/fitstack/gym-api/internal/core/ports"
)

// LastLoginRecorder applies queued account activity to the user store.
type LastLoginRecorder struct {
	users ports.UserRepository
}

func NewLastLoginRecorder(users ports.UserRepository) *LastLoginRecorder {
	return &LastLoginRecorder{users: users}
}

func (r *LastLoginRecorder) Record(ctx context.Context, activity ports.AccountActivity) error {
	if err := r.users.UpdateLastLogin(ctx, activity.UserID, activity.LoginAt); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
