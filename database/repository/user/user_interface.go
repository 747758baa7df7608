package userRepo

import (
	"context"
	"errors"

	"consultly/models"
)

// ErrNotFound is returned when no user matches the given ID.
var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// MarkFreeTrialUsed flags the free trial for sessionType as consumed.
	MarkFreeTrialUsed(ctx context.Context, id, sessionType string) error
	EnsureIndexes(ctx context.Context) error
}
