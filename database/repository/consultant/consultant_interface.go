package consultantRepo

import (
	"context"
	"errors"

	"consultly/models"
)

// ErrNotFound is returned when no consultant matches the given ID.
var ErrNotFound = errors.New("consultant not found")

// ConsultantRepository defines methods for consultant data access.
type ConsultantRepository interface {
	// GetAvailability returns only the availability sub-document.
	GetAvailability(ctx context.Context, id string) (*models.ConsultantAvailability, error)
	// Create inserts a new consultant record.
	Create(ctx context.Context, consultant *models.Consultant) error
	// UpdateAvailability replaces a consultant's availability.
	UpdateAvailability(ctx context.Context, id string, availability models.ConsultantAvailability) error
	EnsureIndexes(ctx context.Context) error
}
