package bookingRepo

import (
	"context"
	"errors"

	"consultly/models"
)

var (
	// ErrNotFound is returned when no booking matches the given ID.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken is returned when a live booking already holds the slot.
	ErrSlotTaken = errors.New("slot already booked")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a booking, failing with ErrSlotTaken if the slot is held.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// BookedMarkers lists slot IDs held by live bookings on a date.
	BookedMarkers(ctx context.Context, consultantID, date string) ([]string, error)
	// UpdateStatus moves a booking to status. Cancelling releases its slot.
	UpdateStatus(ctx context.Context, id, status string) error
	// AttachPaymentOrder records the gateway order opened for a booking.
	AttachPaymentOrder(ctx context.Context, id, orderID string) error
	EnsureIndexes(ctx context.Context) error
}

// SlotKey identifies a consultant's slot on a date.
func SlotKey(consultantID, date, slotID string) string {
	return consultantID + "|" + date + "|" + slotID
}
