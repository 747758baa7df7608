package booking

import (
	"context"
	"errors"
	"time"

	"consultly/models"
	"consultly/services/payment"
	"consultly/services/planner"
	"consultly/services/tasks"

	"go.uber.org/zap"
)

var (
	ErrConsultantNotFound = errors.New("consultant not found")
	ErrSlotUnavailable    = errors.New("selected slot is not offered by the consultant")
	ErrSlotTaken          = errors.New("selected slot has already been booked")
	ErrInvalidSession     = errors.New("session type must be video or chat")
	ErrPaymentFailed      = errors.New("could not open a payment order")
	ErrPaymentPending     = errors.New("payment has not completed")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotOwner           = errors.New("resource belongs to another user")
	ErrDraftNotFound      = errors.New("booking draft not found or expired")
	ErrDraftSubmitted     = errors.New("booking draft already submitted")
	ErrDraftIncomplete    = errors.New("booking draft is missing a date, slot or duration")
)

// BookingService books consultation slots, directly or through drafts.
type BookingService interface {
	Submit(ctx context.Context, sub models.BookingSubmission) (*models.BookingResult, error)
	ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.BookingResult, error)

	CreateDraft(ctx context.Context, userID, consultantID, sessionType string) (*models.BookingDraft, error)
	UpdateDraft(ctx context.Context, userID, draftID string, update models.DraftUpdate) (*models.BookingDraft, error)
	SubmitDraft(ctx context.Context, userID, draftID string) (*models.BookingResult, error)
	CancelDraft(ctx context.Context, userID, draftID string) error
}

// BookingStore is the persistence the service needs for bookings.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	AttachPaymentOrder(ctx context.Context, id, orderID string) error
}

// UserStore reads and updates free-trial state.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	MarkFreeTrialUsed(ctx context.Context, id, sessionType string) error
}

type DraftStore interface {
	Save(ctx context.Context, draft *models.BookingDraft) error
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// BookedCache is told when a consultant's date gains a booking.
type BookedCache interface {
	Invalidate(ctx context.Context, consultantID, date string)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Consultants planner.ConsultantSource
	Bookings    BookingStore
	Users       UserStore
	Drafts      DraftStore
	Cache       BookedCache
	Payments    payment.Gateway
	Reminders   tasks.ReminderScheduler

	Location     *time.Location
	Currency     string
	ReminderLead time.Duration
	Logger       *zap.Logger
	// Clock is read once per operation. Defaults to time.Now.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultBookingService) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
