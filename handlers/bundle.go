package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Consultant availability
	GetAvailabilityHandler    gin.HandlerFunc
	UpdateAvailabilityHandler gin.HandlerFunc

	// Planner queries
	GetDatesHandler     gin.HandlerFunc
	GetCalendarHandler  gin.HandlerFunc
	GetSlotsHandler     gin.HandlerFunc
	GetBookedHandler    gin.HandlerFunc
	GetDurationsHandler gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler  gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc
	CreateDraftHandler    gin.HandlerFunc
	UpdateDraftHandler    gin.HandlerFunc
	SubmitDraftHandler    gin.HandlerFunc
	CancelDraftHandler    gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires handler methods into the bundle.
func NewHandlerBundle(p *PlannerHandler, b *BookingHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		GetAvailabilityHandler:    p.GetAvailability,
		UpdateAvailabilityHandler: p.UpdateAvailability,

		GetDatesHandler:     p.GetDates,
		GetCalendarHandler:  p.GetCalendar,
		GetSlotsHandler:     p.GetSlots,
		GetBookedHandler:    p.GetBooked,
		GetDurationsHandler: p.GetDurations,

		SubmitBookingHandler:  b.SubmitBooking,
		ConfirmPaymentHandler: b.ConfirmPayment,
		CreateDraftHandler:    b.CreateDraft,
		UpdateDraftHandler:    b.UpdateDraft,
		SubmitDraftHandler:    b.SubmitDraft,
		CancelDraftHandler:    b.CancelDraft,

		HealthHandler: health.Health,
	}
}
