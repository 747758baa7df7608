package apiclient

import (
	"context"
	"time"

	"consultly/models"
	"consultly/services/planner"
)

// Browser tracks one client's walk through a consultant's calendar. Picking a
// new date supersedes any slot fetch still running for the previous one.
type Browser struct {
	Client       *Client
	ConsultantID string
	// Clock is read once per booking attempt. Defaults to time.Now.
	Clock func() time.Time

	slots planner.Selector[*models.SlotPlan]
}

// SelectDate fetches slots for date. If another date is selected before the
// fetch returns, this call fails with planner.ErrSuperseded.
func (b *Browser) SelectDate(ctx context.Context, date string) (*models.SlotPlan, error) {
	return b.slots.Select(ctx, date, func(ctx context.Context) (*models.SlotPlan, error) {
		return b.Client.Slots(ctx, b.ConsultantID, date)
	})
}

// SelectedDate is the most recent date passed to SelectDate.
func (b *Browser) SelectedDate() string {
	return b.slots.Current()
}

// Book submits slot after checking the lead time locally.
func (b *Browser) Book(ctx context.Context, slot models.TimeSlot, minutes int, sessionType, notes string) (*models.BookingResult, error) {
	now := time.Now()
	if b.Clock != nil {
		now = b.Clock()
	}
	if err := planner.CheckLeadTime(slot.Start, now); err != nil {
		return nil, err
	}
	res, err := b.Client.SubmitBooking(ctx, models.BookingSubmission{
		ConsultantID:    b.ConsultantID,
		StartAt:         slot.Start,
		DurationMinutes: minutes,
		SessionType:     sessionType,
		Notes:           notes,
	})
	if err != nil {
		return nil, err
	}
	b.slots.Reset()
	return res, nil
}
