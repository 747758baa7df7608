package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"consultly/models"

	"go.uber.org/zap"
)

// ConsultantSource looks up a consultant's availability configuration.
type ConsultantSource interface {
	GetAvailability(ctx context.Context, consultantID string) (*models.ConsultantAvailability, error)
}

// BookedSlotSource lists "HH:MM" starts already taken on a date.
type BookedSlotSource interface {
	BookedMarkers(ctx context.Context, consultantID, date string) ([]string, error)
}

var ErrInvalidDate = errors.New("invalid date; expected YYYY-MM-DD")

// Planner turns a consultant's configuration into selectable dates and slots.
// Callers pass now explicitly so one interaction sees one clock reading.
type Planner struct {
	Consultants  ConsultantSource
	Booked       BookedSlotSource
	Location     *time.Location
	WindowDays   int
	FetchTimeout time.Duration
	Logger       *zap.Logger
}

func (p *Planner) loc() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

func (p *Planner) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *Planner) availability(ctx context.Context, consultantID string) (*models.ConsultantAvailability, WeekdaySet, error) {
	avail, err := p.Consultants.GetAvailability(ctx, consultantID)
	if err != nil {
		return nil, 0, fmt.Errorf("load availability for %s: %w", consultantID, err)
	}
	return avail, NormalizeWeekdays(avail.WeeklyDays), nil
}

// Dates returns the bookable days in the rolling window starting today.
func (p *Planner) Dates(ctx context.Context, consultantID string, now time.Time) ([]models.CandidateDate, error) {
	_, set, err := p.availability(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	n := p.WindowDays
	if n <= 0 {
		n = DefaultWindowDays
	}
	return RollingDates(now.In(p.loc()), set, n), nil
}

// Month returns the calendar grid for the month containing month.
func (p *Planner) Month(ctx context.Context, consultantID string, month, now time.Time) ([]models.CandidateDate, error) {
	_, set, err := p.availability(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	return CalendarMonth(month.In(p.loc()), now.In(p.loc()), set), nil
}

// Slots builds the slot list for date minus already-booked starts. A failed
// or slow booked-slot lookup does not block: the unfiltered list comes back
// with Degraded set and the server arbitrates conflicts at submission.
func (p *Planner) Slots(ctx context.Context, consultantID, date string, now time.Time) (*models.SlotPlan, error) {
	avail, set, err := p.availability(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	day, err := ParseDate(date, p.loc())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	plan := &models.SlotPlan{ConsultantID: consultantID, Date: date, Slots: []models.TimeSlot{}}
	if !set.Allows(day.Weekday()) {
		return plan, nil
	}
	slots := GenerateSlots(day, ResolveHoursPerDay(avail.AvailableHoursPerDay), now.In(p.loc()))
	if len(slots) == 0 {
		return plan, nil
	}

	booked, err := p.fetchBooked(ctx, consultantID, date)
	if err != nil {
		p.logger().Warn("booked slot lookup failed; serving unfiltered slots",
			zap.String("consultantID", consultantID),
			zap.String("date", date),
			zap.Error(err))
		plan.Degraded = true
		plan.Slots = slots
		return plan, nil
	}
	plan.Slots = FilterBooked(slots, booked)
	plan.BookedCount = len(slots) - len(plan.Slots)
	return plan, nil
}

func (p *Planner) fetchBooked(ctx context.Context, consultantID, date string) ([]string, error) {
	if p.Booked == nil {
		return nil, nil
	}
	if p.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.FetchTimeout)
		defer cancel()
	}

	type result struct {
		markers []string
		err     error
	}
	done := make(chan result, 1)
	go func() {
		markers, err := p.Booked.BookedMarkers(ctx, consultantID, date)
		done <- result{markers, err}
	}()

	// Sources that ignore ctx still lose the race against the deadline.
	select {
	case r := <-done:
		return r.markers, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
