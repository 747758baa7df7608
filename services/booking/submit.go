package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "consultly/database/repository/booking"
	consultantRepo "consultly/database/repository/consultant"
	"consultly/models"
	"consultly/services/payment"
	"consultly/services/planner"
	"consultly/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit books the slot starting at sub.StartAt. Free bookings are confirmed
// on the spot; paid ones wait on the returned payment order.
func (s *DefaultBookingService) Submit(ctx context.Context, sub models.BookingSubmission) (*models.BookingResult, error) {
	now := s.now()
	return s.submit(ctx, sub, now)
}

func (s *DefaultBookingService) submit(ctx context.Context, sub models.BookingSubmission, now time.Time) (*models.BookingResult, error) {
	if sub.SessionType == "" {
		sub.SessionType = models.SessionTypeVideo
	}
	if sub.SessionType != models.SessionTypeVideo && sub.SessionType != models.SessionTypeChat {
		return nil, ErrInvalidSession
	}
	if err := planner.CheckLeadTime(sub.StartAt, now); err != nil {
		return nil, err
	}

	avail, err := s.Consultants.GetAvailability(ctx, sub.ConsultantID)
	if err != nil {
		if errors.Is(err, consultantRepo.ErrNotFound) {
			return nil, ErrConsultantNotFound
		}
		return nil, fmt.Errorf("load consultant availability: %w", err)
	}

	slot, err := s.locateSlot(avail, sub.StartAt, now)
	if err != nil {
		return nil, err
	}

	trialEligible := false
	if sub.DurationMinutes == planner.DurationFreeTrial {
		user, err := s.Users.GetByID(ctx, sub.UserID)
		if err != nil {
			return nil, fmt.Errorf("load user: %w", err)
		}
		trialEligible = !user.FreeTrial.Used(sub.SessionType)
	}
	fee, err := planner.ResolveFee(avail.SessionFeeBase, sub.DurationMinutes, trialEligible)
	if err != nil {
		return nil, err
	}

	currency := avail.Currency
	if currency == "" {
		currency = s.Currency
	}
	status := models.BookingStatusConfirmed
	if fee > 0 {
		status = models.BookingStatusPendingPayment
	}
	booking := &models.Booking{
		ID:              uuid.New().String(),
		ConsultantID:    sub.ConsultantID,
		UserID:          sub.UserID,
		Date:            slot.Start.Format(planner.DateLayout),
		SlotID:          slot.SlotID,
		StartAt:         slot.Start,
		DurationMinutes: sub.DurationMinutes,
		SessionType:     sub.SessionType,
		Notes:           sub.Notes,
		Fee:             fee,
		Currency:        currency,
		FreeTrial:       sub.DurationMinutes == planner.DurationFreeTrial,
		Status:          status,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("persist booking: %w", err)
	}
	s.Cache.Invalidate(ctx, booking.ConsultantID, booking.Date)

	result := &models.BookingResult{
		BookingID: booking.ID,
		Status:    booking.Status,
		Fee:       fee,
		Currency:  currency,
	}

	if fee > 0 {
		order, err := s.Payments.CreateOrder(ctx, models.PaymentRequest{
			BookingID:   booking.ID,
			UserID:      booking.UserID,
			Amount:      fee,
			Currency:    currency,
			Description: fmt.Sprintf("%d minute %s consultation on %s at %s", booking.DurationMinutes, booking.SessionType, booking.Date, booking.SlotID),
			Metadata:    map[string]string{"consultantId": booking.ConsultantID},
		})
		if err != nil {
			s.release(ctx, booking)
			return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}
		if err := s.Bookings.AttachPaymentOrder(ctx, booking.ID, order.OrderID); err != nil {
			s.Logger.Error("Failed to record payment order on booking",
				zap.String("bookingId", booking.ID), zap.String("orderId", order.OrderID), zap.Error(err))
		}
		result.PaymentRequired = true
		result.PaymentOrder = order
		s.Logger.Info("Booking awaiting payment", zap.String("bookingId", booking.ID), zap.Float64("fee", fee))
		return result, nil
	}

	if booking.FreeTrial {
		if err := s.Users.MarkFreeTrialUsed(ctx, booking.UserID, booking.SessionType); err != nil {
			s.Logger.Error("Failed to mark free trial used",
				zap.String("userId", booking.UserID), zap.String("sessionType", booking.SessionType), zap.Error(err))
		}
	}
	s.scheduleReminder(ctx, booking, now)
	s.Logger.Info("Booking confirmed", zap.String("bookingId", booking.ID), zap.Bool("freeTrial", booking.FreeTrial))
	return result, nil
}

// locateSlot checks that start falls on an allowed weekday and exactly on
// one of the day's generated slots.
func (s *DefaultBookingService) locateSlot(avail *models.ConsultantAvailability, start, now time.Time) (models.TimeSlot, error) {
	local := start.In(s.loc())
	set := planner.NormalizeWeekdays(avail.WeeklyDays)
	if !set.Allows(local.Weekday()) {
		return models.TimeSlot{}, ErrSlotUnavailable
	}
	slots := planner.GenerateSlots(local, planner.ResolveHoursPerDay(avail.AvailableHoursPerDay), now)
	slot, ok := planner.FindSlot(slots, local.Format("15:04"))
	if !ok || !slot.Start.Equal(start) {
		return models.TimeSlot{}, ErrSlotUnavailable
	}
	return slot, nil
}

// release cancels a booking whose payment order could not be opened so the
// slot frees up again.
func (s *DefaultBookingService) release(ctx context.Context, booking *models.Booking) {
	if err := s.Bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled); err != nil {
		s.Logger.Error("Failed to release booking after payment error", zap.String("bookingId", booking.ID), zap.Error(err))
	}
	s.Cache.Invalidate(ctx, booking.ConsultantID, booking.Date)
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, booking *models.Booking, now time.Time) {
	if s.Reminders == nil {
		return
	}
	payload := models.ReminderPayload{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		ConsultantID: booking.ConsultantID,
		StartAt:      booking.StartAt,
		Title:        "Your consultation starts soon",
		Body:         fmt.Sprintf("Your %s session starts at %s.", booking.SessionType, booking.StartAt.In(s.loc()).Format("3:04 PM")),
	}
	fireAt := tasks.ReminderFireAt(booking.StartAt, now, s.ReminderLead)
	if err := s.Reminders.ScheduleReminder(ctx, payload, fireAt); err != nil {
		s.Logger.Warn("Failed to schedule reminder", zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// ConfirmPayment confirms a pending booking once its payment order succeeded.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.BookingResult, error) {
	now := s.now()

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}

	result := &models.BookingResult{
		BookingID: booking.ID,
		Status:    booking.Status,
		Fee:       booking.Fee,
		Currency:  booking.Currency,
	}
	if booking.Status != models.BookingStatusPendingPayment {
		return result, nil
	}

	status, err := s.Payments.OrderStatus(ctx, booking.PaymentOrderID)
	if err != nil {
		return nil, fmt.Errorf("read payment status: %w", err)
	}
	if status != payment.StatusSucceeded {
		return nil, fmt.Errorf("%w (status %s)", ErrPaymentPending, status)
	}

	if err := s.Bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed); err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	booking.Status = models.BookingStatusConfirmed
	s.scheduleReminder(ctx, booking, now)
	s.Logger.Info("Payment confirmed", zap.String("bookingId", booking.ID))

	result.Status = booking.Status
	return result, nil
}
