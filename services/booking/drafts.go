package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	consultantRepo "consultly/database/repository/consultant"
	draftRepo "consultly/database/repository/draft"
	"consultly/models"
	"consultly/services/planner"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateDraft opens an empty draft for a client and consultant.
func (s *DefaultBookingService) CreateDraft(ctx context.Context, userID, consultantID, sessionType string) (*models.BookingDraft, error) {
	if sessionType == "" {
		sessionType = models.SessionTypeVideo
	}
	if !validSession(sessionType) {
		return nil, ErrInvalidSession
	}
	if _, err := s.Consultants.GetAvailability(ctx, consultantID); err != nil {
		if errors.Is(err, consultantRepo.ErrNotFound) {
			return nil, ErrConsultantNotFound
		}
		return nil, fmt.Errorf("load consultant availability: %w", err)
	}

	now := s.now()
	draft := &models.BookingDraft{
		ID:           uuid.New().String(),
		UserID:       userID,
		ConsultantID: consultantID,
		SessionType:  sessionType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	s.Logger.Debug("Booking draft created", zap.String("draftId", draft.ID), zap.String("userId", userID))
	return draft, nil
}

// UpdateDraft applies the non-nil fields of update.
func (s *DefaultBookingService) UpdateDraft(ctx context.Context, userID, draftID string, update models.DraftUpdate) (*models.BookingDraft, error) {
	draft, err := s.ownedDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Submitted {
		return nil, ErrDraftSubmitted
	}

	if update.SessionType != nil {
		if !validSession(*update.SessionType) {
			return nil, ErrInvalidSession
		}
		draft.SessionType = *update.SessionType
	}
	if update.DurationMinutes != nil {
		if _, err := planner.ResolveFee(0, *update.DurationMinutes, true); err != nil {
			return nil, err
		}
		draft.DurationMinutes = *update.DurationMinutes
	}
	if update.Date != nil {
		if _, err := planner.ParseDate(*update.Date, s.loc()); err != nil {
			return nil, planner.ErrInvalidDate
		}
		if *update.Date != draft.Date {
			// A slot only makes sense on the date it was picked for.
			draft.SlotID = ""
		}
		draft.Date = *update.Date
	}
	if update.SlotID != nil {
		if _, err := time.Parse("15:04", *update.SlotID); err != nil {
			return nil, ErrSlotUnavailable
		}
		draft.SlotID = *update.SlotID
	}
	if update.Notes != nil {
		draft.Notes = *update.Notes
	}
	draft.UpdatedAt = s.now()

	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// SubmitDraft books the draft's selection and freezes the draft.
func (s *DefaultBookingService) SubmitDraft(ctx context.Context, userID, draftID string) (*models.BookingResult, error) {
	now := s.now()

	draft, err := s.ownedDraft(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Submitted {
		return nil, ErrDraftSubmitted
	}
	if draft.Date == "" || draft.SlotID == "" || draft.DurationMinutes == 0 {
		return nil, ErrDraftIncomplete
	}

	startAt, err := slotStart(draft.Date, draft.SlotID, s.loc())
	if err != nil {
		return nil, err
	}

	result, err := s.submit(ctx, models.BookingSubmission{
		ConsultantID:    draft.ConsultantID,
		UserID:          draft.UserID,
		StartAt:         startAt,
		DurationMinutes: draft.DurationMinutes,
		SessionType:     draft.SessionType,
		Notes:           draft.Notes,
	}, now)
	if err != nil {
		return nil, err
	}

	draft.Submitted = true
	draft.BookingID = result.BookingID
	draft.UpdatedAt = now
	if err := s.Drafts.Save(ctx, draft); err != nil {
		s.Logger.Warn("Failed to freeze submitted draft", zap.String("draftId", draft.ID), zap.Error(err))
	}
	return result, nil
}

// CancelDraft discards a draft.
func (s *DefaultBookingService) CancelDraft(ctx context.Context, userID, draftID string) error {
	if _, err := s.ownedDraft(ctx, userID, draftID); err != nil {
		return err
	}
	if err := s.Drafts.Delete(ctx, draftID); err != nil {
		if errors.Is(err, draftRepo.ErrNotFound) {
			return ErrDraftNotFound
		}
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) ownedDraft(ctx context.Context, userID, draftID string) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if draft.UserID != userID {
		return nil, ErrNotOwner
	}
	return draft, nil
}

func validSession(t string) bool {
	return t == models.SessionTypeVideo || t == models.SessionTypeChat
}

// slotStart combines a YYYY-MM-DD date and an HH:MM slot into an instant in loc.
func slotStart(date, slotID string, loc *time.Location) (time.Time, error) {
	day, err := planner.ParseDate(date, loc)
	if err != nil {
		return time.Time{}, planner.ErrInvalidDate
	}
	hm, err := time.Parse("15:04", slotID)
	if err != nil {
		return time.Time{}, ErrSlotUnavailable
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc), nil
}
