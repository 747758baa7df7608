package handlers

import (
	"errors"
	"net/http"

	consultantRepo "consultly/database/repository/consultant"
	"consultly/services/booking"
	"consultly/services/planner"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrInvalidDate),
		errors.Is(err, planner.ErrUnsupportedDuration),
		errors.Is(err, booking.ErrInvalidSession),
		errors.Is(err, booking.ErrDraftIncomplete):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, consultantRepo.ErrNotFound),
		errors.Is(err, booking.ErrConsultantNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrDraftSubmitted):
		return http.StatusConflict
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, planner.ErrLeadTime),
		errors.Is(err, planner.ErrFreeTrialUsed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, booking.ErrPaymentPending):
		return http.StatusPaymentRequired
	case errors.Is(err, booking.ErrPaymentFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error(message, zap.Error(err))
		utils.JSONError(c, status, message, "")
		return
	}
	utils.JSONError(c, status, message, err.Error())
}
