package handlers

import (
	"net/http"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes direct bookings and the draft flow.
type BookingHandler struct {
	Service booking.BookingService
}

// SubmitBooking books a slot for the authenticated client.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var sub models.BookingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sub.UserID = c.GetString(middleware.ContextUserID)

	result, err := h.Service.Submit(c.Request.Context(), sub)
	if err != nil {
		respondError(c, "Booking failed", err)
		return
	}
	status := http.StatusCreated
	if result.PaymentRequired {
		status = http.StatusAccepted
	}
	c.JSON(status, result)
}

// ConfirmPayment confirms a booking after the client paid.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	result, err := h.Service.ConfirmPayment(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		respondError(c, "Payment confirmation failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) CreateDraft(c *gin.Context) {
	var input struct {
		ConsultantID string `json:"consultantId" binding:"required"`
		SessionType  string `json:"sessionType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Service.CreateDraft(c.Request.Context(), c.GetString(middleware.ContextUserID), input.ConsultantID, input.SessionType)
	if err != nil {
		respondError(c, "Failed to create booking draft", err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	var update models.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Service.UpdateDraft(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("draftID"), update)
	if err != nil {
		respondError(c, "Failed to update booking draft", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *BookingHandler) SubmitDraft(c *gin.Context) {
	result, err := h.Service.SubmitDraft(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("draftID"))
	if err != nil {
		respondError(c, "Failed to submit booking draft", err)
		return
	}
	status := http.StatusCreated
	if result.PaymentRequired {
		status = http.StatusAccepted
	}
	c.JSON(status, result)
}

func (h *BookingHandler) CancelDraft(c *gin.Context) {
	if err := h.Service.CancelDraft(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("draftID")); err != nil {
		respondError(c, "Failed to cancel booking draft", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking draft cancelled"})
}
