package models

import "time"

const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
)

// Booking is a stored consultation booking.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	ConsultantID    string    `bson:"consultantId" json:"consultantId"`
	UserID          string    `bson:"userId" json:"userId"`
	Date            string    `bson:"date" json:"date"`     // YYYY-MM-DD
	SlotID          string    `bson:"slotId" json:"slotId"` // HH:MM
	StartAt         time.Time `bson:"startAt" json:"startAt"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	SessionType     string    `bson:"sessionType" json:"sessionType"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Fee             float64   `bson:"fee" json:"fee"`
	Currency        string    `bson:"currency" json:"currency"`
	FreeTrial       bool      `bson:"freeTrial,omitempty" json:"freeTrial,omitempty"`
	Status          string    `bson:"status" json:"status"`
	PaymentOrderID  string    `bson:"paymentOrderId,omitempty" json:"paymentOrderId,omitempty"`
	// SlotKey holds the slot while the booking is live and is cleared on
	// cancellation, so a sparse unique index admits one live booking per slot.
	SlotKey         string    `bson:"slotKey,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingSubmission is the request handed to booking creation.
type BookingSubmission struct {
	ConsultantID    string    `json:"consultantId" binding:"required"`
	UserID          string    `json:"userId"`
	StartAt         time.Time `json:"startAt" binding:"required"` // RFC 3339
	DurationMinutes int       `json:"durationMinutes" binding:"required"`
	SessionType     string    `json:"sessionType"`
	Notes           string    `json:"notes,omitempty"`
}

// BookingResult is either a confirmed booking or one waiting on payment.
type BookingResult struct {
	BookingID       string        `json:"bookingId"`
	Status          string        `json:"status"`
	Fee             float64       `json:"fee"`
	Currency        string        `json:"currency"`
	PaymentRequired bool          `json:"paymentRequired"`
	PaymentOrder    *PaymentOrder `json:"paymentOrder,omitempty"`
}

// BookingDraft is a client's in-progress selection. It is frozen once
// Submitted is set.
type BookingDraft struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ConsultantID    string    `json:"consultantId"`
	SessionType     string    `json:"sessionType"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	Date            string    `json:"date,omitempty"`
	SlotID          string    `json:"slotId,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Submitted       bool      `json:"submitted"`
	BookingID       string    `json:"bookingId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DraftUpdate carries the fields a client may change on a draft. Nil fields
// are left untouched.
type DraftUpdate struct {
	SessionType     *string `json:"sessionType,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Date            *string `json:"date,omitempty"`
	SlotID          *string `json:"slotId,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
