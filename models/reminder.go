package models

import "time"

type ReminderPayload struct {
	BookingID    string    `json:"bookingId"`
	UserID       string    `json:"userId"`
	ConsultantID string    `json:"consultantId"`
	StartAt      time.Time `json:"startAt"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
}
