package models

import "time"

// CandidateDate is a calendar day offered for selection. Never persisted.
type CandidateDate struct {
	Date               string       `json:"date"` // YYYY-MM-DD
	Day                time.Time    `json:"-"`
	Weekday            time.Weekday `json:"weekday"`
	WeekdayLabel       string       `json:"weekdayLabel"` // e.g. "Wed"
	DateLabel          string       `json:"dateLabel"`    // e.g. "Oct 21"
	IsPast             bool         `json:"isPast"`
	IsAvailableWeekday bool         `json:"isAvailableWeekday"`
	IsSelectable       bool         `json:"isSelectable"`
	InMonth            bool         `json:"inMonth"`
}

// TimeSlot is a bookable 30 minute window on a date.
type TimeSlot struct {
	SlotID       string    `json:"slotId"`       // "HH:MM", 24-hour
	DisplayLabel string    `json:"displayLabel"` // "3:04 PM"
	Start        time.Time `json:"start"`
}

// SlotPlan is the slot list for one consultant and date.
type SlotPlan struct {
	ConsultantID string     `json:"consultantId"`
	Date         string     `json:"date"`
	Slots        []TimeSlot `json:"slots"`
	BookedCount  int        `json:"bookedCount"`
	// Degraded is set when booked slots could not be fetched and the list
	// was returned unfiltered.
	Degraded bool `json:"degraded,omitempty"`
}

// DurationOption is one selectable session length and its price.
type DurationOption struct {
	Minutes   int     `json:"minutes"`
	Fee       float64 `json:"fee"`
	FreeTrial bool    `json:"freeTrial,omitempty"`
}
