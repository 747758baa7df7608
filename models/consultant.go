package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	SessionTypeVideo = "video"
	SessionTypeChat  = "chat"
)

// Consultant is the marketplace-side expert whose calendar clients book into.
type Consultant struct {
	ID           string                 `bson:"id" json:"id"`
	Name         string                 `bson:"name" json:"name"`
	Email        string                 `bson:"email" json:"email,omitempty"`
	Headline     string                 `bson:"headline" json:"headline,omitempty"`
	Availability ConsultantAvailability `bson:"availability" json:"availability"`
	CreatedAt    time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// ConsultantAvailability is the consultant-owned booking configuration.
type ConsultantAvailability struct {
	WeeklyDays           WeekdayList `bson:"weeklyDays" json:"weeklyDays"`                     // e.g. ["Mon-Fri"], ["Monday", "3"], [1, 2]
	AvailableHoursPerDay string      `bson:"availableHoursPerDay" json:"availableHoursPerDay"` // e.g. "8", "6-8 hours"
	SessionFeeBase       float64     `bson:"sessionFeeBase" json:"sessionFeeBase"`             // price of a 30 minute session
	Currency             string      `bson:"currency,omitempty" json:"currency,omitempty"`
}

// WeekdayList holds raw weekday descriptors exactly as upstream sent them.
// JSON numbers are accepted and kept in their decimal form.
type WeekdayList []string

func (w *WeekdayList) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("weeklyDays must be an array: %w", err)
	}
	out := make(WeekdayList, 0, len(raw))
	for _, v := range raw {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		}
	}
	*w = out
	return nil
}
