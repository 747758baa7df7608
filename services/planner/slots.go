package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"consultly/models"
)

const (
	// SlotStep is the grid spacing for generated slots.
	SlotStep = 30 * time.Minute
	// LeadTime is the minimum gap between now and a bookable start.
	LeadTime = 30 * time.Minute

	DefaultHoursPerDay = 8

	dayOpensMinute  = 9 * 60  // 09:00
	dayClosesMinute = 21 * 60 // 21:00
)

var firstInteger = regexp.MustCompile(`\d+`)

// ResolveHoursPerDay pulls the first integer out of values like "6-8 hours".
// Empty or number-free input yields DefaultHoursPerDay.
func ResolveHoursPerDay(s string) int {
	m := firstInteger.FindString(s)
	if m == "" {
		return DefaultHoursPerDay
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return DefaultHoursPerDay
	}
	return n
}

// GenerateSlots walks the 30 minute grid of day from 09:00 up to
// min(21:00, 09:00+hours), keeping starts no earlier than now+LeadTime.
// day may carry any time of day; only its calendar date in its location is
// used. Slots are built from wall-clock minutes so DST shifts keep the grid.
func GenerateSlots(day time.Time, hours int, now time.Time) []models.TimeSlot {
	if hours <= 0 {
		return nil
	}
	closes := dayOpensMinute + hours*60
	if closes > dayClosesMinute {
		closes = dayClosesMinute
	}
	if closes <= dayOpensMinute {
		return nil
	}

	earliest := now.Add(LeadTime)
	y, m, d := day.Date()
	loc := day.Location()

	var slots []models.TimeSlot
	for minute := dayOpensMinute; minute < closes; minute += int(SlotStep / time.Minute) {
		start := time.Date(y, m, d, minute/60, minute%60, 0, 0, loc)
		if start.Before(earliest) {
			continue
		}
		slots = append(slots, models.TimeSlot{
			SlotID:       fmt.Sprintf("%02d:%02d", minute/60, minute%60),
			DisplayLabel: start.Format("3:04 PM"),
			Start:        start,
		})
	}
	return slots
}

// FilterBooked drops slots whose SlotID exactly matches a booked marker.
func FilterBooked(slots []models.TimeSlot, booked []string) []models.TimeSlot {
	if len(booked) == 0 {
		return slots
	}
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}
	out := make([]models.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s.SlotID]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FindSlot returns the slot with the given id, if present.
func FindSlot(slots []models.TimeSlot, slotID string) (models.TimeSlot, bool) {
	for _, s := range slots {
		if s.SlotID == slotID {
			return s, true
		}
	}
	return models.TimeSlot{}, false
}
