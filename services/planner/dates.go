package planner

import (
	"time"

	"consultly/models"
)

// DefaultWindowDays is the rolling booking window offered to clients.
const DefaultWindowDays = 30

const DateLayout = "2006-01-02"

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate reads a YYYY-MM-DD string as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

func candidate(day, today time.Time, set WeekdaySet) models.CandidateDate {
	isPast := day.Before(today)
	available := set.Allows(day.Weekday())
	return models.CandidateDate{
		Date:               day.Format(DateLayout),
		Day:                day,
		Weekday:            day.Weekday(),
		WeekdayLabel:       day.Format("Mon"),
		DateLabel:          day.Format("Jan 2"),
		IsPast:             isPast,
		IsAvailableWeekday: available,
		IsSelectable:       !isPast && available,
		InMonth:            true,
	}
}

// RollingDates returns the consultant's bookable days among the n days
// starting at today, ascending.
func RollingDates(today time.Time, set WeekdaySet, n int) []models.CandidateDate {
	today = StartOfDay(today)
	var out []models.CandidateDate
	for i := 0; i < n; i++ {
		day := today.AddDate(0, 0, i)
		if !set.Allows(day.Weekday()) {
			continue
		}
		out = append(out, candidate(day, today, set))
	}
	return out
}

// CalendarMonth lays out the month containing month as whole Sunday-first
// weeks. Days outside the month are filler and never selectable.
func CalendarMonth(month, today time.Time, set WeekdaySet) []models.CandidateDate {
	today = StartOfDay(today)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var out []models.CandidateDate
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		c := candidate(day, today, set)
		if day.Month() != first.Month() {
			c.InMonth = false
			c.IsSelectable = false
		}
		out = append(out, c)
	}
	return out
}
