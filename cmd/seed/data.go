package main

import (
	"fmt"

	"consultly/models"
)

// Weekday declarations in every shape the availability parser accepts.
var demoWeekdays = []models.WeekdayList{
	{"Mon-Fri"},
	{"Monday", "Wednesday", "Friday"},
	{"Tue", "Thu", "Sat"},
	{"1", "2", "3", "4", "5", "6"},
	{"Sat-Mon"},
	{},
}

var demoHours = []string{"8", "6-8 hours", "4", "3.5", "2 hours", ""}

var demoHeadlines = []string{
	"Career coaching",
	"Tax and personal finance",
	"Startup legal basics",
	"Nutrition planning",
}

func demoConsultants(n int) []models.Consultant {
	out := make([]models.Consultant, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Consultant{
			ID:       fmt.Sprintf("cons-%d", i),
			Name:     fmt.Sprintf("Consultant %d", i),
			Email:    fmt.Sprintf("consultant_%d@example.com", i),
			Headline: demoHeadlines[(i-1)%len(demoHeadlines)],
			Availability: models.ConsultantAvailability{
				WeeklyDays:           demoWeekdays[(i-1)%len(demoWeekdays)],
				AvailableHoursPerDay: demoHours[(i-1)%len(demoHours)],
				SessionFeeBase:       float64(300 + 100*((i-1)%5)),
			},
		})
	}
	return out
}

// demoUsers alternates trial state so both branches of the free-trial
// pricing can be exercised.
func demoUsers(n int) []models.User {
	out := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.User{
			ID:    fmt.Sprintf("user-%d", i),
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user_%d@example.com", i),
			FreeTrial: models.FreeTrial{
				VideoUsed: i%2 == 0,
				ChatUsed:  i%3 == 0,
			},
		})
	}
	return out
}
