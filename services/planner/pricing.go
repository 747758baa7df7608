package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"consultly/models"
)

const (
	DurationFreeTrial = 5
	DurationShort     = 30
	DurationLong      = 60

	longSessionMultiplier = 1.8
)

var (
	ErrUnsupportedDuration = errors.New("unsupported session duration")
	ErrFreeTrialUsed       = errors.New("free trial already used for this session type")
	ErrLeadTime            = errors.New("selected time is too soon; pick a slot at least 30 minutes from now")
)

// ResolveFee prices a session. trialEligible says whether the client still
// holds an unused free trial for the session type being booked.
func ResolveFee(base float64, minutes int, trialEligible bool) (float64, error) {
	switch minutes {
	case DurationShort:
		return base, nil
	case DurationLong:
		return math.Round(base * longSessionMultiplier), nil
	case DurationFreeTrial:
		if !trialEligible {
			return 0, ErrFreeTrialUsed
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %d minutes", ErrUnsupportedDuration, minutes)
}

// DurationOptions lists what a client may pick, the trial first when offered.
func DurationOptions(base float64, trialEligible bool) []models.DurationOption {
	var opts []models.DurationOption
	if trialEligible {
		opts = append(opts, models.DurationOption{Minutes: DurationFreeTrial, Fee: 0, FreeTrial: true})
	}
	for _, m := range []int{DurationShort, DurationLong} {
		fee, _ := ResolveFee(base, m, trialEligible)
		opts = append(opts, models.DurationOption{Minutes: m, Fee: fee})
	}
	return opts
}

// CheckLeadTime rejects a selection that starts before now+LeadTime. Time
// passes between listing slots and submitting, so this runs again at submit.
func CheckLeadTime(selected, now time.Time) error {
	if selected.Before(now.Add(LeadTime)) {
		return ErrLeadTime
	}
	return nil
}
