package handlers

import (
	"context"
	"net/http"
	"time"

	"consultly/middleware"
	"consultly/models"
	"consultly/services/planner"

	"github.com/gin-gonic/gin"
)

// AvailabilityStore reads and writes consultant availability.
type AvailabilityStore interface {
	GetAvailability(ctx context.Context, id string) (*models.ConsultantAvailability, error)
	UpdateAvailability(ctx context.Context, id string, availability models.ConsultantAvailability) error
}

// TrialReader reports a client's free-trial state.
type TrialReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// PlannerHandler serves calendar and slot queries.
type PlannerHandler struct {
	Planner      *planner.Planner
	Availability AvailabilityStore
	Users        TrialReader
	Clock        func() time.Time
}

func (h *PlannerHandler) loc() *time.Location {
	if h.Planner.Location == nil {
		return time.UTC
	}
	return h.Planner.Location
}

func (h *PlannerHandler) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}

// GetAvailability returns a consultant's raw booking configuration.
func (h *PlannerHandler) GetAvailability(c *gin.Context) {
	avail, err := h.Availability.GetAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load availability", err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// UpdateAvailability replaces the caller's availability.
func (h *PlannerHandler) UpdateAvailability(c *gin.Context) {
	var input models.ConsultantAvailability
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.SessionFeeBase < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionFeeBase must not be negative"})
		return
	}

	id := c.Param("id")
	if err := h.Availability.UpdateAvailability(c.Request.Context(), id, input); err != nil {
		respondError(c, "Failed to update availability", err)
		return
	}

	set := planner.NormalizeWeekdays(input.WeeklyDays)
	c.JSON(http.StatusOK, gin.H{
		"consultantId":   id,
		"availability":   input,
		"resolvedDays":   weekdayNames(set),
		"hoursPerDay":    planner.ResolveHoursPerDay(input.AvailableHoursPerDay),
		"allDaysOpen":    set.IsEmpty(),
	})
}

// GetDates lists the bookable dates in the rolling window.
func (h *PlannerHandler) GetDates(c *gin.Context) {
	id := c.Param("id")
	dates, err := h.Planner.Dates(c.Request.Context(), id, h.now())
	if err != nil {
		respondError(c, "Failed to list dates", err)
		return
	}
	if dates == nil {
		dates = []models.CandidateDate{}
	}
	c.JSON(http.StatusOK, gin.H{"consultantId": id, "dates": dates})
}

// GetCalendar renders a month grid. month defaults to the current one.
func (h *PlannerHandler) GetCalendar(c *gin.Context) {
	now := h.now()
	month := now.In(h.loc())
	if m := c.Query("month"); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, h.loc())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		month = parsed
	}

	id := c.Param("id")
	grid, err := h.Planner.Month(c.Request.Context(), id, month, now)
	if err != nil {
		respondError(c, "Failed to build calendar", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultantId": id, "month": month.Format("2006-01"), "days": grid})
}

// GetSlots lists open slots for ?date=YYYY-MM-DD.
func (h *PlannerHandler) GetSlots(c *gin.Context) {
	plan, err := h.Planner.Slots(c.Request.Context(), c.Param("id"), c.Query("date"), h.now())
	if err != nil {
		respondError(c, "Failed to list slots", err)
		return
	}
	if plan.Slots == nil {
		plan.Slots = []models.TimeSlot{}
	}
	c.JSON(http.StatusOK, plan)
}

// GetBooked returns the raw booked markers for ?date=YYYY-MM-DD.
func (h *PlannerHandler) GetBooked(c *gin.Context) {
	id, date := c.Param("id"), c.Query("date")
	if _, err := planner.ParseDate(date, h.loc()); err != nil {
		respondError(c, "Failed to list booked slots", planner.ErrInvalidDate)
		return
	}
	markers, err := h.Planner.Booked.BookedMarkers(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, "Failed to list booked slots", err)
		return
	}
	if markers == nil {
		markers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"consultantId": id, "date": date, "booked": markers})
}

// GetDurations lists session lengths and prices for the caller.
func (h *PlannerHandler) GetDurations(c *gin.Context) {
	ctx := c.Request.Context()
	avail, err := h.Availability.GetAvailability(ctx, c.Param("id"))
	if err != nil {
		respondError(c, "Failed to load availability", err)
		return
	}

	sessionType := c.DefaultQuery("sessionType", models.SessionTypeVideo)
	eligible := false
	if userID := c.GetString(middleware.ContextUserID); userID != "" && h.Users != nil {
		if u, err := h.Users.GetByID(ctx, userID); err == nil {
			eligible = !u.FreeTrial.Used(sessionType)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"consultantId": c.Param("id"),
		"sessionType":  sessionType,
		"currency":     avail.Currency,
		"options":      planner.DurationOptions(avail.SessionFeeBase, eligible),
	})
}

func weekdayNames(set planner.WeekdaySet) []string {
	days := set.Days()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}
	return out
}
