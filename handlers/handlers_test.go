package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	consultantRepo "consultly/database/repository/consultant"
	"consultly/middleware"
	"consultly/models"
	"consultly/services/booking"
	"consultly/services/planner"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memAvailability map[string]models.ConsultantAvailability

func (m memAvailability) GetAvailability(_ context.Context, id string) (*models.ConsultantAvailability, error) {
	a, ok := m[id]
	if !ok {
		return nil, consultantRepo.ErrNotFound
	}
	return &a, nil
}

func (m memAvailability) UpdateAvailability(_ context.Context, id string, a models.ConsultantAvailability) error {
	if _, ok := m[id]; !ok {
		return consultantRepo.ErrNotFound
	}
	m[id] = a
	return nil
}

type staticBooked map[string][]string

func (s staticBooked) BookedMarkers(_ context.Context, consultantID, date string) ([]string, error) {
	return s[consultantID+"/"+date], nil
}

type memUsers map[string]models.User

func (m memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m[id]
	if !ok {
		return nil, consultantRepo.ErrNotFound
	}
	return &u, nil
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Submit(ctx context.Context, sub models.BookingSubmission) (*models.BookingResult, error) {
	args := m.Called(ctx, sub)
	r, _ := args.Get(0).(*models.BookingResult)
	return r, args.Error(1)
}

func (m *mockBookingService) ConfirmPayment(ctx context.Context, userID, bookingID string) (*models.BookingResult, error) {
	args := m.Called(ctx, userID, bookingID)
	r, _ := args.Get(0).(*models.BookingResult)
	return r, args.Error(1)
}

func (m *mockBookingService) CreateDraft(ctx context.Context, userID, consultantID, sessionType string) (*models.BookingDraft, error) {
	args := m.Called(ctx, userID, consultantID, sessionType)
	d, _ := args.Get(0).(*models.BookingDraft)
	return d, args.Error(1)
}

func (m *mockBookingService) UpdateDraft(ctx context.Context, userID, draftID string, update models.DraftUpdate) (*models.BookingDraft, error) {
	args := m.Called(ctx, userID, draftID, update)
	d, _ := args.Get(0).(*models.BookingDraft)
	return d, args.Error(1)
}

func (m *mockBookingService) SubmitDraft(ctx context.Context, userID, draftID string) (*models.BookingResult, error) {
	args := m.Called(ctx, userID, draftID)
	r, _ := args.Get(0).(*models.BookingResult)
	return r, args.Error(1)
}

func (m *mockBookingService) CancelDraft(ctx context.Context, userID, draftID string) error {
	return m.Called(ctx, userID, draftID).Error(0)
}

// testNow is Tuesday 2026-10-13 11:00 UTC.
var testNow = time.Date(2026, 10, 13, 11, 0, 0, 0, time.UTC)

type testServer struct {
	router *gin.Engine
	avail  memAvailability
	svc    *mockBookingService
	health utils.HealthStatus
}

func newTestServer() *testServer {
	ts := &testServer{
		avail: memAvailability{
			"c1": {
				WeeklyDays:           models.WeekdayList{"Mon", "Wed", "Fri"},
				AvailableHoursPerDay: "6",
				SessionFeeBase:       500,
				Currency:             "inr",
			},
		},
		svc:    &mockBookingService{},
		health: utils.HealthStatus{Mongo: true, Redis: []bool{true}},
	}
	p := &PlannerHandler{
		Planner: &planner.Planner{
			Consultants:  ts.avail,
			Booked:       staticBooked{"c1/2026-10-14": {"10:00"}},
			Location:     time.UTC,
			WindowDays:   14,
			FetchTimeout: time.Second,
			Logger:       zap.NewNop(),
		},
		Availability: ts.avail,
		Users:        memUsers{"u1": {ID: "u1"}},
		Clock:        func() time.Time { return testNow },
	}
	hb := NewHandlerBundle(p, &BookingHandler{Service: ts.svc}, &HealthHandler{Status: func() utils.HealthStatus { return ts.health }})

	r := gin.New()
	r.GET("/health", hb.HealthHandler)
	api := r.Group("/api", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "u1")
		c.Next()
	})
	api.GET("/consultants/:id/availability", hb.GetAvailabilityHandler)
	api.PUT("/consultants/:id/availability", hb.UpdateAvailabilityHandler)
	api.GET("/consultants/:id/dates", hb.GetDatesHandler)
	api.GET("/consultants/:id/calendar", hb.GetCalendarHandler)
	api.GET("/consultants/:id/slots", hb.GetSlotsHandler)
	api.GET("/consultants/:id/booked", hb.GetBookedHandler)
	api.GET("/consultants/:id/durations", hb.GetDurationsHandler)
	api.POST("/bookings", hb.SubmitBookingHandler)
	api.POST("/bookings/:id/confirm-payment", hb.ConfirmPaymentHandler)
	api.POST("/booking/draft", hb.CreateDraftHandler)
	api.PUT("/booking/draft/:draftID", hb.UpdateDraftHandler)
	api.POST("/booking/draft/:draftID/submit", hb.SubmitDraftHandler)
	api.DELETE("/booking/draft/:draftID", hb.CancelDraftHandler)
	ts.router = r
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestGetSlots(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/consultants/c1/slots?date=2026-10-14", "")

	require.Equal(t, http.StatusOK, w.Code)
	var plan models.SlotPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Len(t, plan.Slots, 11)
	assert.Equal(t, 1, plan.BookedCount)
	assert.Equal(t, "9:00 AM", plan.Slots[0].DisplayLabel)
}

func TestGetSlots_EmptyListIsArray(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/consultants/c1/slots?date=2026-10-15", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestGetSlots_Errors(t *testing.T) {
	ts := newTestServer()

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/consultants/c1/slots?date=14-10-2026", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/consultants/ghost/slots?date=2026-10-14", "").Code)
}

func TestGetDates(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/consultants/c1/dates", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Dates []models.CandidateDate `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Dates)
	assert.Equal(t, "2026-10-14", body.Dates[0].Date)
	assert.Equal(t, "Wed", body.Dates[0].WeekdayLabel)
}

func TestGetCalendar(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/consultants/c1/calendar?month=2026-10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Month string                 `json:"month"`
		Days  []models.CandidateDate `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-10", body.Month)
	assert.Len(t, body.Days, 35)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/consultants/c1/calendar?month=Oct", "").Code)
}

func TestGetBooked(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/consultants/c1/booked?date=2026-10-14", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"consultantId":"c1","date":"2026-10-14","booked":["10:00"]}`, w.Body.String())

	w = ts.do(http.MethodGet, "/api/consultants/c1/booked?date=2026-10-16", "")
	assert.Contains(t, w.Body.String(), `"booked":[]`)
}

func TestGetDurations(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/consultants/c1/durations", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Options []models.DurationOption `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []models.DurationOption{
		{Minutes: 5, Fee: 0, FreeTrial: true},
		{Minutes: 30, Fee: 500},
		{Minutes: 60, Fee: 900},
	}, body.Options)
}

func TestUpdateAvailability(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPut, "/api/consultants/c1/availability",
		`{"weeklyDays":["Tue-Thu", 6],"availableHoursPerDay":"4 hours","sessionFeeBase":750}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resolvedDays":["Tuesday","Wednesday","Thursday","Saturday"]`)
	assert.Equal(t, 750.0, ts.avail["c1"].SessionFeeBase)
	assert.Equal(t, models.WeekdayList{"Tue-Thu", "6"}, ts.avail["c1"].WeeklyDays)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPut, "/api/consultants/c1/availability", `{"sessionFeeBase":-1}`).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPut, "/api/consultants/ghost/availability", `{"sessionFeeBase":1}`).Code)
}

func TestSubmitBooking(t *testing.T) {
	ts := newTestServer()
	ts.svc.On("Submit", mock.Anything, mock.MatchedBy(func(s models.BookingSubmission) bool {
		return s.UserID == "u1" && s.ConsultantID == "c1" && s.DurationMinutes == 60
	})).Return(&models.BookingResult{BookingID: "b1", PaymentRequired: true, Status: models.BookingStatusPendingPayment}, nil).Once()

	w := ts.do(http.MethodPost, "/api/bookings",
		`{"consultantId":"c1","startAt":"2026-10-14T10:30:00Z","durationMinutes":60,"sessionType":"video"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingId":"b1"`)
	ts.svc.AssertExpectations(t)
}

func TestSubmitBooking_ErrorMapping(t *testing.T) {
	ts := newTestServer()
	body := `{"consultantId":"c1","startAt":"2026-10-14T10:30:00Z","durationMinutes":30}`

	ts.svc.On("Submit", mock.Anything, mock.Anything).Return(nil, booking.ErrSlotTaken).Once()
	assert.Equal(t, http.StatusConflict, ts.do(http.MethodPost, "/api/bookings", body).Code)

	ts.svc.On("Submit", mock.Anything, mock.Anything).Return(nil, planner.ErrLeadTime).Once()
	assert.Equal(t, http.StatusUnprocessableEntity, ts.do(http.MethodPost, "/api/bookings", body).Code)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/api/bookings", `{"consultantId":""}`).Code)
}

func TestDraftEndpoints(t *testing.T) {
	ts := newTestServer()
	ts.svc.On("CreateDraft", mock.Anything, "u1", "c1", "chat").Return(&models.BookingDraft{ID: "d1", UserID: "u1"}, nil)
	ts.svc.On("UpdateDraft", mock.Anything, "u1", "d1", mock.MatchedBy(func(u models.DraftUpdate) bool {
		return u.Date != nil && *u.Date == "2026-10-16" && u.SlotID == nil
	})).Return(&models.BookingDraft{ID: "d1", Date: "2026-10-16"}, nil)
	ts.svc.On("SubmitDraft", mock.Anything, "u1", "d1").Return(nil, booking.ErrDraftSubmitted)
	ts.svc.On("CancelDraft", mock.Anything, "u1", "d1").Return(nil)

	assert.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/booking/draft", `{"consultantId":"c1","sessionType":"chat"}`).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPut, "/api/booking/draft/d1", `{"date":"2026-10-16"}`).Code)
	assert.Equal(t, http.StatusConflict, ts.do(http.MethodPost, "/api/booking/draft/d1/submit", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodDelete, "/api/booking/draft/d1", "").Code)
	ts.svc.AssertExpectations(t)
}

func TestConfirmPaymentEndpoint(t *testing.T) {
	ts := newTestServer()
	ts.svc.On("ConfirmPayment", mock.Anything, "u1", "b1").Return(nil, booking.ErrPaymentPending).Once()
	ts.svc.On("ConfirmPayment", mock.Anything, "u1", "b1").Return(&models.BookingResult{BookingID: "b1", Status: models.BookingStatusConfirmed}, nil).Once()

	assert.Equal(t, http.StatusPaymentRequired, ts.do(http.MethodPost, "/api/bookings/b1/confirm-payment", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/bookings/b1/confirm-payment", "").Code)
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/health", "").Code)

	ts.health.Redis = []bool{false}
	assert.Equal(t, http.StatusServiceUnavailable, ts.do(http.MethodGet, "/health", "").Code)
}
