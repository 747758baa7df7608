package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "consultly/database/repository/booking"
	consultantRepo "consultly/database/repository/consultant"
	draftRepo "consultly/database/repository/draft"
	userRepo "consultly/database/repository/user"
	"consultly/models"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeConsultants map[string]models.ConsultantAvailability

func (f fakeConsultants) GetAvailability(_ context.Context, id string) (*models.ConsultantAvailability, error) {
	a, ok := f[id]
	if !ok {
		return nil, consultantRepo.ErrNotFound
	}
	return &a, nil
}

type memBookings struct {
	mu    sync.Mutex
	byID  map[string]*models.Booking
	slots map[string]string
}

func newMemBookings() *memBookings {
	return &memBookings{byID: map[string]*models.Booking{}, slots: map[string]string{}}
}

func (m *memBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := bookingRepo.SlotKey(b.ConsultantID, b.Date, b.SlotID)
	if _, taken := m.slots[key]; taken {
		return bookingRepo.ErrSlotTaken
	}
	m.slots[key] = b.ID
	cp := *b
	m.byID[b.ID] = &cp
	return nil
}

func (m *memBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = status
	if status == models.BookingStatusCancelled {
		delete(m.slots, bookingRepo.SlotKey(b.ConsultantID, b.Date, b.SlotID))
	}
	return nil
}

func (m *memBookings) AttachPaymentOrder(_ context.Context, id, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.PaymentOrderID = orderID
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (m *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) MarkFreeTrialUsed(_ context.Context, id, sessionType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	if sessionType == models.SessionTypeChat {
		u.FreeTrial.ChatUsed = true
	} else {
		u.FreeTrial.VideoUsed = true
	}
	return nil
}

type memDrafts map[string]models.BookingDraft

func (m memDrafts) Save(_ context.Context, d *models.BookingDraft) error {
	m[d.ID] = *d
	return nil
}

func (m memDrafts) Get(_ context.Context, id string) (*models.BookingDraft, error) {
	d, ok := m[id]
	if !ok {
		return nil, draftRepo.ErrNotFound
	}
	return &d, nil
}

func (m memDrafts) Delete(_ context.Context, id string) error {
	if _, ok := m[id]; !ok {
		return draftRepo.ErrNotFound
	}
	delete(m, id)
	return nil
}

type spyCache struct {
	mu      sync.Mutex
	dropped []string
}

func (s *spyCache) Invalidate(_ context.Context, consultantID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropped = append(s.dropped, consultantID+"/"+date)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(ctx context.Context, req models.PaymentRequest) (*models.PaymentOrder, error) {
	args := m.Called(ctx, req)
	order, _ := args.Get(0).(*models.PaymentOrder)
	return order, args.Error(1)
}

func (m *mockGateway) OrderStatus(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

type scheduledReminder struct {
	payload models.ReminderPayload
	fireAt  time.Time
}

type spyReminders struct {
	mu   sync.Mutex
	sent []scheduledReminder
}

func (s *spyReminders) ScheduleReminder(_ context.Context, p models.ReminderPayload, fireAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, scheduledReminder{p, fireAt})
	return nil
}

// fixedNow is Tuesday 2026-10-13 11:00 UTC.
var fixedNow = time.Date(2026, 10, 13, 11, 0, 0, 0, time.UTC)

type harness struct {
	svc       *DefaultBookingService
	bookings  *memBookings
	users     *memUsers
	drafts    memDrafts
	cache     *spyCache
	gateway   *mockGateway
	reminders *spyReminders
}

func newHarness() *harness {
	h := &harness{
		bookings: newMemBookings(),
		users: &memUsers{users: map[string]*models.User{
			"u1": {ID: "u1"},
			"u2": {ID: "u2", FreeTrial: models.FreeTrial{VideoUsed: true}},
		}},
		drafts:    memDrafts{},
		cache:     &spyCache{},
		gateway:   &mockGateway{},
		reminders: &spyReminders{},
	}
	h.svc = &DefaultBookingService{
		Consultants: fakeConsultants{
			"c1": {
				WeeklyDays:           models.WeekdayList{"Mon", "Wed", "Fri"},
				AvailableHoursPerDay: "6 hours",
				SessionFeeBase:       500,
				Currency:             "inr",
			},
		},
		Bookings:     h.bookings,
		Users:        h.users,
		Drafts:       h.drafts,
		Cache:        h.cache,
		Payments:     h.gateway,
		Reminders:    h.reminders,
		Location:     time.UTC,
		Currency:     "usd",
		ReminderLead: 15 * time.Minute,
		Logger:       zap.NewNop(),
		Clock:        func() time.Time { return fixedNow },
	}
	return h
}

func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2026, 10, 14, hour, minute, 0, 0, time.UTC)
}
