// Package apiclient is a Go client for the consultation booking API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"consultly/models"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned while the breaker rejects calls after repeated
// server failures.
var ErrCircuitOpen = errors.New("booking API unavailable; circuit open")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api %d: %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// FailureThreshold consecutive server failures open the breaker for
	// OpenTimeout.
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// Client calls the booking API through a circuit breaker.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	threshold := cfg.FailureThreshold
	settings := gobreaker.Settings{
		Name:        "booking-api",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Client errors say nothing about server health.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status < http.StatusInternalServerError
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			apiErr := &APIError{Status: resp.StatusCode}
			if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || apiErr.Message == "" {
				apiErr.Message = http.StatusText(resp.StatusCode)
			}
			return nil, apiErr
		}
		return data, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ErrCircuitOpen
		}
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func consultantPath(id, tail string) string {
	return "/api/consultants/" + url.PathEscape(id) + tail
}

// Dates lists the consultant's bookable dates in the rolling window.
func (c *Client) Dates(ctx context.Context, consultantID string) ([]models.CandidateDate, error) {
	var out struct {
		Dates []models.CandidateDate `json:"dates"`
	}
	if err := c.do(ctx, http.MethodGet, consultantPath(consultantID, "/dates"), nil, &out); err != nil {
		return nil, err
	}
	return out.Dates, nil
}

// Calendar returns the month grid for month (YYYY-MM; empty for current).
func (c *Client) Calendar(ctx context.Context, consultantID, month string) ([]models.CandidateDate, error) {
	path := consultantPath(consultantID, "/calendar")
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}
	var out struct {
		Days []models.CandidateDate `json:"days"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Days, nil
}

// Slots returns open slots on date (YYYY-MM-DD).
func (c *Client) Slots(ctx context.Context, consultantID, date string) (*models.SlotPlan, error) {
	var plan models.SlotPlan
	path := consultantPath(consultantID, "/slots?date="+url.QueryEscape(date))
	if err := c.do(ctx, http.MethodGet, path, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// BookedMarkers returns the slot IDs already booked on date.
func (c *Client) BookedMarkers(ctx context.Context, consultantID, date string) ([]string, error) {
	var out struct {
		Booked []string `json:"booked"`
	}
	path := consultantPath(consultantID, "/booked?date="+url.QueryEscape(date))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Booked, nil
}

func (c *Client) Durations(ctx context.Context, consultantID, sessionType string) ([]models.DurationOption, error) {
	var out struct {
		Options []models.DurationOption `json:"options"`
	}
	path := consultantPath(consultantID, "/durations?sessionType="+url.QueryEscape(sessionType))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Options, nil
}

// SubmitBooking books a slot. The user is taken from the bearer token.
func (c *Client) SubmitBooking(ctx context.Context, sub models.BookingSubmission) (*models.BookingResult, error) {
	var res models.BookingResult
	if err := c.do(ctx, http.MethodPost, "/api/bookings", sub, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, bookingID string) (*models.BookingResult, error) {
	var res models.BookingResult
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/confirm-payment"
	if err := c.do(ctx, http.MethodPost, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
