package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"consultly/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StatusSucceeded is the order status reported once the client has paid.
const StatusSucceeded = string(stripe.PaymentIntentStatusSucceeded)

// Gateway opens payment orders for bookings and reports their status.
type Gateway interface {
	CreateOrder(ctx context.Context, req models.PaymentRequest) (*models.PaymentOrder, error)
	OrderStatus(ctx context.Context, orderID string) (string, error)
}

// StripeGateway backs Gateway with Stripe PaymentIntents. stripe.Key must be
// set before use.
type StripeGateway struct {
	logger *zap.Logger
}

func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

// CreateOrder opens a PaymentIntent. The booking ID doubles as the
// idempotency key so a retried submission never opens a second intent.
func (g *StripeGateway) CreateOrder(ctx context.Context, req models.PaymentRequest) (*models.PaymentOrder, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	currency := strings.ToLower(req.Currency)
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(MinorUnits(req.Amount, currency)),
		Currency:    stripe.String(currency),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	params.SetIdempotencyKey("booking-" + req.BookingID)
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("userId", req.UserID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("Failed to create payment intent", zap.String("bookingId", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	g.logger.Info("Payment intent created",
		zap.String("bookingId", req.BookingID),
		zap.String("intentId", pi.ID),
		zap.Float64("amount", req.Amount))

	return &models.PaymentOrder{
		OrderID:      pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       req.Amount,
		Currency:     currency,
		Status:       string(pi.Status),
	}, nil
}

// OrderStatus fetches the current PaymentIntent status.
func (g *StripeGateway) OrderStatus(ctx context.Context, orderID string) (string, error) {
	if orderID == "" {
		return "", errors.New("missing order ID")
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := paymentintent.Get(orderID, params)
	if err != nil {
		return "", fmt.Errorf("payment gateway: %w", err)
	}
	return string(pi.Status), nil
}

// zeroDecimal lists currencies Stripe charges in whole units.
var zeroDecimal = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// MinorUnits converts a major-unit amount into the integer Stripe expects.
func MinorUnits(amount float64, currency string) int64 {
	if zeroDecimal[strings.ToLower(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	return nil
}
