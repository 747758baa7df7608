package models

// PaymentRequest asks the gateway to open an order for a booking.
type PaymentRequest struct {
	BookingID   string
	UserID      string
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

// PaymentOrder is what the client needs to complete payment.
type PaymentOrder struct {
	OrderID      string  `json:"orderId"`
	ClientSecret string  `json:"clientSecret,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}
