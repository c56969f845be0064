package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-day key format. Two instants on the
// same day must produce the same key.
const DateLayout = "2006-01-02"

// DateKey returns the canonical calendar-day key for t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate validates a yyyy-MM-dd string and returns it in canonical form.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateKey(t), nil
}

// PaymentStatus tracks how a booking was (or will be) paid.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"    // prepaid in full at booking time
	PaymentPending PaymentStatus = "pending" // pay on service day
)

// BookingRequest is a candidate booking submitted by a customer.
type BookingRequest struct {
	Date    string      `json:"date"` // yyyy-MM-dd
	Time    string      `json:"time"` // slot label, e.g. "09:00 AM"
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Email   string      `json:"email"`
	Service ServiceType `json:"service"`
	PayNow  bool        `json:"payNow"`
	// PaymentMethod is the processor's payment-method reference, required
	// when PayNow is set.
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// Booking represents a confirmed booking record. Immutable once created.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	Date          string        `bson:"date" json:"date"` // yyyy-MM-dd
	Time          string        `bson:"time" json:"time"` // slot label
	Name          string        `bson:"name" json:"name"`
	Phone         string        `bson:"phone" json:"phone"`
	Email         string        `bson:"email" json:"email"`
	Service       ServiceType   `bson:"service" json:"service"`
	TotalPrice    float64       `bson:"total_price" json:"total_price"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
	InvoiceID     string        `bson:"invoice_id,omitempty" json:"invoice_id,omitempty"`
	PaymentRef    string        `bson:"payment_ref,omitempty" json:"-"` // processor reference, kept for refunds
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}
