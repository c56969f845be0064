package models

import "time"

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	Amount        int64 // minor currency units
	Currency      string
	PaymentMethod string
	Description   string
	Metadata      map[string]string
}

type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoice_id"`
	Amount    int64     `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"`
	PaymentID string    `bson:"payment_id" json:"payment_id"` // processor reference
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
