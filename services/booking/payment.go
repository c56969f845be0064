package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// --- Interfaces ---
type PaymentProcessor interface {
	// Charge authorizes and captures the given amount. A declined card is
	// reported as *DeclinedError; any other error is a processor/service
	// failure.
	Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
	// Refund reverses a captured payment by its processor reference.
	Refund(ctx context.Context, paymentID string) error
	// CreateIntent prepares a payment for client-side confirmation and
	// returns its client secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// DeclinedError marks a payment the processor refused (as opposed to a
// processor outage).
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

// --- Stripe implementation ---
type StripePaymentProcessor struct {
	logger *zap.Logger
}

func NewStripePaymentProcessor(logger *zap.Logger) *StripePaymentProcessor {
	return &StripePaymentProcessor{logger: logger}
}

func (p *StripePaymentProcessor) Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	if req.PaymentMethod == "" {
		return nil, errors.New("missing payment method")
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethod),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			p.logger.Warn("Card declined",
				zap.String("code", string(stripeErr.Code)),
				zap.String("declineCode", string(stripeErr.DeclineCode)))
			return nil, &DeclinedError{Reason: stripeErr.Msg}
		}
		return nil, fmt.Errorf("stripe charge failed: %w", err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, &DeclinedError{Reason: fmt.Sprintf("payment not completed (status %s)", pi.Status)}
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
		PaymentID: pi.ID,
		CreatedAt: time.Now(),
	}
	p.logger.Info("Card payment successful",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID))
	return inv, nil
}

func (p *StripePaymentProcessor) Refund(ctx context.Context, paymentID string) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentID),
	}
	params.Context = ctx

	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("stripe refund failed for %s: %w", paymentID, err)
	}
	p.logger.Info("Payment refunded", zap.String("paymentIntent", paymentID))
	return nil
}

func (p *StripePaymentProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", errors.New("invalid payment amount")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe intent creation failed: %w", err)
	}
	return pi.ClientSecret, nil
}
