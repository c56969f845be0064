package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/availability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking engine. The availability
// store is the only authority on slot state; the engine is the only caller
// allowed to mutate it.
type DefaultBookingService struct {
	Store     *availability.Store
	Repo      bookingRepo.BookingRepository
	Payments  PaymentProcessor
	Catalog   SlotCatalog
	Reminders ReminderScheduler // optional
	Currency  string
	Logger    *zap.Logger
}

func (svc *DefaultBookingService) DaySchedule(date string) (*models.DaySchedule, error) {
	day, err := models.NormalizeDate(date)
	if err != nil {
		return nil, NewInvalidRequestError(err.Error())
	}

	blocked := svc.Store.BlockedSlots(day)
	catalog := svc.Catalog.DaySlots(day)

	slots := make([]models.SlotStatus, 0, len(catalog))
	for _, slot := range catalog {
		_, taken := blocked[slot]
		slots = append(slots, models.SlotStatus{Slot: slot, Booked: taken})
	}
	return &models.DaySchedule{Date: day, Slots: slots}, nil
}

// Book is single-pass: no outcome is retried internally, and every exit
// path leaves the store consistent (a provisional hold is released on any
// failure after Reserve).
func (svc *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	day, err := svc.validate(req)
	if err != nil {
		return nil, err
	}

	price, err := req.Service.Price()
	if err != nil {
		return nil, NewInvalidRequestError(err.Error())
	}

	// Hold the slot before charging so the customer can never be charged
	// for a slot that is already gone.
	if !svc.Store.Reserve(day, req.Time) {
		svc.Logger.Info("Slot already booked",
			zap.String("date", day), zap.String("slot", req.Time))
		return nil, NewSlotTakenError(day, req.Time)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.New().String(),
		Date:          day,
		Time:          req.Time,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Service:       req.Service,
		TotalPrice:    price,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
	}

	if req.PayNow {
		invoice, payErr := svc.Payments.Charge(ctx, models.PaymentRequest{
			Amount:        int64(price * 100),
			Currency:      svc.Currency,
			PaymentMethod: req.PaymentMethod,
			Description:   fmt.Sprintf("%s on %s at %s", req.Service.Label(), day, req.Time),
			Metadata:      map[string]string{"bookingId": booking.ID},
		})
		if payErr != nil {
			svc.Store.Release(day, req.Time)
			if declined, ok := payErr.(*DeclinedError); ok {
				svc.Logger.Info("Payment declined",
					zap.String("bookingId", booking.ID), zap.String("reason", declined.Reason))
				return nil, NewPaymentDeclinedError(declined.Reason)
			}
			svc.Logger.Error("Payment service failure",
				zap.String("bookingId", booking.ID), zap.Error(payErr))
			return nil, NewPaymentServiceError("payment could not be processed, please try again")
		}
		booking.PaymentStatus = models.PaymentPaid
		booking.InvoiceID = invoice.InvoiceID
		booking.PaymentRef = invoice.PaymentID
	}

	if err := svc.Repo.Insert(ctx, booking); err != nil {
		svc.Logger.Error("Booking persistence failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
		if booking.PaymentStatus == models.PaymentPaid {
			if refundErr := svc.Payments.Refund(ctx, booking.PaymentRef); refundErr != nil {
				svc.Logger.Error("Refund after persistence failure also failed",
					zap.String("bookingId", booking.ID), zap.Error(refundErr))
			}
		}
		svc.Store.Release(day, req.Time)
		return nil, NewPersistenceError("booking could not be saved, please try again")
	}

	if svc.Reminders != nil {
		if err := svc.Reminders.ScheduleReminder(*booking); err != nil {
			svc.Logger.Warn("Failed to schedule reminder",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	svc.Logger.Info("Booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("date", day),
		zap.String("slot", req.Time),
		zap.String("paymentStatus", string(booking.PaymentStatus)))
	return booking, nil
}

func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return svc.Repo.GetByID(ctx, id)
}

// WarmStore loads persisted bookings from today onward into the
// availability index. Called once at startup.
func (svc *DefaultBookingService) WarmStore(ctx context.Context) error {
	today := models.DateKey(time.Now())
	bookings, err := svc.Repo.ListFrom(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to warm availability index: %w", err)
	}
	svc.Store.Warm(bookings)
	svc.Logger.Info("Availability index warmed", zap.Int("bookings", len(bookings)))
	return nil
}

// validate enforces the completeness gate. An incomplete request causes no
// payment call and no store mutation.
func (svc *DefaultBookingService) validate(req models.BookingRequest) (string, error) {
	if strings.TrimSpace(req.Date) == "" {
		return "", NewInvalidRequestError("date is required")
	}
	day, err := models.NormalizeDate(req.Date)
	if err != nil {
		return "", NewInvalidRequestError(err.Error())
	}
	if strings.TrimSpace(req.Time) == "" {
		return "", NewInvalidRequestError("time is required")
	}
	if !svc.slotInCatalog(day, req.Time) {
		return "", NewInvalidRequestError(fmt.Sprintf("unknown time slot %q", req.Time))
	}
	if strings.TrimSpace(req.Name) == "" {
		return "", NewInvalidRequestError("name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return "", NewInvalidRequestError("phone is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return "", NewInvalidRequestError("email is required")
	}
	if !req.Service.Valid() {
		return "", NewInvalidRequestError(fmt.Sprintf("unknown service %q", string(req.Service)))
	}
	if req.PayNow && strings.TrimSpace(req.PaymentMethod) == "" {
		return "", NewInvalidRequestError("payment method is required to pay now")
	}
	return day, nil
}

func (svc *DefaultBookingService) slotInCatalog(day, slot string) bool {
	for _, s := range svc.Catalog.DaySlots(day) {
		if s == slot {
			return true
		}
	}
	return false
}
