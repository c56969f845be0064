package booking

import (
	"context"

	"salonbook/models"
)

// BookingService is the booking engine surface consumed by the handlers.
type BookingService interface {
	// DaySchedule classifies the day's full slot catalog against the
	// availability index. Read only.
	DaySchedule(date string) (*models.DaySchedule, error)
	// Book runs a single submission attempt: validate, reserve, optionally
	// charge, persist. Every failure is a *BookingError with a distinct code.
	Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	// GetBooking fetches a committed booking by ID.
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
}

// ReminderScheduler schedules an appointment reminder for a committed
// booking. Failures are non-fatal to the booking.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}
