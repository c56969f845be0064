package bookingRepo

import (
	"context"

	"salonbook/models"
)

// BookingRepository is the durability boundary for committed bookings.
// Once Insert returns nil the booking is considered permanent.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListFrom returns all bookings on or after the given yyyy-MM-dd date,
	// used to warm the availability index at startup.
	ListFrom(ctx context.Context, date string) ([]models.Booking, error)
}
