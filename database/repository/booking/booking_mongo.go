package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/config"
	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given ID.
var ErrNotFound = errors.New("booking not found")

// MongoBookingRepo is the MongoDB-backed implementation of BookingRepository.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a repo bound to the bookings collection.
func NewMongoBookingRepo() *MongoBookingRepo {
	coll := database.MongoClient.
		Database(config.AppConfig.DatabaseName).
		Collection("bookings")
	return &MongoBookingRepo{coll: coll}
}

func (repo *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slot already persisted for %s %s: %w", booking.Date, booking.Time, err)
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) ListFrom(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"date": bson.M{"$gte": date}})
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
