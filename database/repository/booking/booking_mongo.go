package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tripserver/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the given database.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create validates, normalizes and inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	booking.Normalize()
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// GetAll retrieves all booking documents.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Update overlays the update onto the stored document, re-validates the
// merged payload and persists all mutable fields.
func (r *MongoBookingRepo) Update(id string, update models.BookingUpdate) (*models.Booking, error) {
	booking, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	booking.ApplyUpdate(update)
	booking.Normalize()
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"email":      booking.Email,
		"contact":    booking.Contact,
		"from":       booking.From,
		"to":         booking.To,
		"date":       booking.Date,
		"start_date": booking.StartDate,
		"end_date":   booking.EndDate,
		"passenger":  booking.Passenger,
		"trip_type":  booking.TripType,
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, models.NewNotFoundError("booking", id)
	}
	return booking, nil
}

// UpdatePayment replaces only the payment amount and status.
func (r *MongoBookingRepo) UpdatePayment(id string, payment models.PaymentUpdate) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"payment_amount": payment.PaymentAmount,
		"payment_status": payment.PaymentStatus,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("failed to update payment for booking %s: %w", id, err)
	}
	return &booking, nil
}

// Delete removes a booking by ID and returns the removed document.
func (r *MongoBookingRepo) Delete(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return &booking, nil
}
