package packageBookingRepo

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

// MongoPackageBookingRepo implements PackageBookingRepository using MongoDB.
type MongoPackageBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageBookingRepo creates a PackageBookingRepository backed by the
// given database.
func NewMongoPackageBookingRepo(db *mongo.Database) PackageBookingRepository {
	repo := &MongoPackageBookingRepo{coll: db.Collection("package_bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPackageBookingRepo) ensureIndexes() error {
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

// Create validates, normalizes and inserts a new package booking document.
func (r *MongoPackageBookingRepo) Create(booking *models.PackageBooking) (*models.PackageBooking, error) {
	booking.Normalize()
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create package booking: %w", err)
	}
	return booking, nil
}

// GetAll retrieves all package booking documents.
func (r *MongoPackageBookingRepo) GetAll() ([]models.PackageBooking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve package bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.PackageBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode package bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a package booking by its unique ID.
func (r *MongoPackageBookingRepo) GetByID(id string) (*models.PackageBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.PackageBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("package booking", id)
		}
		return nil, fmt.Errorf("failed to fetch package booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Update overlays the update onto the stored document, re-validates the
// merged payload and persists all mutable fields.
func (r *MongoPackageBookingRepo) Update(id string, update models.PackageBookingUpdate) (*models.PackageBooking, error) {
	booking, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	booking.ApplyUpdate(update)
	if err := booking.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"package":   booking.Package,
		"email":     booking.Email,
		"contact":   booking.Contact,
		"passenger": booking.Passenger,
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update package booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return nil, models.NewNotFoundError("package booking", id)
	}
	return booking, nil
}

// UpdatePayment replaces only the payment amount and status.
func (r *MongoPackageBookingRepo) UpdatePayment(id string, payment models.PaymentUpdate) (*models.PackageBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"payment_amount": payment.PaymentAmount,
		"payment_status": payment.PaymentStatus,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.PackageBooking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("package booking", id)
		}
		return nil, fmt.Errorf("failed to update payment for package booking %s: %w", id, err)
	}
	return &booking, nil
}
