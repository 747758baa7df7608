package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"consultly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the "bookings"
// collection of db.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection("bookings")}
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.Status != models.BookingStatusCancelled {
		booking.SlotKey = SlotKey(booking.ConsultantID, booking.Date, booking.SlotID)
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// BookedMarkers returns the slot IDs of non-cancelled bookings for a
// consultant on date, in start order.
func (r *MongoBookingRepo) BookedMarkers(ctx context.Context, consultantID, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"consultantId": consultantID,
		"date":         date,
		"status":       bson.M{"$ne": models.BookingStatusCancelled},
	}
	opts := options.Find().
		SetProjection(bson.M{"slotId": 1}).
		SetSort(bson.D{{Key: "slotId", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	markers := []string{}
	for cursor.Next(ctx) {
		var b struct {
			SlotID string `bson:"slotId"`
		}
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booked slot: %w", err)
		}
		markers = append(markers, b.SlotID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return markers, nil
}

// UpdateStatus sets the booking status. Cancelling unsets slotKey so the
// slot can be booked again.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	if status == models.BookingStatusCancelled {
		update["$unset"] = bson.M{"slotKey": ""}
	}
	return r.updateOne(ctx, id, update)
}

// AttachPaymentOrder stores the payment order ID on the booking.
func (r *MongoBookingRepo) AttachPaymentOrder(ctx context.Context, id, orderID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paymentOrderId": orderID, "updatedAt": time.Now()}}
	return r.updateOne(ctx, id, update)
}

func (r *MongoBookingRepo) updateOne(ctx context.Context, id string, update bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
