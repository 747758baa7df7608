package consultantRepo

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

// MongoConsultantRepo implements ConsultantRepository using MongoDB.
type MongoConsultantRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultantRepo creates a ConsultantRepository backed by the
// "consultants" collection of db.
func NewMongoConsultantRepo(db *mongo.Database) *MongoConsultantRepo {
	return &MongoConsultantRepo{coll: db.Collection("consultants")}
}

func (r *MongoConsultantRepo) findOne(ctx context.Context, id string, projection bson.M) (*models.Consultant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(projection)

	var consultant models.Consultant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&consultant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch consultant with id %s: %w", id, err)
	}
	return &consultant, nil
}

// GetAvailability projects only the availability fields.
func (r *MongoConsultantRepo) GetAvailability(ctx context.Context, id string) (*models.ConsultantAvailability, error) {
	c, err := r.findOne(ctx, id, bson.M{"id": 1, "availability": 1})
	if err != nil {
		return nil, err
	}
	return &c.Availability, nil
}

// Create inserts a new consultant document.
func (r *MongoConsultantRepo) Create(ctx context.Context, consultant *models.Consultant) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	consultant.CreatedAt = now
	consultant.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, consultant); err != nil {
		return fmt.Errorf("failed to create consultant: %w", err)
	}
	return nil
}

// UpdateAvailability overwrites the availability sub-document.
func (r *MongoConsultantRepo) UpdateAvailability(ctx context.Context, id string, availability models.ConsultantAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"availability": availability,
		"updatedAt":    time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for consultant %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
