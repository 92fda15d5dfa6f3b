package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activityCollectionName = "activities"

// mongoActivityRepository implements repository.ActivityRepository using MongoDB.
type mongoActivityRepository struct {
	collection *mongo.Collection
}

// NewMongoActivityRepository creates a new instance of mongoActivityRepository.
// It expects a connected *mongo.Database instance.
func NewMongoActivityRepository(db *mongo.Database) repository.ActivityRepository {
	return &mongoActivityRepository{
		collection: db.Collection(activityCollectionName),
	}
}

// Create inserts a new activity into the database.
func (r *mongoActivityRepository) Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error) {
	if activity.UserID == "" {
		return primitive.NilObjectID, errors.New("activity user ID is required")
	}

	activity.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves an activity by its MongoDB ObjectID.
func (r *mongoActivityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Activity, error) {
	var activity domain.Activity
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&activity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// GetByUserID retrieves all activities owned by the given user, in
// store-native order. Returns an empty slice when the user has none.
func (r *mongoActivityRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Activity, error) {
	filter := bson.M{"userId": userID}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []domain.Activity{}
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// EnsureActivityIndexes creates necessary indexes for the activities collection.
// Call this once during application startup.
func EnsureActivityIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}}, // Find activities by owner
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Index creation failure is not fatal for serving traffic.
	}
}
