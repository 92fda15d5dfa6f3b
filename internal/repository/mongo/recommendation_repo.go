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

const recommendationCollectionName = "recommendations"

// mongoRecommendationRepository implements repository.RecommendationRepository using MongoDB.
type mongoRecommendationRepository struct {
	collection *mongo.Collection
}

// NewMongoRecommendationRepository creates a new instance of mongoRecommendationRepository.
func NewMongoRecommendationRepository(db *mongo.Database) repository.RecommendationRepository {
	return &mongoRecommendationRepository{
		collection: db.Collection(recommendationCollectionName),
	}
}

// Create inserts a new recommendation. There is no update path; a
// recommendation is written once per AI analysis call.
func (r *mongoRecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) (primitive.ObjectID, error) {
	if rec.ActivityID == "" || rec.UserID == "" {
		return primitive.NilObjectID, errors.New("recommendation activity ID and user ID are required")
	}

	rec.ID = primitive.NewObjectID()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByUserID retrieves all recommendations generated for the given user.
func (r *mongoRecommendationRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	filter := bson.M{"userId": userID}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recs := []domain.Recommendation{}
	if err = cursor.All(ctx, &recs); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}

// GetByActivityID retrieves the recommendation generated for one activity.
func (r *mongoRecommendationRepository) GetByActivityID(ctx context.Context, activityID string) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	filter := bson.M{"activityId": activityID}

	err := r.collection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// EnsureRecommendationIndexes creates necessary indexes for the recommendations collection.
// Call this once during application startup.
func EnsureRecommendationIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "activityId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// Index creation failure is not fatal for serving traffic.
	}
}
