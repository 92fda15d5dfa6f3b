package repository

import (
	"context"

	"github.com/Pasindu599/Fitness-App/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ActivityRepository defines the interface for interacting with activity data.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Activity, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Activity, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByKeycloakID(ctx context.Context, keycloakID string) (bool, error)
}

// RecommendationRepository defines the interface for interacting with
// AI-generated recommendations.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *domain.Recommendation) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID string) ([]domain.Recommendation, error)
	GetByActivityID(ctx context.Context, activityID string) (*domain.Recommendation, error)
}
