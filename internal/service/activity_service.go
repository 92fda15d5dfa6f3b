package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/events"
	"github.com/Pasindu599/Fitness-App/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidUser      = errors.New("invalid user")
)

// TrackActivityInput carries the fields of a track request into the service.
type TrackActivityInput struct {
	UserID            string
	Type              domain.ActivityType
	Duration          int
	CaloriesBurned    int
	StartTime         time.Time
	AdditionalMetrics map[string]interface{}
}

// ActivityService orchestrates validation, persistence, event publication,
// and response shaping for activity tracking.
type ActivityService interface {
	TrackActivity(ctx context.Context, input TrackActivityInput) (*domain.Activity, error)
	GetUserActivities(ctx context.Context, userID string) ([]domain.Activity, error)
	GetActivityByID(ctx context.Context, activityID primitive.ObjectID) (*domain.Activity, error)
}

// activityService implements the ActivityService interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	validator    UserValidator
	publisher    events.Publisher
}

// NewActivityService creates a new instance of activityService.
func NewActivityService(activityRepo repository.ActivityRepository, validator UserValidator, publisher events.Publisher) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		validator:    validator,
		publisher:    publisher,
	}
}

// TrackActivity validates the owning user, persists the activity, and
// publishes the persisted record to the event channel. The store write
// happens before the publish; a publish failure propagates to the caller
// without rolling the write back.
func (s *activityService) TrackActivity(ctx context.Context, input TrackActivityInput) (*domain.Activity, error) {
	valid, err := s.validator.ValidateUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUser, input.UserID)
	}

	activity := &domain.Activity{
		UserID:            input.UserID,
		Type:              input.Type,
		Duration:          input.Duration,
		CaloriesBurned:    input.CaloriesBurned,
		StartTime:         input.StartTime,
		AdditionalMetrics: input.AdditionalMetrics,
	}

	activityID, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, err
	}

	saved, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PublishActivity(ctx, saved); err != nil {
		return nil, err
	}

	return saved, nil
}

// GetUserActivities returns all activities for a user, in store-native order.
// A user with no activities gets an empty slice, not an error.
func (s *activityService) GetUserActivities(ctx context.Context, userID string) ([]domain.Activity, error) {
	activities, err := s.activityRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivityByID retrieves a single activity.
func (s *activityService) GetActivityByID(ctx context.Context, activityID primitive.ObjectID) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}
