package service

import (
	"context"
	"errors"

	"github.com/Pasindu599/Fitness-App/internal/ai"
	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/repository"
)

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// RecommendationService generates and serves AI recommendations.
type RecommendationService interface {
	// Handle consumes one activity event: generate a recommendation and
	// persist it. Satisfies events.Handler.
	Handle(ctx context.Context, activity *domain.Activity) error
	GetUserRecommendations(ctx context.Context, userID string) ([]domain.Recommendation, error)
	GetActivityRecommendation(ctx context.Context, activityID string) (*domain.Recommendation, error)
}

// recommendationService implements the RecommendationService interface.
type recommendationService struct {
	recommendationRepo repository.RecommendationRepository
	generator          *ai.Generator
}

// NewRecommendationService creates a new instance of recommendationService.
func NewRecommendationService(recommendationRepo repository.RecommendationRepository, generator *ai.Generator) RecommendationService {
	return &recommendationService{
		recommendationRepo: recommendationRepo,
		generator:          generator,
	}
}

// Handle generates a recommendation for the activity and persists it.
// Generation itself cannot fail (it degrades to the fixed fallback); only a
// store failure is reported back to the consumer loop.
func (s *recommendationService) Handle(ctx context.Context, activity *domain.Activity) error {
	rec := s.generator.GenerateRecommendation(ctx, activity)

	_, err := s.recommendationRepo.Create(ctx, rec)
	return err
}

// GetUserRecommendations returns all stored recommendations for a user.
func (s *recommendationService) GetUserRecommendations(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	return s.recommendationRepo.GetByUserID(ctx, userID)
}

// GetActivityRecommendation returns the stored recommendation for one activity.
func (s *recommendationService) GetActivityRecommendation(ctx context.Context, activityID string) (*domain.Recommendation, error) {
	rec, err := s.recommendationRepo.GetByActivityID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecommendationNotFound
		}
		return nil, err
	}
	return rec, nil
}
