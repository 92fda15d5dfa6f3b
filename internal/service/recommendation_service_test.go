package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/ai"
	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/repository"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubRecommendationRepo keeps recommendations in memory.
type stubRecommendationRepo struct {
	recs      []*domain.Recommendation
	createErr error
}

func (r *stubRecommendationRepo) Create(_ context.Context, rec *domain.Recommendation) (primitive.ObjectID, error) {
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	rec.ID = primitive.NewObjectID()
	stored := *rec
	r.recs = append(r.recs, &stored)
	return rec.ID, nil
}

func (r *stubRecommendationRepo) GetByUserID(_ context.Context, userID string) ([]domain.Recommendation, error) {
	out := []domain.Recommendation{}
	for _, rec := range r.recs {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *stubRecommendationRepo) GetByActivityID(_ context.Context, activityID string) (*domain.Recommendation, error) {
	for _, rec := range r.recs {
		if rec.ActivityID == activityID {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

// failingAIClient always errors, forcing the generator onto the fallback path.
type failingAIClient struct{}

func (failingAIClient) GenerateContent(context.Context, string) (string, error) {
	return "", errors.New("provider down")
}

func sampleActivity() *domain.Activity {
	return &domain.Activity{
		ID:             primitive.NewObjectID(),
		UserID:         "user-1",
		Type:           domain.ActivityCycling,
		Duration:       45,
		CaloriesBurned: 400,
		StartTime:      time.Now().UTC(),
	}
}

func TestHandlePersistsFallbackWhenProviderFails(t *testing.T) {
	repo := &stubRecommendationRepo{}
	svc := NewRecommendationService(repo, ai.NewGenerator(failingAIClient{}))

	activity := sampleActivity()
	require.NoError(t, svc.Handle(context.Background(), activity))

	require.Len(t, repo.recs, 1)
	stored := repo.recs[0]
	require.Equal(t, activity.ID.Hex(), stored.ActivityID)
	require.Equal(t, activity.UserID, stored.UserID)
	require.Equal(t, "Unable to generate detailed analysis", stored.Recommendation)
}

func TestHandleReportsStoreFailure(t *testing.T) {
	repo := &stubRecommendationRepo{createErr: errors.New("write concern failed")}
	svc := NewRecommendationService(repo, ai.NewGenerator(failingAIClient{}))

	err := svc.Handle(context.Background(), sampleActivity())
	require.Error(t, err)
}

func TestGetActivityRecommendationNotFound(t *testing.T) {
	svc := NewRecommendationService(&stubRecommendationRepo{}, ai.NewGenerator(failingAIClient{}))

	_, err := svc.GetActivityRecommendation(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrRecommendationNotFound)
}

func TestGetUserRecommendations(t *testing.T) {
	repo := &stubRecommendationRepo{}
	svc := NewRecommendationService(repo, ai.NewGenerator(failingAIClient{}))

	first := sampleActivity()
	second := sampleActivity()
	second.UserID = "user-2"
	require.NoError(t, svc.Handle(context.Background(), first))
	require.NoError(t, svc.Handle(context.Background(), second))

	recs, err := svc.GetUserRecommendations(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, first.ID.Hex(), recs[0].ActivityID)
}
