package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubRecommendationService implements service.RecommendationService for handler tests.
type stubRecommendationService struct {
	recs []domain.Recommendation
}

func (s *stubRecommendationService) Handle(context.Context, *domain.Activity) error { return nil }

func (s *stubRecommendationService) GetUserRecommendations(_ context.Context, userID string) ([]domain.Recommendation, error) {
	out := []domain.Recommendation{}
	for _, rec := range s.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubRecommendationService) GetActivityRecommendation(_ context.Context, activityID string) (*domain.Recommendation, error) {
	for _, rec := range s.recs {
		if rec.ActivityID == activityID {
			copied := rec
			return &copied, nil
		}
	}
	return nil, service.ErrRecommendationNotFound
}

func newRecommendationRouter(svc *stubRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewRecommendationHandler(svc)
	router.GET("/api/recommendations/user/:userId", handler.GetUserRecommendations)
	router.GET("/api/recommendations/activity/:activityId", handler.GetActivityRecommendation)
	return router
}

func TestGetActivityRecommendation(t *testing.T) {
	rec := domain.Recommendation{
		ID:             primitive.NewObjectID(),
		ActivityID:     primitive.NewObjectID().Hex(),
		UserID:         "user-1",
		ActivityType:   domain.ActivityRunning,
		Recommendation: "Overall: good session",
		Improvements:   []string{"Cadence: quicker steps"},
		Suggestions:    []string{"Tempo run: 20 minutes"},
		Safety:         []string{"Warm up first"},
		CreatedAt:      time.Now().UTC(),
	}
	router := newRecommendationRouter(&stubRecommendationService{recs: []domain.Recommendation{rec}})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/activity/"+rec.ActivityID, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, rec.ActivityID, resp.ActivityID)
	require.Equal(t, rec.Improvements, resp.Improvements)
	require.Equal(t, rec.Safety, resp.Safety)
}

func TestGetActivityRecommendationNotFound(t *testing.T) {
	router := newRecommendationRouter(&stubRecommendationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/activity/"+primitive.NewObjectID().Hex(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUserRecommendationsEmpty(t *testing.T) {
	router := newRecommendationRouter(&stubRecommendationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations/user/nobody", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, "[]", rr.Body.String())
}
