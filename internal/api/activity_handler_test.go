package api

import (
	"bytes"
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

// stubActivityService implements service.ActivityService for handler tests.
type stubActivityService struct {
	tracked    []service.TrackActivityInput
	activities map[primitive.ObjectID]*domain.Activity
	byUser     map[string][]domain.Activity
	trackErr   error
}

func newStubActivityService() *stubActivityService {
	return &stubActivityService{
		activities: make(map[primitive.ObjectID]*domain.Activity),
		byUser:     make(map[string][]domain.Activity),
	}
}

func (s *stubActivityService) TrackActivity(_ context.Context, input service.TrackActivityInput) (*domain.Activity, error) {
	s.tracked = append(s.tracked, input)
	if s.trackErr != nil {
		return nil, s.trackErr
	}
	now := time.Now().UTC()
	activity := &domain.Activity{
		ID:                primitive.NewObjectID(),
		UserID:            input.UserID,
		Type:              input.Type,
		Duration:          input.Duration,
		CaloriesBurned:    input.CaloriesBurned,
		StartTime:         input.StartTime,
		AdditionalMetrics: input.AdditionalMetrics,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	s.activities[activity.ID] = activity
	s.byUser[input.UserID] = append(s.byUser[input.UserID], *activity)
	return activity, nil
}

func (s *stubActivityService) GetUserActivities(_ context.Context, userID string) ([]domain.Activity, error) {
	activities, ok := s.byUser[userID]
	if !ok {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

func (s *stubActivityService) GetActivityByID(_ context.Context, activityID primitive.ObjectID) (*domain.Activity, error) {
	activity, ok := s.activities[activityID]
	if !ok {
		return nil, service.ErrActivityNotFound
	}
	return activity, nil
}

func newActivityRouter(svc *stubActivityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewActivityHandler(svc)
	router.POST("/api/activities", handler.TrackActivity)
	router.GET("/api/activities", handler.GetUserActivities)
	router.GET("/api/activities/:activityId", handler.GetActivityByID)
	return router
}

func TestTrackActivityHeaderOverridesBodyUserID(t *testing.T) {
	svc := newStubActivityService()
	router := newActivityRouter(svc)

	body, err := json.Marshal(map[string]interface{}{
		"userId":         "body-user",
		"type":           "RUNNING",
		"duration":       30,
		"caloriesBurned": 300,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderUserID, "header-user")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Len(t, svc.tracked, 1)
	require.Equal(t, "header-user", svc.tracked[0].UserID)

	var resp ActivityResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "header-user", resp.UserID)
	require.Equal(t, domain.ActivityRunning, resp.Type)
	require.NotEmpty(t, resp.ID)
	require.False(t, resp.CreatedAt.IsZero())
}

func TestTrackActivityUnknownTypeRejected(t *testing.T) {
	svc := newStubActivityService()
	router := newActivityRouter(svc)

	body := `{"userId":"u1","type":"PARKOUR","duration":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, svc.tracked)
}

func TestTrackActivityInvalidUserMapsTo400(t *testing.T) {
	svc := newStubActivityService()
	svc.trackErr = service.ErrInvalidUser
	router := newActivityRouter(svc)

	body := `{"userId":"u1","type":"YOGA","duration":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/activities", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUserActivitiesRequiresHeader(t *testing.T) {
	router := newActivityRouter(newStubActivityService())

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUserActivitiesEmptyArray(t *testing.T) {
	router := newActivityRouter(newStubActivityService())

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	req.Header.Set(HeaderUserID, "user-1")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, "[]", rr.Body.String())
}

func TestGetActivityByIDNotFound(t *testing.T) {
	router := newActivityRouter(newStubActivityService())

	req := httptest.NewRequest(http.MethodGet, "/api/activities/"+primitive.NewObjectID().Hex(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetActivityByIDBadFormat(t *testing.T) {
	router := newActivityRouter(newStubActivityService())

	req := httptest.NewRequest(http.MethodGet, "/api/activities/not-an-object-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetActivityByIDRoundTrip(t *testing.T) {
	svc := newStubActivityService()
	router := newActivityRouter(svc)

	created, err := svc.TrackActivity(context.Background(), service.TrackActivityInput{
		UserID:         "user-1",
		Type:           domain.ActivityRunning,
		Duration:       30,
		CaloriesBurned: 300,
		AdditionalMetrics: map[string]interface{}{
			"distanceKm": float64(5),
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/activities/"+created.ID.Hex(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ActivityResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, created.ID.Hex(), resp.ID)
	require.Equal(t, domain.ActivityRunning, resp.Type)
	require.Equal(t, 30, resp.Duration)
	require.Equal(t, 300, resp.CaloriesBurned)
	require.Equal(t, map[string]interface{}{"distanceKm": float64(5)}, resp.AdditionalMetrics)
}
