package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityHandler holds the activity service dependency.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// --- DTOs for API (Data Transfer Objects) ---

// TrackActivityRequest defines the expected JSON for tracking an activity.
// The X-User-ID header overrides the body's userId when present.
type TrackActivityRequest struct {
	UserID            string                 `json:"userId"`
	Type              domain.ActivityType    `json:"type" binding:"required"`
	Duration          int                    `json:"duration" binding:"required,min=1"`
	CaloriesBurned    int                    `json:"caloriesBurned" binding:"omitempty,min=0"`
	StartTime         time.Time              `json:"startTime"`
	AdditionalMetrics map[string]interface{} `json:"additionalMetrics"`
}

// ActivityResponse is the DTO for returning activity details.
type ActivityResponse struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"userId"`
	Type              domain.ActivityType    `json:"type"`
	Duration          int                    `json:"duration"`
	CaloriesBurned    int                    `json:"caloriesBurned"`
	StartTime         time.Time              `json:"startTime"`
	AdditionalMetrics map[string]interface{} `json:"additionalMetrics,omitempty"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

// MapActivityToResponse converts a domain.Activity to ActivityResponse DTO.
func MapActivityToResponse(activity *domain.Activity) ActivityResponse {
	if activity == nil {
		return ActivityResponse{}
	}
	return ActivityResponse{
		ID:                activity.ID.Hex(),
		UserID:            activity.UserID,
		Type:              activity.Type,
		Duration:          activity.Duration,
		CaloriesBurned:    activity.CaloriesBurned,
		StartTime:         activity.StartTime,
		AdditionalMetrics: activity.AdditionalMetrics,
		CreatedAt:         activity.CreatedAt,
		UpdatedAt:         activity.UpdatedAt,
	}
}

// MapActivitiesToResponse converts a slice of domain.Activity to response DTOs.
func MapActivitiesToResponse(activities []domain.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = MapActivityToResponse(&activity)
	}
	return responses
}

// --- Handler Methods ---

// TrackActivity godoc
// @Summary Track a new activity
// @Description Persists an activity for the calling user and publishes an event for downstream analysis.
// @Tags Activities
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Caller identity, overrides body userId"
// @Param activity body TrackActivityRequest true "Activity details"
// @Success 201 {object} ActivityResponse "Activity tracked successfully"
// @Failure 400 {object} gin.H "Invalid input or invalid user"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /activities [post]
func (h *ActivityHandler) TrackActivity(c *gin.Context) {
	var req TrackActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if headerUserID := userIDFromHeader(c); headerUserID != "" {
		req.UserID = headerUserID
	}
	if req.UserID == "" {
		abortWithError(c, http.StatusBadRequest, "Missing user ID (header or body)")
		return
	}
	if !req.Type.IsValid() {
		abortWithError(c, http.StatusBadRequest, "Unknown activity type: "+string(req.Type))
		return
	}

	activity, err := h.activityService.TrackActivity(c.Request.Context(), service.TrackActivityInput{
		UserID:            req.UserID,
		Type:              req.Type,
		Duration:          req.Duration,
		CaloriesBurned:    req.CaloriesBurned,
		StartTime:         req.StartTime,
		AdditionalMetrics: req.AdditionalMetrics,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidUser) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to track activity.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapActivityToResponse(activity))
}

// GetUserActivities godoc
// @Summary Get the calling user's activities
// @Description Retrieves all activities owned by the user identified by the X-User-ID header.
// @Tags Activities
// @Produce json
// @Param X-User-ID header string true "Caller identity"
// @Success 200 {array} ActivityResponse "List of activities"
// @Failure 400 {object} gin.H "Missing identity header"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /activities [get]
func (h *ActivityHandler) GetUserActivities(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activities, err := h.activityService.GetUserActivities(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve activities.")
		return
	}

	c.JSON(http.StatusOK, MapActivitiesToResponse(activities))
}

// GetActivityByID godoc
// @Summary Get one activity
// @Tags Activities
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} gin.H "Invalid ID format"
// @Failure 404 {object} gin.H "Activity not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /activities/{activityId} [get]
func (h *ActivityHandler) GetActivityByID(c *gin.Context) {
	activityID, err := primitive.ObjectIDFromHex(c.Param("activityId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid activity ID format.")
		return
	}

	activity, err := h.activityService.GetActivityByID(c.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve activity.")
		}
		return
	}

	c.JSON(http.StatusOK, MapActivityToResponse(activity))
}
