package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
	"github.com/Pasindu599/Fitness-App/internal/service"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves stored AI recommendations.
type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendationResponse is the DTO for returning recommendation details.
type RecommendationResponse struct {
	ID             string              `json:"id"`
	ActivityID     string              `json:"activityId"`
	UserID         string              `json:"userId"`
	ActivityType   domain.ActivityType `json:"activityType"`
	Recommendation string              `json:"recommendation"`
	Improvements   []string            `json:"improvements"`
	Suggestions    []string            `json:"suggestions"`
	Safety         []string            `json:"safety"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// MapRecommendationToResponse converts a domain.Recommendation to its DTO.
func MapRecommendationToResponse(rec *domain.Recommendation) RecommendationResponse {
	if rec == nil {
		return RecommendationResponse{}
	}
	return RecommendationResponse{
		ID:             rec.ID.Hex(),
		ActivityID:     rec.ActivityID,
		UserID:         rec.UserID,
		ActivityType:   rec.ActivityType,
		Recommendation: rec.Recommendation,
		Improvements:   rec.Improvements,
		Suggestions:    rec.Suggestions,
		Safety:         rec.Safety,
		CreatedAt:      rec.CreatedAt,
	}
}

// MapRecommendationsToResponse converts a slice of recommendations to DTOs.
func MapRecommendationsToResponse(recs []domain.Recommendation) []RecommendationResponse {
	responses := make([]RecommendationResponse, len(recs))
	for i, rec := range recs {
		responses[i] = MapRecommendationToResponse(&rec)
	}
	return responses
}

// GetUserRecommendations godoc
// @Summary Get all recommendations for a user
// @Tags Recommendations
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} RecommendationResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /recommendations/user/{userId} [get]
func (h *RecommendationHandler) GetUserRecommendations(c *gin.Context) {
	recs, err := h.recommendationService.GetUserRecommendations(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve recommendations.")
		return
	}

	c.JSON(http.StatusOK, MapRecommendationsToResponse(recs))
}

// GetActivityRecommendation godoc
// @Summary Get the recommendation for one activity
// @Tags Recommendations
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} RecommendationResponse
// @Failure 404 {object} gin.H "Recommendation not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /recommendations/activity/{activityId} [get]
func (h *RecommendationHandler) GetActivityRecommendation(c *gin.Context) {
	rec, err := h.recommendationService.GetActivityRecommendation(c.Request.Context(), c.Param("activityId"))
	if err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve recommendation.")
		}
		return
	}

	c.JSON(http.StatusOK, MapRecommendationToResponse(rec))
}
