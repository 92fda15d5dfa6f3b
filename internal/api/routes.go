package api

import (
	"net/http"

	"github.com/Pasindu599/Fitness-App/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	activityService service.ActivityService,
	userService service.UserService,
	recommendationService service.RecommendationService,
) {

	activityHandler := NewActivityHandler(activityService)
	userHandler := NewUserHandler(userService)
	recommendationHandler := NewRecommendationHandler(recommendationService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		activityGroup := apiGroup.Group("/activities")
		{
			activityGroup.POST("", activityHandler.TrackActivity)
			activityGroup.GET("", activityHandler.GetUserActivities)
			activityGroup.GET("/:activityId", activityHandler.GetActivityByID)
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/register", userHandler.Register)
			userGroup.GET("/:userId", userHandler.GetUserProfile)
			userGroup.GET("/:userId/validate", userHandler.ValidateUser)
		}

		recommendationGroup := apiGroup.Group("/recommendations")
		{
			recommendationGroup.GET("/user/:userId", recommendationHandler.GetUserRecommendations)
			recommendationGroup.GET("/activity/:activityId", recommendationHandler.GetActivityRecommendation)
		}
	}
}
