package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/ai"
	"github.com/Pasindu599/Fitness-App/internal/api"
	"github.com/Pasindu599/Fitness-App/internal/config"
	"github.com/Pasindu599/Fitness-App/internal/events"
	"github.com/Pasindu599/Fitness-App/internal/repository/mongo"
	"github.com/Pasindu599/Fitness-App/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Fitness Activity API
// @version 1.0
// @description API for tracking activities, registering users, and serving AI recommendations.
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("Starting Fitness App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureActivityIndexes(ctx, appDB.Collection("activities"))
		mongo.EnsureRecommendationIndexes(ctx, appDB.Collection("recommendations"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Event Publisher ---
	log.Printf("Initializing Kafka publisher (topic=%s, key=%s)...", cfg.Kafka.Topic, cfg.Kafka.RoutingKey)
	publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.RoutingKey)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("ERROR: Failed to close Kafka publisher: %v", err)
		}
	}()

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	activityRepo := mongo.NewMongoActivityRepository(appDB)
	userRepo := mongo.NewMongoUserRepository(appDB)
	recommendationRepo := mongo.NewMongoRecommendationRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	var validator service.UserValidator = service.NewAlwaysValidValidator()
	if cfg.Validation.Enabled {
		validator = service.NewKeycloakValidator(userRepo)
	}
	activityService := service.NewActivityService(activityRepo, validator, publisher)
	userService := service.NewUserService(userRepo)
	// The API only reads stored recommendations; generation runs in the AI
	// worker, which consumes the activity topic.
	generator := ai.NewGenerator(ai.NewGeminiClient(ai.ClientConfig{
		APIURL: cfg.Gemini.APIURL,
		APIKey: cfg.Gemini.APIKey,
	}))
	recommendationService := service.NewRecommendationService(recommendationRepo, generator)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, activityService, userService, recommendationService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
