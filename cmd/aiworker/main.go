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
	"github.com/Pasindu599/Fitness-App/internal/config"
	"github.com/Pasindu599/Fitness-App/internal/events"
	"github.com/Pasindu599/Fitness-App/internal/repository/mongo"
	"github.com/Pasindu599/Fitness-App/internal/service"
	"github.com/Pasindu599/Fitness-App/internal/storage"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// The AI worker consumes activity-created events, asks the generative-AI
// provider for an analysis of each activity, and persists the resulting
// recommendation (or the fixed fallback when the provider is unusable).
func main() {
	log.Println("Starting AI worker...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	recommendationRepo := mongo.NewMongoRecommendationRepository(appDB)

	client := ai.NewGeminiClient(ai.ClientConfig{
		APIURL: cfg.Gemini.APIURL,
		APIKey: cfg.Gemini.APIKey,
	})

	generatorOpts := []ai.GeneratorOption{}
	if cfg.Archive.Enabled {
		archive, err := storage.NewS3Archive(cfg.Archive)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize response archive: %v", err)
		}
		generatorOpts = append(generatorOpts, ai.WithArchiver(archive))
	}
	generator := ai.NewGenerator(client, generatorOpts...)

	recommendationService := service.NewRecommendationService(recommendationRepo, generator)

	reader := events.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	consumer := events.NewConsumer(reader, recommendationService)

	// Metrics share the API port convention but live on their own listener here.
	metricsSrv := &http.Server{Addr: ":9091", Handler: promhttp.Handler()}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server error: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("Consuming activity events (topic=%s, group=%s)", cfg.Kafka.Topic, cfg.Kafka.GroupID)
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("consumer stopped with error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down AI worker...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics server shutdown error: %v", err)
	}

	if err := consumer.Close(); err != nil {
		log.Printf("ERROR: Failed to close consumer: %v", err)
	}
	<-done

	log.Println("AI worker exiting.")
}
