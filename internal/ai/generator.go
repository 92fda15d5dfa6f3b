package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"
)

// Archiver stores raw provider responses for offline inspection.
type Archiver interface {
	ArchiveResponse(ctx context.Context, objectKey string, body []byte) error
}

// Generator produces a Recommendation for an activity. Failures of the
// provider call or of response interpretation never surface to the caller;
// they degrade to a fixed fallback recommendation instead.
type Generator struct {
	client   Client
	archiver Archiver
	logger   *log.Logger
}

// GeneratorOption configures optional behaviour for the Generator.
type GeneratorOption func(*Generator)

// WithArchiver enables raw-response archiving.
func WithArchiver(archiver Archiver) GeneratorOption {
	return func(g *Generator) {
		g.archiver = archiver
	}
}

// WithGeneratorLogger overrides the logger used to report degraded calls.
func WithGeneratorLogger(logger *log.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator constructs a Generator around the given provider client.
func NewGenerator(client Client, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client: client,
		logger: log.New(log.Writer(), "[ai] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateRecommendation asks the provider to analyze the activity and maps
// the answer into a Recommendation. Any failure yields the fixed fallback.
func (g *Generator) GenerateRecommendation(ctx context.Context, activity *domain.Activity) *domain.Recommendation {
	prompt := BuildPrompt(activity)

	rawResponse, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Printf("provider call failed for activity %s: %v", activity.ID.Hex(), err)
		recordFallback(fmt.Errorf("%w: %v", ErrTransport, err))
		return FallbackRecommendation(activity)
	}

	g.archive(ctx, activity, rawResponse)

	rec, err := InterpretResponse(activity, rawResponse)
	if err != nil {
		g.logger.Printf("uninterpretable response for activity %s: %v", activity.ID.Hex(), err)
		recordFallback(err)
		return FallbackRecommendation(activity)
	}

	generatedCounter.Inc()
	return rec
}

// archive writes the raw envelope to object storage, best effort.
func (g *Generator) archive(ctx context.Context, activity *domain.Activity, rawResponse string) {
	if g.archiver == nil {
		return
	}
	objectKey := fmt.Sprintf("ai-responses/%s/%s.json", activity.UserID, activity.ID.Hex())
	if err := g.archiver.ArchiveResponse(ctx, objectKey, []byte(rawResponse)); err != nil {
		g.logger.Printf("failed to archive response %s: %v", objectKey, err)
	}
}

// FallbackRecommendation returns the fixed recommendation used whenever AI
// processing fails, carrying the activity's identity fields.
func FallbackRecommendation(activity *domain.Activity) *domain.Recommendation {
	return &domain.Recommendation{
		ActivityID:   activity.ID.Hex(),
		UserID:       activity.UserID,
		ActivityType: activity.Type,
		Safety: []string{
			"Always warm up before exercise",
			"Stay hydrated",
			"Listen to your body",
		},
		Suggestions:    []string{"Continue with your current routine"},
		Improvements:   []string{"Consider consulting a fitness professional"},
		Recommendation: "Unable to generate detailed analysis",
		CreatedAt:      time.Now().UTC(),
	}
}

// recordFallback bumps the fallback counter labeled by failure cause.
func recordFallback(err error) {
	cause := "transport"
	switch {
	case errors.Is(err, ErrEnvelope):
		cause = "envelope"
	case errors.Is(err, ErrUnparseable):
		cause = "unparseable"
	}
	fallbackCounter.WithLabelValues(cause).Inc()
}
