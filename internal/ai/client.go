// Package ai builds activity-analysis prompts, calls the generative-AI
// provider, and maps its answers into recommendations.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends a prompt to the completion API and returns the raw response
// envelope as delivered by the provider.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ClientConfig holds the outbound endpoint settings.
type ClientConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// geminiClient talks to a Gemini-style completion endpoint.
type geminiClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewGeminiClient creates a Client for the configured endpoint.
func NewGeminiClient(cfg ClientConfig) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &geminiClient{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// generateRequest mirrors the provider's request schema.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// GenerateContent posts the prompt and returns the raw envelope body.
func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, respBody)
	}

	return string(respBody), nil
}
