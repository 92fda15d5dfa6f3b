package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"

	"github.com/tidwall/gjson"
)

// Failure causes for response interpretation. Every cause is recovered into
// the same fixed fallback recommendation, but they stay distinct so each can
// be observed and tested on its own.
var (
	ErrTransport   = InterpretError("transport")
	ErrEnvelope    = InterpretError("envelope")
	ErrUnparseable = InterpretError("unparseable")
)

// InterpretError identifies why an AI response could not be used.
type InterpretError string

func (e InterpretError) Error() string {
	return "ai response " + string(e) + " failure"
}

// envelopeTextPath locates the model's text payload inside the provider envelope.
const envelopeTextPath = "candidates.0.content.parts.0.text"

// InterpretResponse maps the raw provider envelope into a Recommendation for
// the given activity. It returns a wrapped ErrEnvelope when the envelope does
// not carry a text payload and a wrapped ErrUnparseable when the payload is
// not the expected JSON document.
func InterpretResponse(activity *domain.Activity, rawResponse string) (*domain.Recommendation, error) {
	if !gjson.Valid(rawResponse) {
		return nil, fmt.Errorf("%w: envelope is not valid JSON", ErrEnvelope)
	}

	textNode := gjson.Get(rawResponse, envelopeTextPath)
	if !textNode.Exists() {
		return nil, fmt.Errorf("%w: no text at %s", ErrEnvelope, envelopeTextPath)
	}

	jsonContent := stripCodeFence(textNode.String())
	if !gjson.Valid(jsonContent) {
		return nil, fmt.Errorf("%w: payload after fence stripping is not valid JSON", ErrUnparseable)
	}

	analysis := gjson.Get(jsonContent, "analysis")

	var fullAnalysis strings.Builder
	appendAnalysisSection(&fullAnalysis, analysis, "overall", "Overall: ")
	appendAnalysisSection(&fullAnalysis, analysis, "pace", "Pace: ")
	appendAnalysisSection(&fullAnalysis, analysis, "heartRate", "Heart Rate: ")
	appendAnalysisSection(&fullAnalysis, analysis, "caloriesBurned", "Calories Burned: ")

	return &domain.Recommendation{
		ActivityID:     activity.ID.Hex(),
		UserID:         activity.UserID,
		ActivityType:   activity.Type,
		Recommendation: strings.TrimSpace(fullAnalysis.String()),
		Improvements:   extractPairs(gjson.Get(jsonContent, "improvements"), "area", "recommendation", "No improvements provided"),
		Suggestions:    extractPairs(gjson.Get(jsonContent, "suggestions"), "workout", "description", "No suggestions provided"),
		Safety:         extractStrings(gjson.Get(jsonContent, "safety"), "No safety provided"),
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// stripCodeFence removes a ```json fenced-code-block wrapper if present.
func stripCodeFence(text string) string {
	text = strings.ReplaceAll(text, "```json\n", "")
	text = strings.ReplaceAll(text, "\n```", "")
	return strings.TrimSpace(text)
}

// appendAnalysisSection appends "<prefix><value>\n\n" when the field is present.
func appendAnalysisSection(b *strings.Builder, analysis gjson.Result, key, prefix string) {
	value := analysis.Get(key)
	if !value.Exists() {
		return
	}
	b.WriteString(prefix)
	b.WriteString(value.String())
	b.WriteString("\n\n")
}

// extractPairs maps each array entry to "<first>: <second>". An absent or
// empty array yields a single placeholder entry.
func extractPairs(node gjson.Result, firstKey, secondKey, placeholder string) []string {
	entries := []string{}
	if node.IsArray() {
		for _, item := range node.Array() {
			entries = append(entries, fmt.Sprintf("%s: %s", item.Get(firstKey).String(), item.Get(secondKey).String()))
		}
	}
	if len(entries) == 0 {
		return []string{placeholder}
	}
	return entries
}

// extractStrings collects the array's string values as-is, substituting a
// single placeholder when absent or empty.
func extractStrings(node gjson.Result, placeholder string) []string {
	entries := []string{}
	if node.IsArray() {
		for _, item := range node.Array() {
			entries = append(entries, item.String())
		}
	}
	if len(entries) == 0 {
		return []string{placeholder}
	}
	return entries
}
