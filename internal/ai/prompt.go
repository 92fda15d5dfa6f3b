package ai

import (
	"fmt"

	"github.com/Pasindu599/Fitness-App/internal/domain"
)

const promptTemplate = `Analyze this fitness activity and provide detailed recommendations in the following EXACT JSON format:
{
  "analysis": {
    "overall": "Overall analysis here",
    "pace": "Pace analysis here",
    "heartRate": "Heart rate analysis here",
    "caloriesBurned": "Calories analysis here"
  },
  "improvements": [
    {
      "area": "Area name",
      "recommendation": "Detailed recommendation"
    }
  ],
  "suggestions": [
    {
      "workout": "Workout name",
      "description": "Detailed workout description"
    }
  ],
  "safety": [
    "Safety point 1",
    "Safety point 2"
  ]
}

Analyze this activity:
Activity type: %s
Duration: %d minutes
Calories Burned: %d
Additional Metrics: %v

Provide detailed analysis focusing on performance and improvements.
Ensure the response follows the JSON format shown above.`

// BuildPrompt formats the activity into the fixed analysis prompt. The same
// activity always yields the same prompt.
func BuildPrompt(activity *domain.Activity) string {
	return fmt.Sprintf(promptTemplate,
		activity.Type,
		activity.Duration,
		activity.CaloriesBurned,
		activity.AdditionalMetrics,
	)
}
