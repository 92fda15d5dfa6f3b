package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType enumerates the kinds of activities users can log.
type ActivityType string

const (
	ActivityRunning        ActivityType = "RUNNING"
	ActivityWalking        ActivityType = "WALKING"
	ActivityCycling        ActivityType = "CYCLING"
	ActivitySwimming       ActivityType = "SWIMMING"
	ActivityWeightTraining ActivityType = "WEIGHT_TRAINING"
	ActivityYoga           ActivityType = "YOGA"
	ActivityHike           ActivityType = "HIKE"
	ActivityCardio         ActivityType = "CARDIO"
	ActivityStretching     ActivityType = "STRETCHING"
	ActivityOther          ActivityType = "OTHER"
)

// IsValid reports whether t is one of the known activity types.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityRunning, ActivityWalking, ActivityCycling, ActivitySwimming,
		ActivityWeightTraining, ActivityYoga, ActivityHike, ActivityCardio,
		ActivityStretching, ActivityOther:
		return true
	}
	return false
}

// Activity represents a single logged exercise session.
// Activities are immutable once tracked; there is no update path.
type Activity struct {
	ID                primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID            string                 `bson:"userId" json:"userId"`
	Type              ActivityType           `bson:"type" json:"type"`
	Duration          int                    `bson:"duration" json:"duration"` // minutes
	CaloriesBurned    int                    `bson:"caloriesBurned" json:"caloriesBurned"`
	StartTime         time.Time              `bson:"startTime" json:"startTime"`
	AdditionalMetrics map[string]interface{} `bson:"additionalMetrics,omitempty" json:"additionalMetrics,omitempty"`
	CreatedAt         time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time              `bson:"updatedAt" json:"updatedAt"`
}
