package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is AI-generated feedback tied to one Activity.
// The list fields are never empty: when the provider returns nothing for a
// section, a single placeholder entry takes its place.
type Recommendation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ActivityID     string             `bson:"activityId" json:"activityId"`
	UserID         string             `bson:"userId" json:"userId"`
	ActivityType   ActivityType       `bson:"activityType" json:"activityType"`
	Recommendation string             `bson:"recommendation" json:"recommendation"`
	Improvements   []string           `bson:"improvements" json:"improvements"`
	Suggestions    []string           `bson:"suggestions" json:"suggestions"`
	Safety         []string           `bson:"safety" json:"safety"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
