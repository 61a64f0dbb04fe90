package models

import "time"

// Feedback rating levels as they appear on the form.
const (
	ExperienceExcellent = "Excellent"
	ExperienceGood      = "Good"
	ExperienceAverage   = "Average"
	ExperiencePoor      = "Poor"

	HelpfulVery    = "Very"
	HelpfulGood    = "Good"
	HelpfulAverage = "Average"
	HelpfulPoor    = "Poor"
)

// Feedback is a submitted feedback record. Category, Confidence and
// Processed stay unset until the categorization step runs, then all three
// are written together exactly once.
type Feedback struct {
	ID                int64     `json:"id" db:"id" bson:"id"`
	OverallExperience string    `json:"overall_experience" db:"overall_experience" bson:"overall_experience"`
	HelpfulRating     string    `json:"helpful_rating" db:"helpful_rating" bson:"helpful_rating"`
	Suggestions       string    `json:"suggestions" db:"suggestions" bson:"suggestions"`
	Category          *string   `json:"category" db:"category" bson:"category,omitempty"`
	Confidence        *float64  `json:"confidence" db:"confidence" bson:"confidence,omitempty"`
	Processed         bool      `json:"processed" db:"processed" bson:"processed"`
	CreatedAt         time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}

func ValidExperience(level string) bool {
	switch level {
	case ExperienceExcellent, ExperienceGood, ExperienceAverage, ExperiencePoor:
		return true
	}
	return false
}

func ValidHelpfulRating(level string) bool {
	switch level {
	case HelpfulVery, HelpfulGood, HelpfulAverage, HelpfulPoor:
		return true
	}
	return false
}
