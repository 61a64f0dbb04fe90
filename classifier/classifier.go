// Package classifier buckets feedback into coarse sentiment categories.
package classifier

import "github.com/SUDD-dawg/Low-Risk/models"

const (
	CategoryGood         = "good"
	CategoryConstructive = "constructive"
)

// Fixed confidence values. These are constants of the rule table, not
// derived from any model.
const (
	goodConfidence         = 0.9
	constructiveConfidence = 0.8
)

type Classifier interface {
	Classify(overallExperience, helpfulRating string) (category string, confidence float64)
}

// RuleClassifier assigns a category from the two rating fields alone: a
// positive experience rated helpful is "good", everything else is
// "constructive". The suggestion text is never inspected.
type RuleClassifier struct{}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{}
}

func (c *RuleClassifier) Classify(overallExperience, helpfulRating string) (string, float64) {
	positiveExp := overallExperience == models.ExperienceExcellent || overallExperience == models.ExperienceGood
	positiveRating := helpfulRating == models.HelpfulVery || helpfulRating == models.HelpfulGood

	if positiveExp && positiveRating {
		return CategoryGood, goodConfidence
	}
	return CategoryConstructive, constructiveConfidence
}
