// Package risk scores a request's text for sensitivity using fixed keyword
// lists. Classification is pure and deterministic.
package risk

import (
	"strings"

	"approvals/internal/models"
)

const (
	highWeight   = 20
	mediumWeight = 10
	maxScore     = 100

	highFloor   = 60
	mediumFloor = 20
)

// HighKeywords each add 20 points and force a HIGH classification.
var HighKeywords = []string{
	"urgent", "emergency", "override", "bypass", "admin", "root",
	"privilege", "escalate", "unrestricted", "sensitive", "confidential",
	"executive", "ceo", "board", "unlimited", "mass", "bulk",
	"all users", "system-wide",
}

// MediumKeywords each add 10 points and force at least MEDIUM.
var MediumKeywords = []string{
	"temporary", "extended", "multiple", "large", "all day",
	"overnight", "weekend", "special", "exception",
}

// Classification is the classifier's verdict for one request.
type Classification struct {
	Level   models.RiskLevel `json:"risk_level"`
	Score   int              `json:"risk_score"`
	Factors []string         `json:"risk_factors"`
}

// Classify scans title and description for risk keywords. Matching is a
// case-insensitive substring test; factors list high matches before medium
// ones, each in keyword-list order.
func Classify(title, description string) Classification {
	text := strings.ToLower(title + " " + description)

	high := matches(text, HighKeywords)
	medium := matches(text, MediumKeywords)

	score := min(len(high)*highWeight+len(medium)*mediumWeight, maxScore)

	factors := make([]string, 0, len(high)+len(medium))
	factors = append(factors, high...)
	factors = append(factors, medium...)

	var level models.RiskLevel
	switch {
	case score >= highFloor || len(high) > 0:
		level = models.RiskHigh
		score = max(score, highFloor)
	case score >= mediumFloor || len(medium) > 0:
		level = models.RiskMedium
		score = max(score, mediumFloor)
	default:
		level = models.RiskLow
	}

	return Classification{Level: level, Score: score, Factors: factors}
}

func matches(text string, keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			out = append(out, kw)
		}
	}
	return out
}
