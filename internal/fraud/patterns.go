package fraud

import (
	"context"
	"strings"

	"cardeval/internal/evaluator/models"
)

// DefaultRiskThreshold is the score at or above which PatternChecker flags
// an application. Like the pattern weights, it is a placeholder.
const DefaultRiskThreshold = 50

// Pattern is one weighted fraud signal.
type Pattern struct {
	Name   string
	Detect func(app models.Application) bool
	Weight int
}

// PatternChecker sums the weights of matching patterns into a 0..100 score.
type PatternChecker struct {
	patterns  []Pattern
	threshold int
}

// NewPatternChecker builds a checker with the default patterns. A
// non-positive threshold falls back to DefaultRiskThreshold.
func NewPatternChecker(threshold int, blockedSurnames ...string) *PatternChecker {
	if threshold <= 0 {
		threshold = DefaultRiskThreshold
	}
	surnames := NewSurnameChecker(blockedSurnames...)
	return &PatternChecker{
		threshold: threshold,
		patterns: []Pattern{
			{
				Name: "blocked_surname",
				Detect: func(app models.Application) bool {
					_, ok := surnames.blocked[normalizeSurname(app.LastName)]
					return ok
				},
				Weight: 60,
			},
			{
				Name: "missing_identity",
				Detect: func(app models.Application) bool {
					return strings.TrimSpace(app.FirstName) == "" && strings.TrimSpace(app.LastName) == ""
				},
				Weight: 30,
			},
			{
				Name: "missing_flyer_number",
				Detect: func(app models.Application) bool {
					return strings.TrimSpace(app.FrequentFlyerNumber) == ""
				},
				Weight: 10,
			},
			{
				Name: "underage",
				Detect: func(app models.Application) bool {
					return app.Age < 18
				},
				Weight: 40,
			},
			{
				Name: "retired_without_income",
				Detect: func(app models.Application) bool {
					return app.Age > 60 && app.GrossAnnualIncome == 0
				},
				Weight: 20,
			},
		},
	}
}

// Analyze returns the capped risk score and the names of matching patterns.
func (c *PatternChecker) Analyze(app models.Application) (int, []string) {
	var score int
	var flags []string
	for _, p := range c.patterns {
		if p.Detect(app) {
			score += p.Weight
			flags = append(flags, p.Name)
		}
	}
	return min(score, 100), flags
}

func (c *PatternChecker) CheckApplication(_ context.Context, app models.Application) (bool, error) {
	score, _ := c.Analyze(app)
	return score >= c.threshold, nil
}
