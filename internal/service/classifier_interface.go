package service

import (
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Classifier is an interface that abstracts result classification operations
// This allows for easier testing and mocking
type Classifier interface {
	Classify(results []models.EvaluationResult, bucket models.Bucket) []models.EvaluationResult
	Summarize(results []models.EvaluationResult) models.Summary
}
