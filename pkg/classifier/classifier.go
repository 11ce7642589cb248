package classifier

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// DefaultNearMissThreshold is the required-improvement cutoff below which
// a non-arbitrage result counts as a near miss.
var DefaultNearMissThreshold = decimal.NewFromFloat(0.05)

// Classifier filters precomputed arbitrage evaluations into buckets and
// aggregates statistics over them. It never inspects the pass-through
// display fields of a result.
type Classifier struct {
	params models.ClassifierParams
	logger zerolog.Logger
}

// NewClassifier creates a result classifier. A zero threshold in params
// falls back to DefaultNearMissThreshold.
func NewClassifier(params models.ClassifierParams, logger zerolog.Logger) *Classifier {
	if params.NearMissThreshold.IsZero() {
		params.NearMissThreshold = DefaultNearMissThreshold
	}

	return &Classifier{
		params: params,
		logger: logger.With().Str("component", "classifier").Logger(),
	}
}

// Matches reports whether a result belongs to a bucket. An unknown bucket
// matches everything, like BucketAll.
func (c *Classifier) Matches(r *models.EvaluationResult, bucket models.Bucket) bool {
	switch bucket {
	case models.BucketArbitrage:
		return r.Arbitrage
	case models.BucketNearMiss:
		return !r.Arbitrage && r.RequiredImprovement.Valid &&
			r.RequiredImprovement.Decimal.LessThan(c.params.NearMissThreshold)
	}
	return true
}

// Classify returns the results belonging to the given bucket, preserving
// input order. The input is never mutated.
func (c *Classifier) Classify(results []models.EvaluationResult, bucket models.Bucket) []models.EvaluationResult {
	filtered := make([]models.EvaluationResult, 0, len(results))
	for i := range results {
		if c.Matches(&results[i], bucket) {
			filtered = append(filtered, results[i])
		}
	}

	c.logger.Debug().
		Str("bucket", string(bucket)).
		Int("input_count", len(results)).
		Int("output_count", len(filtered)).
		Msg("classified evaluation results")

	return filtered
}

// Summarize aggregates counts and total profit over the full, unfiltered
// result list. Profit sums only over arbitrage results, with a missing
// profit treated as zero.
func (c *Classifier) Summarize(results []models.EvaluationResult) models.Summary {
	summary := models.Summary{
		Total:       len(results),
		TotalProfit: decimal.Zero,
	}

	for i := range results {
		r := &results[i]
		switch {
		case r.Arbitrage:
			summary.ArbitrageCount++
			if r.Profit.Valid {
				summary.TotalProfit = summary.TotalProfit.Add(r.Profit.Decimal)
			}
		case c.Matches(r, models.BucketNearMiss):
			summary.NearMissCount++
		}
	}

	return summary
}
