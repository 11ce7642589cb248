package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// ComparisonService serves computed comparison data to the HTTP layer.
// All reads are cache-first: the service never reaches upstream itself,
// snapshots arrive through the message bus and land in the cache.
type ComparisonService struct {
	classifier Classifier
	cache      Cache
	logger     zerolog.Logger
}

// NewComparisonService creates a new comparison service
func NewComparisonService(
	classifier Classifier,
	cache Cache,
	logger zerolog.Logger,
) *ComparisonService {
	return &ComparisonService{
		classifier: classifier,
		cache:      cache,
		logger:     logger.With().Str("component", "comparison_service").Logger(),
	}
}

// GetMatrixSnapshot retrieves the cached comparison tables for a selection
func (s *ComparisonService) GetMatrixSnapshot(ctx context.Context, sport, region string, market models.MarketKey) (*models.MatrixSnapshot, error) {
	snapshot, err := s.cache.GetMatrixSnapshot(ctx, sport, region, market)
	if err != nil {
		return nil, fmt.Errorf("no matrix snapshot for sport=%s region=%s market=%s: %w", sport, region, market, err)
	}

	s.logger.Debug().
		Str("sport", sport).
		Str("region", region).
		Str("market", string(market)).
		Int("matrix_count", len(snapshot.Events)).
		Msg("retrieved matrix snapshot")

	return snapshot, nil
}

// GetEvaluations retrieves the cached evaluation batch for a selection,
// filtered to the requested bucket.
func (s *ComparisonService) GetEvaluations(ctx context.Context, sport, region string, market models.MarketKey, bucket models.Bucket) ([]models.EvaluationResult, error) {
	results, err := s.cache.GetEvaluations(ctx, sport, region, market)
	if err != nil {
		return nil, fmt.Errorf("no evaluation results for sport=%s region=%s market=%s: %w", sport, region, market, err)
	}

	return s.classifier.Classify(results, bucket), nil
}

// GetSummary aggregates statistics over the full cached evaluation batch.
// The summary always covers the whole scan, independent of any bucket
// selection the caller is viewing.
func (s *ComparisonService) GetSummary(ctx context.Context, sport, region string, market models.MarketKey) (*models.Summary, error) {
	results, err := s.cache.GetEvaluations(ctx, sport, region, market)
	if err != nil {
		return nil, fmt.Errorf("no evaluation results for sport=%s region=%s market=%s: %w", sport, region, market, err)
	}

	summary := s.classifier.Summarize(results)
	return &summary, nil
}
