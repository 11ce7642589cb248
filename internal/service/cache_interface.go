package service

import (
	"context"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Cache is an interface that abstracts cache operations
// This allows for easier testing and mocking
type Cache interface {
	SetSnapshot(ctx context.Context, snapshot *models.MatrixSnapshot, results []models.EvaluationResult) error
	GetMatrixSnapshot(ctx context.Context, sport, region string, market models.MarketKey) (*models.MatrixSnapshot, error)
	GetEvaluations(ctx context.Context, sport, region string, market models.MarketKey) ([]models.EvaluationResult, error)
	Ping(ctx context.Context) error
	Close() error
}
