package service

import (
	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// Engine is an interface that abstracts matrix building operations
// This allows for easier testing and mocking
type Engine interface {
	FlattenEvent(event *models.Event, market models.MarketKey) []models.Quote
	BuildMatrix(quotes []models.Quote, market models.MarketKey) *models.Matrix
	BuildSnapshot(msg *models.OddsSnapshotMessage) *models.MatrixSnapshot
}
