package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketKey identifies a betting market type using the upstream feed's own keys.
type MarketKey string

const (
	MarketMoneyline MarketKey = "h2h"
	MarketSpreads   MarketKey = "spreads"
	MarketTotals    MarketKey = "totals"
)

// Outcome is one priced selection inside a bookmaker's market block.
// Point is only present for spreads and totals; a null point is the
// explicit "absent" marker for moneyline outcomes.
type Outcome struct {
	Name  string              `json:"name"`
	Price decimal.Decimal     `json:"price"`
	Point decimal.NullDecimal `json:"point"`
}

// Market is one market block offered by a bookmaker for an event.
type Market struct {
	Key      MarketKey `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Bookmaker is one book's full offering for an event.
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title,omitempty"`
	Markets []Market `json:"markets"`
}

// Event is one sporting event as delivered by the upstream odds service.
type Event struct {
	ID         string      `json:"id"`
	SportKey   string      `json:"sport_key,omitempty"`
	HomeTeam   string      `json:"home_team,omitempty"`
	AwayTeam   string      `json:"away_team,omitempty"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

// Quote is one bookmaker's price for one outcome after boundary
// normalization: prices below 1.0 never survive into a Quote.
type Quote struct {
	BookmakerKey   string              `json:"bookmaker_key"`
	BookmakerTitle string              `json:"bookmaker_title,omitempty"`
	MarketKey      MarketKey           `json:"market_key"`
	OutcomeName    string              `json:"outcome_name"`
	Price          decimal.Decimal     `json:"price"`
	Point          decimal.NullDecimal `json:"point"`
}

// BookmakerRef is the presentation metadata for one bookmaker.
type BookmakerRef struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// PricePoint is one bookmaker's cell in an outcome row.
type PricePoint struct {
	Price decimal.Decimal     `json:"price"`
	Point decimal.NullDecimal `json:"point"`
}

// PriceRef names the bookmaker holding an extreme price within a row.
type PriceRef struct {
	BookmakerKey string          `json:"bookmaker_key"`
	Price        decimal.Decimal `json:"price"`
}

// OutcomeRow is one row of the comparison matrix: one outcome identity
// with the prices every bookmaker offers for it. Best and Worst are nil
// when the row holds no quotes.
type OutcomeRow struct {
	IdentityKey  string                `json:"identity_key"`
	DisplayLabel string                `json:"display_label"`
	BaseName     string                `json:"base_name"`
	Point        decimal.NullDecimal   `json:"point"`
	Prices       map[string]PricePoint `json:"prices"`
	Best         *PriceRef             `json:"best,omitempty"`
	Worst        *PriceRef             `json:"worst,omitempty"`
}

// Matrix is the normalized comparison table for one event and one market.
type Matrix struct {
	Rows       []OutcomeRow   `json:"rows"`
	Bookmakers []BookmakerRef `json:"bookmakers"`
}

// EventMatrix pairs a built matrix with the event it was built from.
type EventMatrix struct {
	EventID  string `json:"event_id"`
	HomeTeam string `json:"home_team,omitempty"`
	AwayTeam string `json:"away_team,omitempty"`
	Matrix   Matrix `json:"matrix"`
}

// MatrixSnapshot holds the comparison tables for every event in one scan
// of a (sport, region, market) selection.
type MatrixSnapshot struct {
	ID          uuid.UUID     `json:"id"`
	Sport       string        `json:"sport"`
	Region      string        `json:"region"`
	Market      MarketKey     `json:"market"`
	BatchID     string        `json:"batch_id,omitempty"`
	Events      []EventMatrix `json:"events"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// OddsSnapshotMessage is the Kafka message carrying one upstream scan:
// the raw events plus the precomputed arbitrage evaluations for them.
type OddsSnapshotMessage struct {
	BatchID   string             `json:"batch_id"`
	Sport     string             `json:"sport"`
	Region    string             `json:"region"`
	Market    MarketKey          `json:"market"`
	Stake     decimal.Decimal    `json:"stake"`
	Events    []Event            `json:"events"`
	Results   []EvaluationResult `json:"arbitrage_results"`
	Timestamp time.Time          `json:"timestamp"`
}
