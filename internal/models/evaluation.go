package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BestOffer is the upstream's best price for one outcome of an evaluated
// event. Pass-through display data; the classifier never inspects it.
type BestOffer struct {
	Outcome   string          `json:"outcome"`
	Odds      decimal.Decimal `json:"odds"`
	Bookmaker string          `json:"bookmaker"`
}

// Allocation is one leg of the upstream's stake split for an arbitrage.
// Pass-through display data; the classifier never inspects it.
type Allocation struct {
	Outcome   string          `json:"outcome"`
	Bookmaker string          `json:"bookmaker"`
	Odds      decimal.Decimal `json:"odds"`
	Bet       decimal.Decimal `json:"bet"`
	Payout    decimal.Decimal `json:"payout"`
}

// EvaluationResult is one precomputed arbitrage assessment for one event,
// supplied by the upstream arbitrage service. Arbitrage is a plain bool so
// an absent field decodes to false rather than counting ambiguous data as
// an opportunity. RequiredImprovement is meaningful only when Arbitrage is
// false, Profit only when it is true.
type EvaluationResult struct {
	EventID             string              `json:"event_id"`
	Sport               string              `json:"sport,omitempty"`
	HomeTeam            string              `json:"home_team,omitempty"`
	AwayTeam            string              `json:"away_team,omitempty"`
	Arbitrage           bool                `json:"arbitrage"`
	SumInverseOdds      decimal.NullDecimal `json:"sum_inverse_odds"`
	RequiredImprovement decimal.NullDecimal `json:"required_improvement"`
	Payout              decimal.NullDecimal `json:"payout"`
	Profit              decimal.NullDecimal `json:"profit"`
	ROI                 decimal.NullDecimal `json:"roi"`
	BestOffers          []BestOffer         `json:"best_offers,omitempty"`
	Allocations         []Allocation        `json:"allocations,omitempty"`
	Reason              string              `json:"reason,omitempty"`
}

// Bucket selects a view over a list of evaluation results.
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketArbitrage Bucket = "arbitrage"
	BucketNearMiss  Bucket = "near_miss"
)

// ParseBucket validates a bucket name; an empty string means BucketAll.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case "":
		return BucketAll, nil
	case BucketAll, BucketArbitrage, BucketNearMiss:
		return Bucket(s), nil
	}
	return "", fmt.Errorf("unknown bucket: %q", s)
}

// Summary holds the aggregate statistics over a full evaluation batch.
type Summary struct {
	Total          int             `json:"total"`
	ArbitrageCount int             `json:"arbitrage_count"`
	NearMissCount  int             `json:"near_miss_count"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// ClassifierParams holds parameters for result classification.
type ClassifierParams struct {
	NearMissThreshold decimal.Decimal // Required improvement below this counts as a near miss (e.g., 0.05 = 5%)
}
