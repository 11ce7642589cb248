package matrix

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// setupTestBuilder creates a builder with a small synthetic reference table
func setupTestBuilder() *Builder {
	books := []models.BookmakerRef{
		{Key: "draftkings", Title: "DraftKings", Color: "#53d337"},
		{Key: "fanduel", Title: "FanDuel", Color: "#1493ff"},
		{Key: "betmgm", Title: "BetMGM", Color: "#c5a44e"},
	}
	return NewBuilder(books, zerolog.Nop())
}

// quote builds a moneyline-style quote without a point
func quote(book string, market models.MarketKey, name string, price float64) models.Quote {
	return models.Quote{
		BookmakerKey: book,
		MarketKey:    market,
		OutcomeName:  name,
		Price:        decimal.NewFromFloat(price),
	}
}

// quoteWithPoint builds a spread/total quote carrying a point
func quoteWithPoint(book string, market models.MarketKey, name string, price, point float64) models.Quote {
	q := quote(book, market, name, price)
	q.Point = decimal.NewNullDecimal(decimal.NewFromFloat(point))
	return q
}

// TestNewBuilder tests builder creation
func TestNewBuilder(t *testing.T) {
	builder := setupTestBuilder()
	assert.NotNil(t, builder)
	assert.Len(t, builder.books, 3)
}

// TestBuildMatrix_Empty tests that an empty quote list yields an empty
// matrix rather than an error
func TestBuildMatrix_Empty(t *testing.T) {
	builder := setupTestBuilder()

	m := builder.BuildMatrix(nil, models.MarketMoneyline)

	require.NotNil(t, m)
	assert.Len(t, m.Rows, 0)
	assert.Len(t, m.Bookmakers, 0)
}

// TestBuildMatrix_FiltersOtherMarkets tests that quotes for markets other
// than the requested one never produce rows
func TestBuildMatrix_FiltersOtherMarkets(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Lakers", 2.10),
		quoteWithPoint("draftkings", models.MarketTotals, "Over", 1.90, 220.5),
		quote("fanduel", models.MarketMoneyline, "Heat", 1.85),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 2)
	for _, row := range m.Rows {
		assert.NotEqual(t, "Over", row.BaseName)
	}
}

// TestBuildMatrix_UnknownMarket tests that an unknown market key matches
// no quotes instead of failing
func TestBuildMatrix_UnknownMarket(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Lakers", 2.10),
	}

	m := builder.BuildMatrix(quotes, models.MarketKey("outrights"))

	assert.Len(t, m.Rows, 0)
	assert.Len(t, m.Bookmakers, 0)
}

// TestBuildMatrix_Moneyline tests identity resolution and best/worst
// annotation for a two-book moneyline market
func TestBuildMatrix_Moneyline(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Team A", 2.10),
		quote("draftkings", models.MarketMoneyline, "Team B", 1.80),
		quote("fanduel", models.MarketMoneyline, "Team A", 2.05),
		quote("fanduel", models.MarketMoneyline, "Team B", 1.85),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 2)
	require.Len(t, m.Bookmakers, 2)

	// Rows sort by display label
	teamA := m.Rows[0]
	teamB := m.Rows[1]
	assert.Equal(t, "Team A", teamA.DisplayLabel)
	assert.Equal(t, "Team B", teamB.DisplayLabel)

	require.NotNil(t, teamA.Best)
	require.NotNil(t, teamA.Worst)
	assert.Equal(t, "draftkings", teamA.Best.BookmakerKey)
	assert.True(t, teamA.Best.Price.Equal(decimal.NewFromFloat(2.10)))
	assert.Equal(t, "fanduel", teamA.Worst.BookmakerKey)
	assert.True(t, teamA.Worst.Price.Equal(decimal.NewFromFloat(2.05)))

	require.NotNil(t, teamB.Best)
	assert.Equal(t, "fanduel", teamB.Best.BookmakerKey)
	assert.Equal(t, "draftkings", teamB.Worst.BookmakerKey)
}

// TestBuildMatrix_BestWorstBounds tests that best/worst bound every price
// in a row with three distinct bookmaker prices
func TestBuildMatrix_BestWorstBounds(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Team A", 2.00),
		quote("fanduel", models.MarketMoneyline, "Team A", 2.20),
		quote("betmgm", models.MarketMoneyline, "Team A", 1.95),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 1)
	row := m.Rows[0]
	require.NotNil(t, row.Best)
	require.NotNil(t, row.Worst)

	for _, pp := range row.Prices {
		assert.True(t, row.Best.Price.GreaterThanOrEqual(pp.Price))
		assert.True(t, row.Worst.Price.LessThanOrEqual(pp.Price))
	}
	assert.Equal(t, "fanduel", row.Best.BookmakerKey)
	assert.Equal(t, "betmgm", row.Worst.BookmakerKey)
}

// TestBuildMatrix_SingletonBestAndWorst documents the policy that a row
// quoted by a single bookmaker reports that book as both best and worst
func TestBuildMatrix_SingletonBestAndWorst(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Team A", 2.10),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 1)
	row := m.Rows[0]
	require.NotNil(t, row.Best)
	require.NotNil(t, row.Worst)
	assert.Equal(t, "draftkings", row.Best.BookmakerKey)
	assert.Equal(t, "draftkings", row.Worst.BookmakerKey)
	assert.True(t, row.Best.Price.Equal(row.Worst.Price))
}

// TestBuildMatrix_TieKeepsFirstBookmaker tests that equal prices resolve
// to the first-encountered bookmaker for both best and worst
func TestBuildMatrix_TieKeepsFirstBookmaker(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Team A", 1.95),
		quote("fanduel", models.MarketMoneyline, "Team A", 1.95),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 1)
	row := m.Rows[0]
	assert.Equal(t, "draftkings", row.Best.BookmakerKey)
	assert.Equal(t, "draftkings", row.Worst.BookmakerKey)
}

// TestBuildMatrix_SpreadCollision documents the spread grouping policy:
// identities key on outcome name only, so different point lines for the
// same team from different books merge into a single row whose
// representative point is the first-seen quote's point
func TestBuildMatrix_SpreadCollision(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quoteWithPoint("draftkings", models.MarketSpreads, "Team A", 1.91, -3.5),
		quoteWithPoint("fanduel", models.MarketSpreads, "Team A", 1.87, -4),
	}

	m := builder.BuildMatrix(quotes, models.MarketSpreads)

	require.Len(t, m.Rows, 1)
	row := m.Rows[0]
	assert.Equal(t, "Team A|spread", row.IdentityKey)
	assert.Equal(t, "Team A (-3.5)", row.DisplayLabel)
	require.True(t, row.Point.Valid)
	assert.True(t, row.Point.Decimal.Equal(decimal.NewFromFloat(-3.5)))

	// Each cell still keeps its own point
	require.Len(t, row.Prices, 2)
	assert.True(t, row.Prices["draftkings"].Point.Decimal.Equal(decimal.NewFromFloat(-3.5)))
	assert.True(t, row.Prices["fanduel"].Point.Decimal.Equal(decimal.NewFromInt(-4)))
}

// TestBuildMatrix_SpreadLabelSign tests the explicit leading sign on
// spread display labels
func TestBuildMatrix_SpreadLabelSign(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quoteWithPoint("draftkings", models.MarketSpreads, "Team A", 1.91, -3.5),
		quoteWithPoint("draftkings", models.MarketSpreads, "Team B", 1.87, 3.5),
	}

	m := builder.BuildMatrix(quotes, models.MarketSpreads)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Team A (-3.5)", m.Rows[0].DisplayLabel)
	assert.Equal(t, "Team B (+3.5)", m.Rows[1].DisplayLabel)
}

// TestBuildMatrix_SpreadWithoutPoint tests that a spread quote missing
// its point degrades to a plain name identity
func TestBuildMatrix_SpreadWithoutPoint(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketSpreads, "Team A", 1.91),
	}

	m := builder.BuildMatrix(quotes, models.MarketSpreads)

	require.Len(t, m.Rows, 1)
	assert.Equal(t, "Team A", m.Rows[0].IdentityKey)
	assert.Equal(t, "Team A", m.Rows[0].DisplayLabel)
}

// TestBuildMatrix_TotalsDistinctPoints tests that totals fully
// disambiguate by point: Over 220.5 and Over 221 are distinct rows
func TestBuildMatrix_TotalsDistinctPoints(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quoteWithPoint("draftkings", models.MarketTotals, "Over", 1.90, 220.5),
		quoteWithPoint("fanduel", models.MarketTotals, "Over", 1.88, 221),
	}

	m := builder.BuildMatrix(quotes, models.MarketTotals)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Over|220.5", m.Rows[0].IdentityKey)
	assert.Equal(t, "Over 220.5", m.Rows[0].DisplayLabel)
	assert.Equal(t, "Over|221", m.Rows[1].IdentityKey)
}

// TestBuildMatrix_TotalsOrdering tests that Over rows precede Under rows
// regardless of input order
func TestBuildMatrix_TotalsOrdering(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quoteWithPoint("draftkings", models.MarketTotals, "Under", 1.95, 220.5),
		quoteWithPoint("draftkings", models.MarketTotals, "Over", 1.90, 220.5),
	}

	m := builder.BuildMatrix(quotes, models.MarketTotals)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Over 220.5", m.Rows[0].DisplayLabel)
	assert.Equal(t, "Under 220.5", m.Rows[1].DisplayLabel)
}

// TestBuildMatrix_LabelOrdering tests lexicographic ordering by display
// label outside the totals special case
func TestBuildMatrix_LabelOrdering(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Warriors", 2.30),
		quote("draftkings", models.MarketMoneyline, "Celtics", 1.65),
		quote("draftkings", models.MarketMoneyline, "Draw", 3.40),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 3)
	assert.Equal(t, "Celtics", m.Rows[0].DisplayLabel)
	assert.Equal(t, "Draw", m.Rows[1].DisplayLabel)
	assert.Equal(t, "Warriors", m.Rows[2].DisplayLabel)
}

// TestBuildMatrix_LastWriteWins tests that a bookmaker repeating the same
// identity overwrites its earlier cell
func TestBuildMatrix_LastWriteWins(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("draftkings", models.MarketMoneyline, "Team A", 2.00),
		quote("draftkings", models.MarketMoneyline, "Team A", 2.15),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Rows, 1)
	row := m.Rows[0]
	require.Len(t, row.Prices, 1)
	assert.True(t, row.Prices["draftkings"].Price.Equal(decimal.NewFromFloat(2.15)))
	assert.True(t, row.Best.Price.Equal(decimal.NewFromFloat(2.15)))
}

// TestBuildMatrix_UnknownBookmakerFallback tests that unknown bookmaker
// keys get the raw key as title and the neutral color
func TestBuildMatrix_UnknownBookmakerFallback(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quote("mysterybook", models.MarketMoneyline, "Team A", 2.00),
	}

	m := builder.BuildMatrix(quotes, models.MarketMoneyline)

	require.Len(t, m.Bookmakers, 1)
	assert.Equal(t, "mysterybook", m.Bookmakers[0].Key)
	assert.Equal(t, "mysterybook", m.Bookmakers[0].Title)
	assert.Equal(t, fallbackColor, m.Bookmakers[0].Color)
}

// TestBuildMatrix_UpstreamTitleWins tests that a title carried on the
// quote overrides the reference table title
func TestBuildMatrix_UpstreamTitleWins(t *testing.T) {
	builder := setupTestBuilder()

	q := quote("draftkings", models.MarketMoneyline, "Team A", 2.00)
	q.BookmakerTitle = "DraftKings Sportsbook"

	m := builder.BuildMatrix([]models.Quote{q}, models.MarketMoneyline)

	require.Len(t, m.Bookmakers, 1)
	assert.Equal(t, "DraftKings Sportsbook", m.Bookmakers[0].Title)
	assert.Equal(t, "#53d337", m.Bookmakers[0].Color)
}

// TestBuildMatrix_Deterministic tests that identical input produces
// identical output across invocations
func TestBuildMatrix_Deterministic(t *testing.T) {
	builder := setupTestBuilder()

	quotes := []models.Quote{
		quoteWithPoint("draftkings", models.MarketTotals, "Under", 1.95, 220.5),
		quoteWithPoint("fanduel", models.MarketTotals, "Over", 1.92, 220.5),
		quoteWithPoint("draftkings", models.MarketTotals, "Over", 1.90, 220.5),
		quoteWithPoint("betmgm", models.MarketTotals, "Over", 1.92, 221),
	}

	first := builder.BuildMatrix(quotes, models.MarketTotals)
	second := builder.BuildMatrix(quotes, models.MarketTotals)

	assert.Equal(t, first, second)
}

// TestFlattenEvent_Success tests normalization of one market of one event
func TestFlattenEvent_Success(t *testing.T) {
	builder := setupTestBuilder()

	event := &models.Event{
		ID:       "evt1",
		HomeTeam: "Team A",
		AwayTeam: "Team B",
		Bookmakers: []models.Bookmaker{
			{
				Key:   "draftkings",
				Title: "DraftKings",
				Markets: []models.Market{
					{
						Key: models.MarketMoneyline,
						Outcomes: []models.Outcome{
							{Name: "Team A", Price: decimal.NewFromFloat(2.1)},
							{Name: "Team B", Price: decimal.NewFromFloat(1.8)},
						},
					},
					{
						Key: models.MarketTotals,
						Outcomes: []models.Outcome{
							{Name: "Over", Price: decimal.NewFromFloat(1.9), Point: decimal.NewNullDecimal(decimal.NewFromFloat(220.5))},
						},
					},
				},
			},
		},
	}

	quotes := builder.FlattenEvent(event, models.MarketMoneyline)

	require.Len(t, quotes, 2)
	assert.Equal(t, "draftkings", quotes[0].BookmakerKey)
	assert.Equal(t, "DraftKings", quotes[0].BookmakerTitle)
	assert.Equal(t, models.MarketMoneyline, quotes[0].MarketKey)
	assert.Equal(t, "Team A", quotes[0].OutcomeName)
	assert.False(t, quotes[0].Point.Valid)
}

// TestFlattenEvent_DropsInvalidOutcomes tests that sub-1.0 prices and
// unnamed outcomes are dropped instead of failing
func TestFlattenEvent_DropsInvalidOutcomes(t *testing.T) {
	builder := setupTestBuilder()

	event := &models.Event{
		ID: "evt1",
		Bookmakers: []models.Bookmaker{
			{
				Key: "draftkings",
				Markets: []models.Market{
					{
						Key: models.MarketMoneyline,
						Outcomes: []models.Outcome{
							{Name: "Team A", Price: decimal.NewFromFloat(0.5)},
							{Name: "", Price: decimal.NewFromFloat(2.0)},
							{Name: "Team B", Price: decimal.NewFromFloat(1.8)},
						},
					},
				},
			},
		},
	}

	quotes := builder.FlattenEvent(event, models.MarketMoneyline)

	require.Len(t, quotes, 1)
	assert.Equal(t, "Team B", quotes[0].OutcomeName)
}

// TestFlattenEvent_NilEvent tests the nil event degenerate case
func TestFlattenEvent_NilEvent(t *testing.T) {
	builder := setupTestBuilder()
	assert.Nil(t, builder.FlattenEvent(nil, models.MarketMoneyline))
}

// TestBuildSnapshot_SkipsEventsWithoutMarketData tests that events with
// no quotes for the requested market produce no matrix
func TestBuildSnapshot_SkipsEventsWithoutMarketData(t *testing.T) {
	builder := setupTestBuilder()

	msg := &models.OddsSnapshotMessage{
		BatchID: "batch-1",
		Sport:   "basketball_nba",
		Region:  "us",
		Market:  models.MarketMoneyline,
		Events: []models.Event{
			{
				ID: "evt1",
				Bookmakers: []models.Bookmaker{
					{
						Key: "draftkings",
						Markets: []models.Market{
							{
								Key: models.MarketMoneyline,
								Outcomes: []models.Outcome{
									{Name: "Team A", Price: decimal.NewFromFloat(2.1)},
								},
							},
						},
					},
				},
			},
			{
				ID: "evt2",
				Bookmakers: []models.Bookmaker{
					{
						Key: "fanduel",
						Markets: []models.Market{
							{
								Key: models.MarketTotals,
								Outcomes: []models.Outcome{
									{Name: "Over", Price: decimal.NewFromFloat(1.9), Point: decimal.NewNullDecimal(decimal.NewFromFloat(220.5))},
								},
							},
						},
					},
				},
			},
		},
	}

	snapshot := builder.BuildSnapshot(msg)

	require.NotNil(t, snapshot)
	assert.Equal(t, "basketball_nba", snapshot.Sport)
	assert.Equal(t, models.MarketMoneyline, snapshot.Market)
	require.Len(t, snapshot.Events, 1)
	assert.Equal(t, "evt1", snapshot.Events[0].EventID)
	assert.NotEqual(t, "", snapshot.ID.String())
}
