package matrix

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
)

// fallbackColor is used for bookmakers missing from the reference table.
const fallbackColor = "#666666"

// Builder reshapes per-bookmaker quote lists into comparison matrices.
// It is a pure transformation over its inputs: malformed upstream data
// degrades to absent cells, never to an error.
type Builder struct {
	books  map[string]models.BookmakerRef
	logger zerolog.Logger
}

// NewBuilder creates a matrix builder with the given bookmaker reference
// table. The table is presentation metadata only; unknown keys fall back
// to the raw key and a neutral color.
func NewBuilder(books []models.BookmakerRef, logger zerolog.Logger) *Builder {
	indexed := make(map[string]models.BookmakerRef, len(books))
	for _, b := range books {
		indexed[b.Key] = b
	}

	return &Builder{
		books:  indexed,
		logger: logger.With().Str("component", "matrix_builder").Logger(),
	}
}

// FlattenEvent extracts the normalized quote list for one market of one
// event. Outcomes with prices below 1.0 are dropped; blocks for other
// markets are ignored.
func (b *Builder) FlattenEvent(event *models.Event, market models.MarketKey) []models.Quote {
	if event == nil {
		return nil
	}

	var quotes []models.Quote
	one := decimal.NewFromInt(1)

	for _, bm := range event.Bookmakers {
		for _, m := range bm.Markets {
			if m.Key != market {
				continue
			}
			for _, o := range m.Outcomes {
				if o.Name == "" || o.Price.LessThan(one) {
					continue
				}
				quotes = append(quotes, models.Quote{
					BookmakerKey:   bm.Key,
					BookmakerTitle: bm.Title,
					MarketKey:      m.Key,
					OutcomeName:    o.Name,
					Price:          o.Price,
					Point:          o.Point,
				})
			}
		}
	}

	return quotes
}

// rowState accumulates one outcome identity while quotes are grouped.
// bookOrder preserves first-write order per bookmaker so that best/worst
// ties and the output are deterministic for the same input.
type rowState struct {
	row       models.OutcomeRow
	bookOrder []string
}

// BuildMatrix groups quotes by outcome identity and annotates each row
// with the best and worst price across bookmakers. Quotes for markets
// other than the requested one are filtered out; an empty quote list
// yields an empty matrix.
func (b *Builder) BuildMatrix(quotes []models.Quote, market models.MarketKey) *models.Matrix {
	rows := make(map[string]*rowState)
	var rowOrder []string

	var bookList []models.BookmakerRef
	seenBooks := make(map[string]bool)

	for i := range quotes {
		q := &quotes[i]
		if q.MarketKey != market {
			continue
		}

		if !seenBooks[q.BookmakerKey] {
			seenBooks[q.BookmakerKey] = true
			bookList = append(bookList, b.bookmakerRef(q.BookmakerKey, q.BookmakerTitle))
		}

		key, label := resolveIdentity(q, market)

		state, ok := rows[key]
		if !ok {
			state = &rowState{
				row: models.OutcomeRow{
					IdentityKey:  key,
					DisplayLabel: label,
					BaseName:     q.OutcomeName,
					Point:        q.Point,
					Prices:       make(map[string]models.PricePoint),
				},
			}
			rows[key] = state
			rowOrder = append(rowOrder, key)
		}

		// Last write wins when a bookmaker repeats the same identity.
		if _, exists := state.row.Prices[q.BookmakerKey]; !exists {
			state.bookOrder = append(state.bookOrder, q.BookmakerKey)
		}
		state.row.Prices[q.BookmakerKey] = models.PricePoint{Price: q.Price, Point: q.Point}
	}

	outRows := make([]models.OutcomeRow, 0, len(rowOrder))
	for _, key := range rowOrder {
		state := rows[key]
		state.row.Best, state.row.Worst = extremes(state.row.Prices, state.bookOrder)
		outRows = append(outRows, state.row)
	}

	sortRows(outRows, market)

	b.logger.Debug().
		Str("market", string(market)).
		Int("quote_count", len(quotes)).
		Int("row_count", len(outRows)).
		Int("bookmaker_count", len(bookList)).
		Msg("built comparison matrix")

	return &models.Matrix{
		Rows:       outRows,
		Bookmakers: bookList,
	}
}

// BuildSnapshot builds one matrix per event in an upstream scan, skipping
// events without any quote for the requested market.
func (b *Builder) BuildSnapshot(msg *models.OddsSnapshotMessage) *models.MatrixSnapshot {
	snapshot := &models.MatrixSnapshot{
		ID:          uuid.New(),
		Sport:       msg.Sport,
		Region:      msg.Region,
		Market:      msg.Market,
		BatchID:     msg.BatchID,
		Events:      make([]models.EventMatrix, 0, len(msg.Events)),
		GeneratedAt: time.Now().UTC(),
	}

	for i := range msg.Events {
		event := &msg.Events[i]
		quotes := b.FlattenEvent(event, msg.Market)
		m := b.BuildMatrix(quotes, msg.Market)
		if len(m.Rows) == 0 {
			continue
		}
		snapshot.Events = append(snapshot.Events, models.EventMatrix{
			EventID:  event.ID,
			HomeTeam: event.HomeTeam,
			AwayTeam: event.AwayTeam,
			Matrix:   *m,
		})
	}

	b.logger.Info().
		Str("sport", msg.Sport).
		Str("market", string(msg.Market)).
		Int("event_count", len(msg.Events)).
		Int("matrix_count", len(snapshot.Events)).
		Msg("built matrix snapshot")

	return snapshot
}

// resolveIdentity derives the grouping key and display label for a quote.
// Spreads collapse all point values for the same outcome name into one
// identity; totals keep distinct points as distinct rows.
func resolveIdentity(q *models.Quote, market models.MarketKey) (key, label string) {
	key = q.OutcomeName
	label = q.OutcomeName

	switch {
	case market == models.MarketSpreads && q.Point.Valid:
		key = q.OutcomeName + "|spread"
		label = fmt.Sprintf("%s (%s)", q.OutcomeName, signedPoint(q.Point.Decimal))
	case market == models.MarketTotals && q.Point.Valid:
		key = q.OutcomeName + "|" + q.Point.Decimal.String()
		label = fmt.Sprintf("%s %s", q.OutcomeName, q.Point.Decimal.String())
	}

	return key, label
}

// signedPoint renders a spread line with an explicit leading sign.
func signedPoint(p decimal.Decimal) string {
	if p.Sign() >= 0 {
		return "+" + p.String()
	}
	return p.String()
}

// extremes scans a row's price map in bookmaker first-write order and
// returns the maximum and minimum price entries. Ties keep the earlier
// bookmaker. A row with a single quote reports that bookmaker as both
// best and worst.
func extremes(prices map[string]models.PricePoint, bookOrder []string) (best, worst *models.PriceRef) {
	for _, book := range bookOrder {
		pp, ok := prices[book]
		if !ok {
			continue
		}
		if best == nil || pp.Price.GreaterThan(best.Price) {
			best = &models.PriceRef{BookmakerKey: book, Price: pp.Price}
		}
		if worst == nil || pp.Price.LessThan(worst.Price) {
			worst = &models.PriceRef{BookmakerKey: book, Price: pp.Price}
		}
	}
	return best, worst
}

// sortRows orders rows for display: in the totals market "Over" rows
// precede "Under" rows when compared directly, otherwise rows sort by
// display label.
func sortRows(rows []models.OutcomeRow, market models.MarketKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if market == models.MarketTotals {
			if a.BaseName == "Over" && b.BaseName == "Under" {
				return true
			}
			if a.BaseName == "Under" && b.BaseName == "Over" {
				return false
			}
		}
		return strings.Compare(a.DisplayLabel, b.DisplayLabel) < 0
	})
}

// bookmakerRef resolves presentation metadata for a bookmaker key. The
// upstream title wins when present, then the reference table, then the
// raw key.
func (b *Builder) bookmakerRef(key, title string) models.BookmakerRef {
	ref, ok := b.books[key]
	if !ok {
		ref = models.BookmakerRef{Key: key, Title: key, Color: fallbackColor}
	}
	ref.Key = key
	if title != "" {
		ref.Title = title
	}
	return ref
}
