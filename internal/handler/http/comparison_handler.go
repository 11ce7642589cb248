package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-comparison-service/internal/models"
	"github.com/cypherlabdev/odds-comparison-service/internal/service"
	"github.com/cypherlabdev/odds-comparison-service/pkg/oddsfmt"
)

// ComparisonHandler handles HTTP requests for comparison matrices and
// arbitrage evaluations
type ComparisonHandler struct {
	service *service.ComparisonService
	logger  zerolog.Logger
}

// NewComparisonHandler creates a new comparison HTTP handler
func NewComparisonHandler(service *service.ComparisonService, logger zerolog.Logger) *ComparisonHandler {
	return &ComparisonHandler{
		service: service,
		logger:  logger.With().Str("component", "comparison_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *ComparisonHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/matrix/:sport/:region/:market - Comparison tables for a selection
	mux.HandleFunc("/api/v1/matrix/", h.handleGetMatrix)

	// GET /api/v1/evaluations/:sport/:region/:market[?bucket=] - Filtered evaluations
	// GET /api/v1/evaluations/:sport/:region/:market/summary - Aggregate statistics
	mux.HandleFunc("/api/v1/evaluations/", h.handleGetEvaluations)
}

// handleGetMatrix handles GET /api/v1/matrix/:sport/:region/:market
func (h *ComparisonHandler) handleGetMatrix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/matrix/")
	parts := strings.Split(path, "/")

	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/matrix/:sport/:region/:market")
		return
	}

	sport, region, market := parts[0], parts[1], models.MarketKey(parts[2])

	snapshot, err := h.service.GetMatrixSnapshot(r.Context(), sport, region, market)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("sport", sport).
			Str("region", region).
			Str("market", string(market)).
			Msg("matrix snapshot not found")
		h.errorResponse(w, http.StatusNotFound, "matrix snapshot not found")
		return
	}

	h.jsonResponse(w, http.StatusOK, ToMatrixSnapshotResponse(snapshot))
}

// handleGetEvaluations handles GET /api/v1/evaluations/:sport/:region/:market
// and its /summary sub-path
func (h *ComparisonHandler) handleGetEvaluations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/evaluations/")
	parts := strings.Split(path, "/")

	wantSummary := len(parts) == 4 && parts[3] == "summary"
	if !(len(parts) == 3 || wantSummary) || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/evaluations/:sport/:region/:market[/summary]")
		return
	}

	sport, region, market := parts[0], parts[1], models.MarketKey(parts[2])

	if wantSummary {
		summary, err := h.service.GetSummary(r.Context(), sport, region, market)
		if err != nil {
			h.logger.Debug().
				Err(err).
				Str("sport", sport).
				Str("region", region).
				Str("market", string(market)).
				Msg("evaluation results not found")
			h.errorResponse(w, http.StatusNotFound, "evaluation results not found")
			return
		}
		h.jsonResponse(w, http.StatusOK, summary)
		return
	}

	bucket, err := models.ParseBucket(r.URL.Query().Get("bucket"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "bucket must be one of all, arbitrage, near_miss")
		return
	}

	results, err := h.service.GetEvaluations(r.Context(), sport, region, market, bucket)
	if err != nil {
		h.logger.Debug().
			Err(err).
			Str("sport", sport).
			Str("region", region).
			Str("market", string(market)).
			Msg("evaluation results not found")
		h.errorResponse(w, http.StatusNotFound, "evaluation results not found")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"sport":   sport,
		"region":  region,
		"market":  market,
		"bucket":  bucket,
		"count":   len(results),
		"results": results,
	})
}

// jsonResponse writes a JSON response
func (h *ComparisonHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *ComparisonHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

// PriceCellResponse is one bookmaker's cell of a comparison row, with the
// price rendered both as a decimal string and in American odds
type PriceCellResponse struct {
	Price    string `json:"price"`
	American string `json:"american"`
	Point    string `json:"point,omitempty"`
}

// OutcomeRowResponse is one comparison row in API form
type OutcomeRowResponse struct {
	Label          string                       `json:"label"`
	Prices         map[string]PriceCellResponse `json:"prices"`
	BestBookmaker  string                       `json:"best_bookmaker,omitempty"`
	WorstBookmaker string                       `json:"worst_bookmaker,omitempty"`
}

// EventMatrixResponse is the comparison table for one event in API form
type EventMatrixResponse struct {
	EventID    string                `json:"event_id"`
	HomeTeam   string                `json:"home_team,omitempty"`
	AwayTeam   string                `json:"away_team,omitempty"`
	Bookmakers []models.BookmakerRef `json:"bookmakers"`
	Rows       []OutcomeRowResponse  `json:"rows"`
}

// MatrixSnapshotResponse is the API response for a matrix snapshot
type MatrixSnapshotResponse struct {
	Sport       string                `json:"sport"`
	Region      string                `json:"region"`
	Market      string                `json:"market"`
	BatchID     string                `json:"batch_id,omitempty"`
	GeneratedAt string                `json:"generated_at"`
	Count       int                   `json:"count"`
	Events      []EventMatrixResponse `json:"events"`
}

// ToMatrixSnapshotResponse converts a matrix snapshot to API response format
func ToMatrixSnapshotResponse(snapshot *models.MatrixSnapshot) *MatrixSnapshotResponse {
	events := make([]EventMatrixResponse, 0, len(snapshot.Events))
	for i := range snapshot.Events {
		em := &snapshot.Events[i]

		rows := make([]OutcomeRowResponse, 0, len(em.Matrix.Rows))
		for j := range em.Matrix.Rows {
			row := &em.Matrix.Rows[j]

			prices := make(map[string]PriceCellResponse, len(row.Prices))
			for book, pp := range row.Prices {
				cell := PriceCellResponse{
					Price:    pp.Price.StringFixed(2),
					American: oddsfmt.American(pp.Price),
				}
				if pp.Point.Valid {
					cell.Point = pp.Point.Decimal.String()
				}
				prices[book] = cell
			}

			resp := OutcomeRowResponse{
				Label:  row.DisplayLabel,
				Prices: prices,
			}
			if row.Best != nil {
				resp.BestBookmaker = row.Best.BookmakerKey
			}
			if row.Worst != nil {
				resp.WorstBookmaker = row.Worst.BookmakerKey
			}
			rows = append(rows, resp)
		}

		events = append(events, EventMatrixResponse{
			EventID:    em.EventID,
			HomeTeam:   em.HomeTeam,
			AwayTeam:   em.AwayTeam,
			Bookmakers: em.Matrix.Bookmakers,
			Rows:       rows,
		})
	}

	return &MatrixSnapshotResponse{
		Sport:       snapshot.Sport,
		Region:      snapshot.Region,
		Market:      string(snapshot.Market),
		BatchID:     snapshot.BatchID,
		GeneratedAt: snapshot.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Count:       len(events),
		Events:      events,
	}
}
