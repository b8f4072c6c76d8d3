package leaderboard

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
	"github.com/ringsidehq/boxing-platform/pkg/http/response"
)

// HTTPHandler exposes the leaderboard REST endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a leaderboard HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet responds with the ranked board.
// Route: GET /api/leaderboard?sort=wins|win_pct (default wins)
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = SortWins
	}
	if !IsValidSort(sortBy) {
		response.BadRequest(w, response.ErrCodeInvalidSortField,
			"sort must be 'wins' or 'win_pct'")
		return
	}

	entries, err := h.svc.Board(r.Context(), sortBy)
	if err != nil {
		h.logger.Error().Err(err).Str("sort", sortBy).Msg("leaderboard fetch failed")
		response.InternalError(w, "failed to fetch leaderboard")
		return
	}
	if entries == nil {
		entries = []boxer.LeaderboardEntry{}
	}

	response.Success(w, http.StatusOK, response.Envelope{
		"sort":        sortBy,
		"leaderboard": entries,
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
