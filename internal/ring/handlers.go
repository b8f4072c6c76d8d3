package ring

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
	"github.com/ringsidehq/boxing-platform/pkg/http/response"
)

// HTTPHandler exposes REST endpoints for ring membership and fights.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a ring HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "ring_http").Logger(),
	}
}

// Enter handles POST /api/enter-ring. Body: {"name": "..."}.
func (h *HTTPHandler) Enter(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, response.ErrCodeInvalidRequest, "invalid JSON body")
		return
	}
	if in.Name == "" {
		response.ValidationError(w, response.ErrCodeMissingField, "name is required", "name")
		return
	}

	b, err := h.svc.Enter(r.Context(), in.Name)
	switch {
	case err == nil:
	case errors.Is(err, boxer.ErrNotFound):
		response.NotFound(w, response.ErrCodeNotFound,
			fmt.Sprintf("boxer '%s' not found", in.Name))
		return
	case errors.Is(err, ErrRingFull):
		response.BadRequest(w, response.ErrCodeRingFull, err.Error())
		return
	default:
		h.logger.Error().Err(err).Str("name", in.Name).Msg("enter ring failed")
		response.InternalError(w, "failed to enter ring")
		return
	}

	response.Success(w, http.StatusOK, response.Envelope{
		"message": fmt.Sprintf("Boxer '%s' entered the ring", b.Name),
		"boxer":   b,
	})
}

// Boxers handles GET /api/get-boxers.
func (h *HTTPHandler) Boxers(w http.ResponseWriter, r *http.Request) {
	occupants := h.svc.Boxers()
	if occupants == nil {
		occupants = []boxer.Boxer{}
	}
	response.Success(w, http.StatusOK, response.Envelope{"boxers": occupants})
}

// Clear handles POST /api/clear-boxers.
func (h *HTTPHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.Clear()
	response.Success(w, http.StatusOK, response.Envelope{
		"message": "Ring cleared successfully",
	})
}

// Fight handles GET /api/fight. Fewer than two occupants is a domain error
// surfaced with an error-status body, not a transport failure.
func (h *HTTPHandler) Fight(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Fight(r.Context())
	switch {
	case err == nil:
	case errors.Is(err, ErrNotEnoughBoxers):
		response.BadRequest(w, response.ErrCodeNotEnoughBoxers, err.Error())
		return
	default:
		h.logger.Error().Err(err).Msg("fight failed")
		response.Error(w, http.StatusInternalServerError, response.ErrCodeFightFailed, "fight could not be resolved")
		return
	}

	response.Success(w, http.StatusOK, response.Envelope{
		"message":  "Fight complete",
		"fight_id": out.FightID.String(),
		"winner":   out.Winner.Name,
		"loser":    out.Loser.Name,
	})
}
