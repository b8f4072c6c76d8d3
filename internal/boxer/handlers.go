package boxer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/pkg/http/response"
)

var boxersCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "boxing_boxers_created_total",
	Help: "Number of boxer records created.",
})

// HTTPHandler exposes REST endpoints for boxer CRUD.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a boxer HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "boxer_http").Logger(),
	}
}

// Add handles POST /api/add-boxer.
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in NewBoxer
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, response.ErrCodeInvalidRequest, "invalid JSON body")
		return
	}

	b, err := h.svc.Create(r.Context(), in)
	switch {
	case err == nil:
	case errors.Is(err, ErrAlreadyExists):
		response.Conflict(w, response.ErrCodeAlreadyExists,
			fmt.Sprintf("boxer with name '%s' already exists", in.Name))
		return
	default:
		if isValidationError(err) {
			response.BadRequest(w, response.ErrCodeValidationFailed, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("add boxer failed")
		response.InternalError(w, "failed to add boxer")
		return
	}

	boxersCreated.Inc()
	response.Success(w, http.StatusCreated, response.Envelope{
		"message": fmt.Sprintf("Boxer '%s' added successfully", b.Name),
		"boxer":   b,
	})
}

// GetByName handles GET /api/get-boxer-by-name/{name}.
func (h *HTTPHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	b, err := h.svc.GetByName(r.Context(), name)
	if err != nil {
		h.respondLookupError(w, err, fmt.Sprintf("boxer '%s' not found", name))
		return
	}
	response.Success(w, http.StatusOK, response.Envelope{"boxer": b})
}

// GetByID handles GET /api/get-boxer-by-id/{id}.
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.BadRequest(w, response.ErrCodeInvalidRequest, "boxer id must be an integer")
		return
	}
	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err, fmt.Sprintf("boxer with id %d not found", id))
		return
	}
	response.Success(w, http.StatusOK, response.Envelope{"boxer": b})
}

// Delete handles DELETE /api/delete-boxer/{id}.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.BadRequest(w, response.ErrCodeInvalidRequest, "boxer id must be an integer")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.respondLookupError(w, err, fmt.Sprintf("boxer with id %d not found", id))
		return
	}
	response.Success(w, http.StatusOK, response.Envelope{
		"message": fmt.Sprintf("Boxer %d deleted successfully", id),
	})
}

func (h *HTTPHandler) respondLookupError(w http.ResponseWriter, err error, notFoundMsg string) {
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, response.ErrCodeNotFound, notFoundMsg)
		return
	}
	h.logger.Error().Err(err).Msg("boxer lookup failed")
	response.InternalError(w, "boxer lookup failed")
}

// isValidationError distinguishes attribute validation failures from storage
// errors so handlers can map them to 400 instead of 500.
func isValidationError(err error) bool {
	var ve validationError
	return errors.As(err, &ve)
}
