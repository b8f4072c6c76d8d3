package server

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
	"github.com/ringsidehq/boxing-platform/internal/config"
	"github.com/ringsidehq/boxing-platform/internal/feed"
	"github.com/ringsidehq/boxing-platform/internal/leaderboard"
	"github.com/ringsidehq/boxing-platform/internal/ring"
	"github.com/ringsidehq/boxing-platform/pkg/http/response"
)

// Handlers groups the per-domain HTTP handlers the server mounts.
type Handlers struct {
	Boxer       *boxer.HTTPHandler
	Ring        *ring.HTTPHandler
	Leaderboard *leaderboard.HTTPHandler
	Feed        *feed.Handler
}

// NewHTTPServer wires all API routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, response.Envelope{
			"message": "Service is running",
		})
	})

	mux.HandleFunc("GET /api/db-check", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			response.ServiceUnavailable(w, response.ErrCodeServiceUnavailable,
				"datastore unreachable")
			return
		}
		response.Success(w, http.StatusOK, response.Envelope{
			"message": "Database connection is healthy",
		})
	})

	mux.HandleFunc("POST /api/add-boxer", h.Boxer.Add)
	mux.HandleFunc("GET /api/get-boxer-by-name/{name}", h.Boxer.GetByName)
	mux.HandleFunc("GET /api/get-boxer-by-id/{id}", h.Boxer.GetByID)
	mux.HandleFunc("DELETE /api/delete-boxer/{id}", h.Boxer.Delete)

	mux.HandleFunc("POST /api/enter-ring", h.Ring.Enter)
	mux.HandleFunc("GET /api/get-boxers", h.Ring.Boxers)
	mux.HandleFunc("POST /api/clear-boxers", h.Ring.Clear)
	mux.HandleFunc("GET /api/fight", h.Ring.Fight)

	mux.HandleFunc("GET /api/leaderboard", h.Leaderboard.HandleGet)

	if h.Feed != nil {
		mux.HandleFunc("GET /api/ws/fights", h.Feed.Subscribe)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}
	return nil
}
