package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
	"github.com/ringsidehq/boxing-platform/internal/config"
	"github.com/ringsidehq/boxing-platform/internal/feed"
	"github.com/ringsidehq/boxing-platform/internal/leaderboard"
	"github.com/ringsidehq/boxing-platform/internal/logging"
	"github.com/ringsidehq/boxing-platform/internal/ring"
	"github.com/ringsidehq/boxing-platform/internal/ring/external"
	"github.com/ringsidehq/boxing-platform/internal/server"
	ws "github.com/ringsidehq/boxing-platform/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	broadcaster *feed.Broadcaster
	bgCancels   []context.CancelFunc
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	repo := boxer.NewRepository(pool)
	boxerSvc := boxer.NewService(repo, logger)

	boardCache := leaderboard.NewRedisCache(redisClient)
	boardSvc := leaderboard.NewService(repo, boardCache, logger, leaderboard.ServiceOptions{
		CacheTTL: cfg.Leaderboard.CacheTTL,
	})

	var randomSrc ring.RandomSource
	switch cfg.Fight.RandomSource {
	case "local":
		randomSrc = external.NewLocalSource(0)
		logger.Info().Msg("using local PRNG for fight draws")
	default:
		randomSrc = external.NewRandomOrgClient("", &http.Client{Timeout: cfg.Fight.RandomOrgTimeout})
	}

	hub := ws.NewHub(logger)
	publisher := feed.NewPublisher(redisClient, boardSvc, cfg.Fight.FeedChannel, logger)
	broadcaster := feed.NewBroadcaster(redisClient, hub, cfg.Fight.FeedChannel, logger)

	ringSvc := ring.NewService(ring.New(), repo, randomSrc, ring.ServiceOptions{
		Publisher: publisher,
		Boards:    boardSvc,
	}, logger)

	handlers := server.Handlers{
		Boxer:       boxer.NewHTTPHandler(boxerSvc, logger),
		Ring:        ring.NewHTTPHandler(ringSvc, logger),
		Leaderboard: leaderboard.NewHTTPHandler(boardSvc, logger),
		Feed:        feed.NewHandler(hub, logger),
	}

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, handlers)

	return &Application{
		cfg:         cfg,
		logger:      logger,
		pool:        pool,
		redis:       redisClient,
		http:        apiServer,
		broadcaster: broadcaster,
		bgCancels:   make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.broadcaster != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.broadcaster.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("fight feed broadcaster stopped")
			}
		}()
	}
}
