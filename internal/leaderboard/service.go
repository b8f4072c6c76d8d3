package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

// Supported sort keys.
const (
	SortWins   = "wins"
	SortWinPct = "win_pct"
)

var sortKeys = []string{SortWins, SortWinPct}

// Store is the ranked query the service serves (implemented by
// boxer.Repository).
type Store interface {
	Leaderboard(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error)
}

// ServiceOptions configures caching behavior.
type ServiceOptions struct {
	CacheTTL  time.Duration
	KeyPrefix string
}

// Service serves ranked boards from cache, falling back to the store.
type Service struct {
	store  Store
	cache  Cache
	logger zerolog.Logger
	ttl    time.Duration
	prefix string
}

// NewService constructs a leaderboard service.
func NewService(store Store, cache Cache, logger zerolog.Logger, opts ServiceOptions) *Service {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = "leaderboard"
	}
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "leaderboard").Logger(),
		ttl:    ttl,
		prefix: prefix,
	}
}

// IsValidSort reports whether sortBy is a supported ranking.
func IsValidSort(sortBy string) bool {
	switch sortBy {
	case SortWins, SortWinPct:
		return true
	default:
		return false
	}
}

// Board returns the ranked entries for sortBy, cached for a short TTL.
func (s *Service) Board(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	if !IsValidSort(sortBy) {
		return nil, fmt.Errorf("invalid sort_by parameter: %s", sortBy)
	}

	key := s.key(sortBy)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil && data != nil {
			var entries []boxer.LeaderboardEntry
			if err := json.Unmarshal(data, &entries); err == nil {
				return entries, nil
			}
			s.logger.Warn().Str("key", key).Msg("discarding undecodable cached board")
		} else if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("leaderboard cache read failed")
		}
	}

	entries, err := s.store.Leaderboard(ctx, sortBy)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				s.logger.Warn().Err(err).Str("key", key).Msg("leaderboard cache write failed")
			}
		}
	}
	return entries, nil
}

// Invalidate drops all cached boards; called after every fight.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	keys := make([]string, 0, len(sortKeys))
	for _, sortBy := range sortKeys {
		keys = append(keys, s.key(sortBy))
	}
	return s.cache.Del(ctx, keys...)
}

func (s *Service) key(sortBy string) string {
	return fmt.Sprintf("%s:%s", s.prefix, sortBy)
}
