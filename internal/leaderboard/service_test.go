package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

type memoryCache struct {
	store map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	if data, ok := c.store[key]; ok {
		return data, nil
	}
	return nil, nil
}

func (c *memoryCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.store[key] = data
	return nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.store, key)
	}
	return nil
}

type stubBoardStore struct {
	entries []boxer.LeaderboardEntry
	err     error
	calls   int
}

func (s *stubBoardStore) Leaderboard(_ context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

var sampleEntries = []boxer.LeaderboardEntry{
	{ID: 1, Name: "Ali", Fights: 4, Wins: 4, WinPct: 100.0},
	{ID: 2, Name: "Foe", Fights: 4, Wins: 1, WinPct: 25.0},
}

func TestBoardCachesStoreResults(t *testing.T) {
	store := &stubBoardStore{entries: sampleEntries}
	cache := newMemoryCache()
	svc := NewService(store, cache, zerolog.Nop(), ServiceOptions{})

	ctx := context.Background()

	got, err := svc.Board(ctx, SortWins)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
	assert.Equal(t, 1, store.calls)

	// Second read is served from cache.
	got, err = svc.Board(ctx, SortWins)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries, got)
	assert.Equal(t, 1, store.calls)
}

func TestBoardRejectsUnknownSort(t *testing.T) {
	svc := NewService(&stubBoardStore{}, newMemoryCache(), zerolog.Nop(), ServiceOptions{})

	_, err := svc.Board(context.Background(), "reach")

	assert.ErrorContains(t, err, "invalid sort_by")
}

func TestInvalidateForcesRefetch(t *testing.T) {
	store := &stubBoardStore{entries: sampleEntries}
	cache := newMemoryCache()
	svc := NewService(store, cache, zerolog.Nop(), ServiceOptions{})

	ctx := context.Background()

	_, err := svc.Board(ctx, SortWins)
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(ctx))

	_, err = svc.Board(ctx, SortWins)
	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)
}

func TestBoardPropagatesStoreError(t *testing.T) {
	store := &stubBoardStore{err: errors.New("db down")}
	svc := NewService(store, newMemoryCache(), zerolog.Nop(), ServiceOptions{})

	_, err := svc.Board(context.Background(), SortWinPct)

	assert.ErrorContains(t, err, "db down")
}
