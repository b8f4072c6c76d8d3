package ring

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

type stubStore struct {
	boxers  map[string]boxer.Boxer
	results map[int64][]boxer.Result
	fights  []boxer.FightRecord
}

func newStubStore(boxers ...boxer.Boxer) *stubStore {
	s := &stubStore{
		boxers:  make(map[string]boxer.Boxer),
		results: make(map[int64][]boxer.Result),
	}
	for _, b := range boxers {
		s.boxers[b.Name] = b
	}
	return s
}

func (s *stubStore) GetByName(_ context.Context, name string) (boxer.Boxer, error) {
	b, ok := s.boxers[name]
	if !ok {
		return boxer.Boxer{}, boxer.ErrNotFound
	}
	return b, nil
}

func (s *stubStore) RecordResult(_ context.Context, id int64, result boxer.Result) error {
	s.results[id] = append(s.results[id], result)
	return nil
}

func (s *stubStore) InsertFight(_ context.Context, rec boxer.FightRecord) error {
	s.fights = append(s.fights, rec)
	return nil
}

type fixedDraw struct {
	value float64
	err   error
}

func (f fixedDraw) Draw(_ context.Context) (float64, error) {
	return f.value, f.err
}

// Same name length, weight, reach and age bracket: equal skill, threshold 0.5.
var (
	first  = boxer.Boxer{ID: 1, Name: "Ali", Weight: 180, Height: 74, Reach: 78, Age: 30}
	second = boxer.Boxer{ID: 2, Name: "Foe", Weight: 180, Height: 74, Reach: 78, Age: 30}
)

func newTestService(store *stubStore, draw RandomSource) *Service {
	return NewService(New(), store, draw, ServiceOptions{}, zerolog.Nop())
}

func TestEnterUnknownBoxer(t *testing.T) {
	svc := newTestService(newStubStore(), fixedDraw{})

	_, err := svc.Enter(context.Background(), "Nobody")

	assert.ErrorIs(t, err, boxer.ErrNotFound)
	assert.Empty(t, svc.Boxers())
}

func TestFightRequiresTwoBoxers(t *testing.T) {
	store := newStubStore(first)
	svc := newTestService(store, fixedDraw{value: 0.1})

	_, err := svc.Fight(context.Background())
	assert.ErrorIs(t, err, ErrNotEnoughBoxers)

	_, err = svc.Enter(context.Background(), first.Name)
	require.NoError(t, err)

	_, err = svc.Fight(context.Background())
	assert.ErrorIs(t, err, ErrNotEnoughBoxers)
	assert.Empty(t, store.fights)
}

func TestFightLowDrawFavorsFirstEntrant(t *testing.T) {
	store := newStubStore(first, second)
	svc := newTestService(store, fixedDraw{value: 0.25})

	ctx := context.Background()
	_, err := svc.Enter(ctx, first.Name)
	require.NoError(t, err)
	_, err = svc.Enter(ctx, second.Name)
	require.NoError(t, err)

	out, err := svc.Fight(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Name, out.Winner.Name)
	assert.Equal(t, second.Name, out.Loser.Name)
	assert.Equal(t, []boxer.Result{boxer.ResultWin}, store.results[first.ID])
	assert.Equal(t, []boxer.Result{boxer.ResultLoss}, store.results[second.ID])
	require.Len(t, store.fights, 1)
	assert.Equal(t, first.ID, store.fights[0].WinnerID)

	// Ring is cleared after a resolved fight.
	assert.Empty(t, svc.Boxers())
}

func TestFightHighDrawFavorsSecondEntrant(t *testing.T) {
	store := newStubStore(first, second)
	svc := newTestService(store, fixedDraw{value: 0.75})

	ctx := context.Background()
	_, err := svc.Enter(ctx, first.Name)
	require.NoError(t, err)
	_, err = svc.Enter(ctx, second.Name)
	require.NoError(t, err)

	out, err := svc.Fight(ctx)
	require.NoError(t, err)

	assert.Equal(t, second.Name, out.Winner.Name)
	assert.Equal(t, []boxer.Result{boxer.ResultWin}, store.results[second.ID])
	assert.Equal(t, []boxer.Result{boxer.ResultLoss}, store.results[first.ID])
}

func TestConcurrentFightsResolveOnce(t *testing.T) {
	store := newStubStore(first, second)
	svc := newTestService(store, fixedDraw{value: 0.25})

	ctx := context.Background()
	_, err := svc.Enter(ctx, first.Name)
	require.NoError(t, err)
	_, err = svc.Enter(ctx, second.Name)
	require.NoError(t, err)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Fight(ctx)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var resolved, rejected int
	for err := range errs {
		if err == nil {
			resolved++
			continue
		}
		assert.ErrorIs(t, err, ErrNotEnoughBoxers)
		rejected++
	}

	// One request wins the race; the other finds the ring already cleared.
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 1, rejected)
	assert.Len(t, store.results[first.ID], 1)
	assert.Len(t, store.results[second.ID], 1)
	assert.Len(t, store.fights, 1)
}

func TestFightDrawFailureLeavesRingIntact(t *testing.T) {
	store := newStubStore(first, second)
	svc := newTestService(store, fixedDraw{err: errors.New("random.org unreachable")})

	ctx := context.Background()
	_, err := svc.Enter(ctx, first.Name)
	require.NoError(t, err)
	_, err = svc.Enter(ctx, second.Name)
	require.NoError(t, err)

	_, err = svc.Fight(ctx)

	assert.Error(t, err)
	assert.Len(t, svc.Boxers(), 2)
	assert.Empty(t, store.results)
}
