package ring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
)

var (
	fightsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_fights_total",
		Help: "Number of fights resolved.",
	})
	fightErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boxing_fight_errors_total",
		Help: "Number of fight attempts that failed.",
	})
)

// BoxerStore is the slice of boxer persistence the ring needs.
type BoxerStore interface {
	GetByName(ctx context.Context, name string) (boxer.Boxer, error)
	RecordResult(ctx context.Context, id int64, result boxer.Result) error
	InsertFight(ctx context.Context, rec boxer.FightRecord) error
}

// RandomSource supplies the draw in [0, 1) that resolves a fight.
type RandomSource interface {
	Draw(ctx context.Context) (float64, error)
}

// FightEvent describes a resolved fight for feed consumers.
type FightEvent struct {
	FightID    uuid.UUID `json:"fight_id"`
	WinnerID   int64     `json:"winner_id"`
	WinnerName string    `json:"winner_name"`
	LoserID    int64     `json:"loser_id"`
	LoserName  string    `json:"loser_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher pushes fight events to the live feed.
type EventPublisher interface {
	PublishFight(ctx context.Context, evt FightEvent) error
}

// BoardInvalidator drops cached leaderboards after results change.
type BoardInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Outcome is the result of a completed fight.
type Outcome struct {
	FightID uuid.UUID
	Winner  boxer.Boxer
	Loser   boxer.Boxer
}

// ServiceOptions carries the optional fight side effects.
type ServiceOptions struct {
	Publisher EventPublisher
	Boards    BoardInvalidator
}

// Service manages ring membership and fight resolution.
type Service struct {
	ring      *Ring
	store     BoxerStore
	random    RandomSource
	publisher EventPublisher
	boards    BoardInvalidator
	logger    zerolog.Logger

	// fightMu serializes resolution so concurrent fight requests cannot
	// resolve against the same occupants and double-record stats.
	fightMu sync.Mutex
}

// NewService constructs a ring service.
func NewService(ring *Ring, store BoxerStore, random RandomSource, opts ServiceOptions, logger zerolog.Logger) *Service {
	return &Service{
		ring:      ring,
		store:     store,
		random:    random,
		publisher: opts.Publisher,
		boards:    opts.Boards,
		logger:    logger.With().Str("component", "ring").Logger(),
	}
}

// Enter resolves a boxer by name and puts them in the ring.
func (s *Service) Enter(ctx context.Context, name string) (boxer.Boxer, error) {
	b, err := s.store.GetByName(ctx, name)
	if err != nil {
		return boxer.Boxer{}, err
	}
	if err := s.ring.Enter(b); err != nil {
		return boxer.Boxer{}, err
	}
	s.logger.Info().Str("name", b.Name).Int("occupants", s.ring.Len()).Msg("boxer entered ring")
	return b, nil
}

// Boxers lists the current ring occupants.
func (s *Service) Boxers() []boxer.Boxer {
	return s.ring.Boxers()
}

// Clear empties the ring.
func (s *Service) Clear() {
	s.ring.Clear()
	s.logger.Info().Msg("ring cleared")
}

// Fight resolves a match between the two ring occupants, updates both
// records, persists the fight, and clears the ring.
func (s *Service) Fight(ctx context.Context) (Outcome, error) {
	s.fightMu.Lock()
	defer s.fightMu.Unlock()

	occupants := s.ring.Boxers()
	if len(occupants) < Capacity {
		return Outcome{}, ErrNotEnoughBoxers
	}
	one, two := occupants[0], occupants[1]

	skillOne := FightingSkill(one)
	skillTwo := FightingSkill(two)
	threshold := winThreshold(skillOne, skillTwo)

	draw, err := s.random.Draw(ctx)
	if err != nil {
		fightErrors.Inc()
		return Outcome{}, fmt.Errorf("fight draw: %w", err)
	}

	winner, loser := two, one
	if draw < threshold {
		winner, loser = one, two
	}

	if err := s.store.RecordResult(ctx, winner.ID, boxer.ResultWin); err != nil {
		fightErrors.Inc()
		return Outcome{}, fmt.Errorf("record win: %w", err)
	}
	if err := s.store.RecordResult(ctx, loser.ID, boxer.ResultLoss); err != nil {
		fightErrors.Inc()
		return Outcome{}, fmt.Errorf("record loss: %w", err)
	}

	out := Outcome{FightID: uuid.New(), Winner: winner, Loser: loser}
	rec := boxer.FightRecord{
		ID:       out.FightID,
		BoxerOne: one.ID,
		BoxerTwo: two.ID,
		WinnerID: winner.ID,
		FoughtAt: time.Now().UTC(),
	}
	if err := s.store.InsertFight(ctx, rec); err != nil {
		// Stats already applied; history is best-effort at this point.
		s.logger.Warn().Err(err).Msg("fight history insert failed")
	}

	s.ring.Clear()
	fightsTotal.Inc()
	s.logger.Info().
		Str("fight_id", out.FightID.String()).
		Str("winner", winner.Name).
		Str("loser", loser.Name).
		Float64("draw", draw).
		Float64("threshold", threshold).
		Msg("fight resolved")

	s.afterFight(ctx, out, rec.FoughtAt)
	return out, nil
}

func (s *Service) afterFight(ctx context.Context, out Outcome, at time.Time) {
	if s.boards != nil {
		if err := s.boards.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("leaderboard invalidation failed")
		}
	}
	if s.publisher != nil {
		evt := FightEvent{
			FightID:    out.FightID,
			WinnerID:   out.Winner.ID,
			WinnerName: out.Winner.Name,
			LoserID:    out.Loser.ID,
			LoserName:  out.Loser.Name,
			OccurredAt: at,
		}
		if err := s.publisher.PublishFight(ctx, evt); err != nil {
			s.logger.Warn().Err(err).Msg("fight event publish failed")
		}
	}
}
