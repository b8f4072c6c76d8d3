// Package feed publishes fight results over Redis Pub/Sub and forwards them
// to WebSocket subscribers.
package feed

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/boxer"
	"github.com/ringsidehq/boxing-platform/internal/leaderboard"
	"github.com/ringsidehq/boxing-platform/internal/ring"
)

const defaultChannel = "fights:updates"

// Event is the wire payload for a resolved fight, with the refreshed top of
// the leaderboard attached.
type Event struct {
	Fight ring.FightEvent          `json:"fight"`
	Top   []boxer.LeaderboardEntry `json:"top"`
}

// Publisher pushes fight events onto the Redis feed channel.
type Publisher struct {
	redis   *redis.Client
	boards  *leaderboard.Service
	channel string
	topN    int
	logger  zerolog.Logger
}

// NewPublisher creates a fight feed publisher.
func NewPublisher(redisClient *redis.Client, boards *leaderboard.Service, channel string, logger zerolog.Logger) *Publisher {
	if channel == "" {
		channel = defaultChannel
	}
	return &Publisher{
		redis:   redisClient,
		boards:  boards,
		channel: channel,
		topN:    10,
		logger:  logger.With().Str("component", "fight_feed_publisher").Logger(),
	}
}

var _ ring.EventPublisher = (*Publisher)(nil)

// PublishFight marshals the fight plus the current top entries and publishes
// them on the feed channel.
func (p *Publisher) PublishFight(ctx context.Context, evt ring.FightEvent) error {
	payload := Event{Fight: evt}

	if p.boards != nil {
		entries, err := p.boards.Board(ctx, leaderboard.SortWins)
		if err != nil {
			p.logger.Warn().Err(err).Msg("leaderboard fetch for feed failed")
		} else {
			if len(entries) > p.topN {
				entries = entries[:p.topN]
			}
			payload.Top = entries
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.redis.Publish(ctx, p.channel, data).Err()
}
