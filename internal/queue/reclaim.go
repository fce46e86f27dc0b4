package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// StaleMessage is a pending job taken over from a consumer that stopped
// acknowledging it.
type StaleMessage struct {
	Message
	Deliveries       int64 // including the claim that returned it
	Idle             time.Duration
	PreviousConsumer string
}

// ClaimStale moves up to count jobs that have been pending for at least
// minIdle to claimant. Entries that no longer parse as jobs are acknowledged
// and dropped.
func (c *RedisConsumer) ClaimStale(ctx context.Context, claimant string, minIdle time.Duration, count int64) ([]StaleMessage, error) {
	pending, err := c.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: c.cfg.Stream,
		Group:  c.cfg.Group,
		Idle:   minIdle,
		Start:  "-",
		End:    "+",
		Count:  count,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("listing pending jobs: %w", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	owners := make(map[string]redis.XPendingExt, len(pending))
	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		owners[p.ID] = p
		ids = append(ids, p.ID)
	}

	claimed, err := c.client.XClaim(ctx, &redis.XClaimArgs{
		Stream:   c.cfg.Stream,
		Group:    c.cfg.Group,
		Consumer: claimant,
		MinIdle:  minIdle,
		Messages: ids,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("claiming pending jobs: %w", err)
	}

	stale := make([]StaleMessage, 0, len(claimed))
	for _, raw := range claimed {
		msg, err := ParseMessage(raw)
		if err != nil {
			slog.ErrorContext(ctx, "dropping pending entry that is not a job",
				"error", err,
				"raw_message_id", raw.ID)
			_ = c.Ack(ctx, Message{ID: raw.ID, Raw: raw})
			continue
		}

		owner := owners[raw.ID]
		stale = append(stale, StaleMessage{
			Message:          msg,
			Deliveries:       owner.RetryCount + 1,
			Idle:             owner.Idle,
			PreviousConsumer: owner.Consumer,
		})
	}
	return stale, nil
}
