// Package presence tracks which conversations have a live end-user connection.
// Presence is owned by the realtime layer: joining a conversation room marks it
// online with a TTL, heartbeats refresh the key, disconnecting deletes it. A
// missed heartbeat therefore degrades to offline on its own.
package presence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/more-experts/support-portal/internal/domain"
)

const keyPrefix = "presence:"

// Tracker stores presence flags in Redis.
type Tracker struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewTracker builds a tracker over the shared Redis client.
func NewTracker(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Tracker {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Tracker{client: client, ttl: ttl, logger: logger}
}

// MarkOnline flags the conversation online until the TTL lapses.
func (t *Tracker) MarkOnline(ctx context.Context, conversationID string) error {
	return t.client.Set(ctx, keyPrefix+conversationID, "1", t.ttl).Err()
}

// Refresh extends the online window; used as the heartbeat.
func (t *Tracker) Refresh(ctx context.Context, conversationID string) error {
	return t.MarkOnline(ctx, conversationID)
}

// MarkOffline clears the flag immediately.
func (t *Tracker) MarkOffline(ctx context.Context, conversationID string) error {
	return t.client.Del(ctx, keyPrefix+conversationID).Err()
}

// IsOnline reports the current flag for one conversation.
func (t *Tracker) IsOnline(ctx context.Context, conversationID string) (bool, error) {
	n, err := t.client.Exists(ctx, keyPrefix+conversationID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Overlay stamps the presence status onto a listing. Redis being unreachable
// is not fatal: everything reads as offline and the listing still renders.
func (t *Tracker) Overlay(ctx context.Context, convs []domain.Conversation) error {
	if len(convs) == 0 {
		return nil
	}
	keys := make([]string, len(convs))
	for i := range convs {
		keys[i] = keyPrefix + convs[i].ID
	}
	vals, err := t.client.MGet(ctx, keys...).Result()
	if err != nil {
		t.logger.Warn("presence overlay unavailable", zap.Error(err))
		for i := range convs {
			convs[i].Status = domain.PresenceOffline
		}
		return err
	}
	for i := range convs {
		if vals[i] != nil {
			convs[i].Status = domain.PresenceOnline
		} else {
			convs[i].Status = domain.PresenceOffline
		}
	}
	return nil
}
