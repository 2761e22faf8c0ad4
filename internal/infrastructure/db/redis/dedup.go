package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// EventDedup provides idempotency checks for order status events.
// Key format: dedup:<order_id>:<status>:<unix_timestamp>
type EventDedup struct {
	client *redis.Client
}

// NewEventDedup creates an EventDedup wrapping the given Redis client.
func NewEventDedup(client *redis.Client) *EventDedup {
	return &EventDedup{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *EventDedup) IsDuplicate(ctx context.Context, orderID int64, status string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(orderID, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *EventDedup) Mark(ctx context.Context, orderID int64, status string, ts time.Time) error {
	return d.client.Set(ctx, d.key(orderID, status, ts), "1", dedupTTL).Err()
}

func (d *EventDedup) key(orderID int64, status string, ts time.Time) string {
	return fmt.Sprintf("dedup:%d:%s:%d", orderID, status, ts.Unix())
}
