package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// A repeat visit to the same path by the same visitor inside this window is
// counted once.
const viewTTL = 30 * time.Minute

// ViewDedup suppresses repeat page views backed by Redis.
// Key format: view:<visitor_key>:<path>
type ViewDedup struct {
	client *redis.Client
}

// NewViewDedup creates a ViewDedup wrapping the given Redis client.
func NewViewDedup(client *redis.Client) *ViewDedup {
	return &ViewDedup{client: client}
}

// IsDuplicate reports whether this visitor already viewed the path recently.
func (d *ViewDedup) IsDuplicate(ctx context.Context, visitorKey, path string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(visitorKey, path)).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the visit (expires after viewTTL).
func (d *ViewDedup) Mark(ctx context.Context, visitorKey, path string) error {
	return d.client.Set(ctx, d.key(visitorKey, path), "1", viewTTL).Err()
}

func (d *ViewDedup) key(visitorKey, path string) string {
	return fmt.Sprintf("view:%s:%s", visitorKey, path)
}
