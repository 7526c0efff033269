package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockpile/inventory-system/internal/core/domain"
)

const dedupTTL = time.Hour

// AdjustDedup stores adjustment results keyed by Idempotency-Key so replayed
// requests return the original outcome instead of moving stock twice.
// Key format: adjust:<idempotency-key>
type AdjustDedup struct {
	client *redis.Client
}

func NewAdjustDedup(client *redis.Client) *AdjustDedup {
	return &AdjustDedup{client: client}
}

// Lookup returns the recorded adjustment for key, or nil when unseen.
func (d *AdjustDedup) Lookup(ctx context.Context, key string) (*domain.Adjustment, error) {
	raw, err := d.client.Get(ctx, d.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("dedup lookup: %w", err)
	}

	var adj domain.Adjustment
	if err := json.Unmarshal(raw, &adj); err != nil {
		return nil, fmt.Errorf("dedup decode: %w", err)
	}
	return &adj, nil
}

// Store records the adjustment under key (expires after dedupTTL).
func (d *AdjustDedup) Store(ctx context.Context, key string, adj *domain.Adjustment) error {
	raw, err := json.Marshal(adj)
	if err != nil {
		return fmt.Errorf("dedup encode: %w", err)
	}
	return d.client.Set(ctx, d.key(key), raw, dedupTTL).Err()
}

func (d *AdjustDedup) key(key string) string {
	return "adjust:" + key
}
