package fraud

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"cardeval/internal/evaluator/models"
	platformstrings "cardeval/pkg/platform/strings"
)

var blocklistCheckDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "cardeval_fraud_blocklist_check_duration_ms",
	Help:    "Latency of Redis fraud blocklist checks in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

// DefaultBlocklistKey is the Redis set holding blocked surnames.
const DefaultBlocklistKey = "fraud:blocklist:surnames"

// RedisBlocklist is a Checker backed by a Redis set of normalized surnames,
// so that several instances share one blocklist.
type RedisBlocklist struct {
	client *redis.Client
	key    string
}

// RedisBlocklistOption configures a RedisBlocklist.
type RedisBlocklistOption func(*RedisBlocklist)

// WithBlocklistKey overrides the Redis set key.
func WithBlocklistKey(key string) RedisBlocklistOption {
	return func(b *RedisBlocklist) {
		if key != "" {
			b.key = key
		}
	}
}

func NewRedisBlocklist(client *redis.Client, opts ...RedisBlocklistOption) *RedisBlocklist {
	b := &RedisBlocklist{
		client: client,
		key:    DefaultBlocklistKey,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Add blocks the given surnames.
func (b *RedisBlocklist) Add(ctx context.Context, surnames ...string) error {
	members := normalizedMembers(surnames)
	if len(members) == 0 {
		return nil
	}
	if err := b.client.SAdd(ctx, b.key, members...).Err(); err != nil {
		return fmt.Errorf("add blocked surnames: %w", err)
	}
	return nil
}

// Remove unblocks the given surnames.
func (b *RedisBlocklist) Remove(ctx context.Context, surnames ...string) error {
	members := normalizedMembers(surnames)
	if len(members) == 0 {
		return nil
	}
	if err := b.client.SRem(ctx, b.key, members...).Err(); err != nil {
		return fmt.Errorf("remove blocked surnames: %w", err)
	}
	return nil
}

func (b *RedisBlocklist) CheckApplication(ctx context.Context, app models.Application) (bool, error) {
	start := time.Now()
	defer func() {
		blocklistCheckDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	surname := normalizeSurname(app.LastName)
	if surname == "" {
		return false, nil
	}
	blocked, err := b.client.SIsMember(ctx, b.key, surname).Result()
	if err != nil {
		return false, fmt.Errorf("check fraud blocklist: %w", err)
	}
	return blocked, nil
}

func normalizedMembers(surnames []string) []any {
	keys := platformstrings.DedupeFold(surnames)
	members := make([]any, len(keys))
	for i, key := range keys {
		members[i] = key
	}
	return members
}
