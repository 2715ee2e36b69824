package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

const defaultCounterPrefix = "ledger:counter:"

type counterClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisCounter hands out document numbers with INCR
type RedisCounter struct {
	client    counterClient
	keyPrefix string
}

// NewRedisCounter creates a counter over an existing client
func NewRedisCounter(client counterClient, keyPrefix string) *RedisCounter {
	if keyPrefix == "" {
		keyPrefix = defaultCounterPrefix
	}
	return &RedisCounter{client: client, keyPrefix: keyPrefix}
}

func (c *RedisCounter) IncrementAndGet(ctx context.Context, key string) (int64, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, shared.NewDomainError(shared.CodeInvalidInput, "Counter key cannot be empty")
	}
	n, err := c.client.Incr(ctx, c.keyPrefix+key).Result()
	if err != nil {
		return 0, shared.NewStorageError(err)
	}
	return n, nil
}

// Seed starts key at floor unless the key already exists. Used to carry
// numbers over from the settings table when Redis is switched on.
func (c *RedisCounter) Seed(ctx context.Context, key string, floor int64) (bool, error) {
	ok, err := c.client.SetNX(ctx, c.keyPrefix+key, floor, 0).Result()
	if err != nil {
		return false, shared.NewStorageError(err)
	}
	return ok, nil
}

// Current returns the last number handed out for key, 0 when none was
func (c *RedisCounter) Current(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Get(ctx, c.keyPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, shared.NewStorageError(err)
	}
	return n, nil
}

var _ shared.SequenceCounter = (*RedisCounter)(nil)
