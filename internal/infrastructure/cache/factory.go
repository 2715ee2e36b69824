package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/ledger/internal/domain/shared"
	"github.com/erp/ledger/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SeedableCounter is a counter whose last value can be read, such as the
// settings table counter. It backs the ledger when Redis is off and seeds
// the Redis counter when Redis is on.
type SeedableCounter interface {
	shared.SequenceCounter
	Current(ctx context.Context, key string) (int64, error)
}

// Stores bundles the counter and idempotency store chosen from configuration
type Stores struct {
	Counter     shared.SequenceCounter
	Idempotency shared.IdempotencyStore
	Backend     string

	closers []func() error
}

// Close releases the Redis connection or the in-memory sweeper
func (s *Stores) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// StoresOption configures NewStores
type StoresOption func(*storesOptions)

type storesOptions struct {
	logger                *zap.Logger
	allowInMemoryFallback bool
	seedKeys              []string
	pingTimeout           time.Duration
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) StoresOption {
	return func(o *storesOptions) {
		o.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis falls back
// to the database counter and in-process idempotency. Default true.
func WithInMemoryFallback(allow bool) StoresOption {
	return func(o *storesOptions) {
		o.allowInMemoryFallback = allow
	}
}

// WithSeedKeys lists the counter keys copied from the database into Redis
func WithSeedKeys(keys ...string) StoresOption {
	return func(o *storesOptions) {
		o.seedKeys = keys
	}
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, timeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr(), err)
	}
	return client, nil
}

// NewStores picks Redis when it is enabled and reachable, else dbCounter
// and an in-memory idempotency store.
func NewStores(ctx context.Context, cfg config.RedisConfig, dbCounter SeedableCounter, opts ...StoresOption) (*Stores, error) {
	o := storesOptions{
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		pingTimeout:           5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.Enabled {
		client, err := NewRedisClient(ctx, cfg, o.pingTimeout)
		if err == nil {
			counter := NewRedisCounter(client, "")
			if err := seedCounter(ctx, counter, dbCounter, o.seedKeys); err != nil {
				_ = client.Close()
				return nil, err
			}
			o.logger.Info("Using Redis for counters and idempotency", zap.String("addr", cfg.Addr()))
			return &Stores{
				Counter:     counter,
				Idempotency: NewRedisIdempotencyStore(client, ""),
				Backend:     "redis",
				closers:     []func() error{client.Close},
			}, nil
		}
		if !o.allowInMemoryFallback {
			return nil, fmt.Errorf("redis required but unavailable: %w", err)
		}
		o.logger.Warn("Redis unavailable, falling back to database counter and in-memory idempotency", zap.Error(err))
	}

	mem := NewInMemoryIdempotencyStore()
	return &Stores{
		Counter:     dbCounter,
		Idempotency: mem,
		Backend:     "database",
		closers:     []func() error{mem.Close},
	}, nil
}

// seedCounter copies the last numbers from the database so Redis never
// hands out a number that was already used
func seedCounter(ctx context.Context, counter *RedisCounter, source SeedableCounter, keys []string) error {
	if source == nil {
		return nil
	}
	for _, key := range keys {
		current, err := source.Current(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to read counter %s: %w", key, err)
		}
		if _, err := counter.Seed(ctx, key, current); err != nil {
			return fmt.Errorf("failed to seed counter %s: %w", key, err)
		}
	}
	return nil
}
