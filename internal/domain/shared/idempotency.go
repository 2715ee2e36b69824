package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers request keys that have already been accepted
type IdempotencyStore interface {
	// Claim marks key as in use for ttl. It returns false when the key was
	// already claimed by an earlier request.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so the request can be retried
	Release(ctx context.Context, key string) error
}

// SequenceCounter hands out monotonically increasing numbers per key.
// IncrementAndGet must be atomic with respect to concurrent callers.
type SequenceCounter interface {
	IncrementAndGet(ctx context.Context, key string) (int64, error)
}
