package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock acquired through Locker.
type UnlockFunc func(ctx context.Context) error

// Locker serializes work on a key across processes.
// The conversion service takes it around cache-miss conversions so replicas
// sharing a store don't build the same DFA concurrently.
type Locker interface {
	// Lock blocks until the lock for key is held or ctx is done.
	// The lock expires after ttl if never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
