package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is the report cache contract. A nil cache is a
// valid configuration; callers must tolerate its absence.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
