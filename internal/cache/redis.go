package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
)

// RedisLoader decorates a Loader with a Redis read-through tier so multiple
// processes share one fetch result. Cache failures are best effort: a
// missing, corrupt, or unreachable cache falls back to the inner loader.
type RedisLoader struct {
	inner     Loader
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewRedisLoader decorates a Loader with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses
// "sheets".
func NewRedisLoader(rdb *redis.Client, ttl time.Duration, inner Loader, namespace string) *RedisLoader {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "sheets"
	}
	return &RedisLoader{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Fetch retrieves a table, checking Redis first then falling back to the
// inner loader. A nil Redis client bypasses the cache entirely.
func (l *RedisLoader) Fetch(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error) {
	if l.rdb == nil {
		return l.inner.Fetch(ctx, sheetURL, worksheet)
	}

	key := cacheKey(l.namespace, sheetURL, worksheet)

	if b, err := l.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var table sheets.Table
		if err := json.Unmarshal(b, &table); err == nil {
			return table, nil
		}
		// Delete corrupted cache entry
		_ = l.rdb.Del(ctx, key).Err()
	}

	table, err := l.inner.Fetch(ctx, sheetURL, worksheet)
	if err != nil {
		return sheets.Table{}, err
	}

	if b, err := json.Marshal(table); err == nil {
		_ = l.rdb.Set(ctx, key, b, l.ttl).Err() // Best effort
	}

	return table, nil
}

// Clear removes the cached entry for one (sheet URL, worksheet) pair.
func (l *RedisLoader) Clear(ctx context.Context, sheetURL, worksheet string) {
	if l.rdb == nil {
		return
	}
	_ = l.rdb.Del(ctx, cacheKey(l.namespace, sheetURL, worksheet)).Err()
}
