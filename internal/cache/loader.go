// Package cache provides caching decorators around the worksheet loader.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
)

// Loader fetches a worksheet table for a (sheet URL, worksheet) pair.
// The sheets client implements it directly; the cache types decorate it.
type Loader interface {
	Fetch(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error)
}

// Invalidator is implemented by loader tiers that can drop the cached entry
// for one (sheet URL, worksheet) pair.
type Invalidator interface {
	Clear(ctx context.Context, sheetURL, worksheet string)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error)

// Fetch calls f.
func (f LoaderFunc) Fetch(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error) {
	return f(ctx, sheetURL, worksheet)
}

// MemoLoader memoizes worksheet fetches in process memory, keyed by
// URL+worksheet. The first call for a key performs the fetch; later calls
// with the same key return the stored table without touching the source.
//
// Invalidation is external to the lookup: Clear (explicit cache clear) or
// process restart. An optional TTL bounds staleness between clears; zero
// means entries never expire on their own.
type MemoLoader struct {
	inner Loader
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]memoEntry
}

type memoEntry struct {
	table    sheets.Table
	storedAt time.Time
}

// NewMemoLoader decorates a Loader with in-memory memoization.
func NewMemoLoader(inner Loader, ttl time.Duration) *MemoLoader {
	return &MemoLoader{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]memoEntry),
	}
}

// Fetch returns the memoized table for the key when present and fresh,
// otherwise fetches from the inner loader and stores the result.
func (l *MemoLoader) Fetch(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error) {
	key := cacheKey("", sheetURL, worksheet)

	l.mu.RLock()
	entry, ok := l.entries[key]
	l.mu.RUnlock()

	if ok && (l.ttl <= 0 || time.Since(entry.storedAt) < l.ttl) {
		return entry.table, nil
	}

	table, err := l.inner.Fetch(ctx, sheetURL, worksheet)
	if err != nil {
		return sheets.Table{}, err
	}

	l.mu.Lock()
	l.entries[key] = memoEntry{table: table, storedAt: time.Now()}
	l.mu.Unlock()

	return table, nil
}

// Clear drops every memoized entry. The next Fetch per key re-fetches.
func (l *MemoLoader) Clear() {
	l.mu.Lock()
	l.entries = make(map[string]memoEntry)
	l.mu.Unlock()
}

// Invalidate drops the memoized entry for one key and forwards the
// invalidation to the inner loader when that tier caches too. This is how an
// explicit refresh reaches every tier of the chain, not just the in-process
// one.
func (l *MemoLoader) Invalidate(ctx context.Context, sheetURL, worksheet string) {
	key := cacheKey("", sheetURL, worksheet)

	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()

	if inv, ok := l.inner.(Invalidator); ok {
		inv.Clear(ctx, sheetURL, worksheet)
	}
}

// cacheKey builds a cache key from an optional namespace and the fetch
// parameters. Separator characters in user-supplied values are replaced so
// keys stay unambiguous.
func cacheKey(namespace, sheetURL, worksheet string) string {
	if namespace == "" {
		return fmt.Sprintf("%s|%s", safe(sheetURL), safe(worksheet))
	}
	return fmt.Sprintf("%s:%s:%s", namespace, safe(sheetURL), safe(worksheet))
}

var keySanitizer = strings.NewReplacer(":", "_", "|", "_", " ", "_")

func safe(s string) string {
	return keySanitizer.Replace(s)
}
