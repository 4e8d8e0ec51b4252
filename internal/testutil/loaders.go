package testutil

import (
	"context"
	"sync"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
)

// StaticLoader is a cache.Loader test double that returns a fixed table or
// error and counts fetches.
type StaticLoader struct {
	Table sheets.Table
	Err   error

	mu      sync.Mutex
	fetches int
}

// Fetch returns the configured table or error.
func (l *StaticLoader) Fetch(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error) {
	l.mu.Lock()
	l.fetches++
	l.mu.Unlock()

	if l.Err != nil {
		return sheets.Table{}, l.Err
	}
	return l.Table, nil
}

// Fetches returns how many times Fetch was called.
func (l *StaticLoader) Fetches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetches
}
