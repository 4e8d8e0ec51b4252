package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/apperrors"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/cache"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/model"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/repository"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/validation"
)

// snapshotsToKeep bounds snapshot history per worksheet; older rows are
// pruned after each refresh.
const snapshotsToKeep = 10

// DashboardService coordinates the load → validate → filter → aggregate
// pipeline. It reads worksheet tables through the caching loader chain,
// validates the schema, and computes the KPI and chart aggregations the
// dashboard renders. The loaded record set is immutable; every request
// computes its derived views fresh.
type DashboardService struct {
	loader     cache.Loader
	memo       *cache.MemoLoader
	snapshots  *repository.SnapshotRepository
	sheetURL   string
	worksheets []string
}

// NewDashboardService creates a new DashboardService. loader is the full
// caching chain used for reads; memo is the in-process tier so Refresh can
// clear it. snapshots may not be nil. worksheets must contain at least one
// entry; the first is the default.
func NewDashboardService(
	loader cache.Loader,
	memo *cache.MemoLoader,
	snapshots *repository.SnapshotRepository,
	sheetURL string,
	worksheets []string,
) *DashboardService {
	return &DashboardService{
		loader:     loader,
		memo:       memo,
		snapshots:  snapshots,
		sheetURL:   sheetURL,
		worksheets: worksheets,
	}
}

// Worksheets returns the configured worksheet identifiers.
func (s *DashboardService) Worksheets() []string {
	return s.worksheets
}

// resolveWorksheet maps an optional request parameter onto a configured
// worksheet. Empty means the first configured worksheet.
func (s *DashboardService) resolveWorksheet(worksheet string) (string, error) {
	if worksheet == "" {
		return s.worksheets[0], nil
	}
	for _, ws := range s.worksheets {
		if ws == worksheet {
			return ws, nil
		}
	}
	return "", fmt.Errorf("%w: %s", apperrors.ErrUnknownWorksheet, worksheet)
}

// loadHoldings runs the load and validate stages for one worksheet. When the
// remote source cannot be reached it falls back to the most recent stored
// snapshot and reports the result as stale. Schema validation failures are
// fatal for the render cycle: no partial result is produced.
func (s *DashboardService) loadHoldings(ctx context.Context, worksheet string) ([]model.Holding, bool, error) {
	ws, err := s.resolveWorksheet(worksheet)
	if err != nil {
		return nil, false, err
	}

	stale := false
	table, err := s.loader.Fetch(ctx, s.sheetURL, ws)
	if err != nil {
		snap, snapErr := s.snapshots.GetLatest(ctx, s.sheetURL, ws)
		if snapErr != nil {
			return nil, false, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
		}
		log.Printf("Worksheet %q fetch failed, serving snapshot from %s: %v", ws, snap.FetchedAt, err)
		table = snap
		stale = true
	}

	if err := validation.ValidateColumns(table.Headers); err != nil {
		return nil, false, err
	}

	holdings, err := sheets.ParseHoldings(table)
	if err != nil {
		return nil, false, err
	}

	return holdings, stale, nil
}

// Clients returns the distinct client names in the worksheet, in
// first-encounter order.
func (s *DashboardService) Clients(ctx context.Context, worksheet string) ([]string, bool, error) {
	holdings, stale, err := s.loadHoldings(ctx, worksheet)
	if err != nil {
		return nil, false, err
	}
	return DistinctClients(holdings), stale, nil
}

// Summary computes the three scalar KPIs for one client.
func (s *DashboardService) Summary(ctx context.Context, worksheet, client string) (model.ClientSummary, bool, error) {
	holdings, stale, err := s.loadHoldings(ctx, worksheet)
	if err != nil {
		return model.ClientSummary{}, false, err
	}

	summary := ComputeSummary(FilterByClient(holdings, client))
	summary.Client = client
	return summary, stale, nil
}

// SectorBreakdown computes the per-sector aggregation for one client.
func (s *DashboardService) SectorBreakdown(ctx context.Context, worksheet, client string) ([]model.SectorBreakdownRow, bool, error) {
	holdings, stale, err := s.loadHoldings(ctx, worksheet)
	if err != nil {
		return nil, false, err
	}
	return ComputeSectorBreakdown(FilterByClient(holdings, client)), stale, nil
}

// TopHoldings computes the top-five per-product aggregation for one client.
func (s *DashboardService) TopHoldings(ctx context.Context, worksheet, client string) ([]model.TopHolding, bool, error) {
	holdings, stale, err := s.loadHoldings(ctx, worksheet)
	if err != nil {
		return nil, false, err
	}
	return ComputeTopHoldings(FilterByClient(holdings, client)), stale, nil
}

// Refresh invalidates every cache tier for the configured worksheets and
// re-fetches them, storing each successfully fetched table as a snapshot.
// Worksheets are refreshed concurrently; the first failure is returned but
// does not stop the remaining fetches from priming the cache.
func (s *DashboardService) Refresh(ctx context.Context) error {
	if s.memo != nil {
		for _, ws := range s.worksheets {
			s.memo.Invalidate(ctx, s.sheetURL, ws)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, ws := range s.worksheets {
		g.Go(func() error {
			table, err := s.loader.Fetch(ctx, s.sheetURL, ws)
			if err != nil {
				return fmt.Errorf("failed to refresh worksheet %q: %w", ws, err)
			}

			if err := s.snapshots.Save(ctx, table); err != nil {
				log.Printf("Failed to store snapshot for worksheet %q: %v", ws, err)
				return nil
			}
			if err := s.snapshots.Prune(ctx, s.sheetURL, ws, snapshotsToKeep); err != nil {
				log.Printf("Failed to prune snapshots for worksheet %q: %v", ws, err)
			}
			return nil
		})
	}

	return g.Wait()
}
