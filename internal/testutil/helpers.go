package testutil

import (
	"database/sql"
	"testing"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/cache"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/repository"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/service"
)

// DefaultSheetURL matches the sheet URL used by MakeTable.
const DefaultSheetURL = "https://example.com/holdings.csv"

// NewTestDashboardService wires a DashboardService over the given loader
// and an in-memory snapshot store. worksheets defaults to a single "Sheet1"
// when empty.
func NewTestDashboardService(t *testing.T, db *sql.DB, loader cache.Loader, worksheets ...string) *service.DashboardService {
	t.Helper()

	if len(worksheets) == 0 {
		worksheets = []string{"Sheet1"}
	}

	memo := cache.NewMemoLoader(loader, 0)
	snapshotRepo := repository.NewSnapshotRepository(db)

	return service.NewDashboardService(
		memo,
		memo,
		snapshotRepo,
		DefaultSheetURL,
		worksheets,
	)
}
