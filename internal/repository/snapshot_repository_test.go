package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/apperrors"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/repository"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/testutil"
)

func makeSnapshot(worksheet string, fetchedAt time.Time) sheets.Table {
	return sheets.Table{
		SheetURL:  "https://example.com/holdings.csv",
		Worksheet: worksheet,
		Headers:   []string{"Client Name", "Sector"},
		Rows:      [][]string{{"Client A", "Tech"}},
		FetchedAt: fetchedAt,
	}
}

// TestSnapshotRepository_SaveAndGetLatest tests the snapshot round trip.
func TestSnapshotRepository_SaveAndGetLatest(t *testing.T) {
	t.Run("round-trips a stored table", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		saved := makeSnapshot("Sheet1", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
		if err := repo.Save(context.Background(), saved); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		got, err := repo.GetLatest(context.Background(), saved.SheetURL, "Sheet1")
		if err != nil {
			t.Fatalf("GetLatest() returned unexpected error: %v", err)
		}

		if len(got.Headers) != 2 || got.Headers[0] != "Client Name" {
			t.Errorf("Headers = %v, want [Client Name Sector]", got.Headers)
		}
		if len(got.Rows) != 1 || got.Rows[0][0] != "Client A" {
			t.Errorf("Rows = %v", got.Rows)
		}
		if !got.FetchedAt.Equal(saved.FetchedAt) {
			t.Errorf("FetchedAt = %v, want %v", got.FetchedAt, saved.FetchedAt)
		}
	})

	t.Run("returns the newest snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		older := makeSnapshot("Sheet1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		newer := makeSnapshot("Sheet1", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
		newer.Rows = [][]string{{"Client B", "Energy"}}

		for _, snap := range []sheets.Table{older, newer} {
			if err := repo.Save(context.Background(), snap); err != nil {
				t.Fatalf("Save() returned unexpected error: %v", err)
			}
		}

		got, err := repo.GetLatest(context.Background(), older.SheetURL, "Sheet1")
		if err != nil {
			t.Fatalf("GetLatest() returned unexpected error: %v", err)
		}
		if got.Rows[0][0] != "Client B" {
			t.Errorf("Expected newest snapshot rows, got %v", got.Rows)
		}
	})

	t.Run("worksheets are isolated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		if err := repo.Save(context.Background(), makeSnapshot("Sheet1", time.Now().UTC())); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}

		_, err := repo.GetLatest(context.Background(), "https://example.com/holdings.csv", "Sheet2")
		if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
		}
	})

	t.Run("no snapshot yields ErrSnapshotNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewSnapshotRepository(db)

		_, err := repo.GetLatest(context.Background(), "https://nowhere", "Sheet1")
		if !errors.Is(err, apperrors.ErrSnapshotNotFound) {
			t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
		}
	})
}

// TestSnapshotRepository_Prune tests history pruning.
func TestSnapshotRepository_Prune(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewSnapshotRepository(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		snap := makeSnapshot("Sheet1", base.Add(time.Duration(i)*time.Hour))
		if err := repo.Save(context.Background(), snap); err != nil {
			t.Fatalf("Save() returned unexpected error: %v", err)
		}
	}

	if err := repo.Prune(context.Background(), "https://example.com/holdings.csv", "Sheet1", 2); err != nil {
		t.Fatalf("Prune() returned unexpected error: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sheet_snapshot").Scan(&count); err != nil {
		t.Fatalf("Failed to count snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 snapshots after prune, got %d", count)
	}

	// Newest must survive.
	got, err := repo.GetLatest(context.Background(), "https://example.com/holdings.csv", "Sheet1")
	if err != nil {
		t.Fatalf("GetLatest() returned unexpected error: %v", err)
	}
	if !got.FetchedAt.Equal(base.Add(4 * time.Hour)) {
		t.Errorf("Expected newest snapshot preserved, got %v", got.FetchedAt)
	}
}
