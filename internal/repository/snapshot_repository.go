package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/apperrors"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
)

// SnapshotRepository provides data access methods for the sheet_snapshot
// table. Each successful remote fetch is stored as a snapshot so the
// dashboard can fall back to the last known good table when the source is
// unreachable.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores a fetched table as a new snapshot row. Headers and rows are
// serialized as JSON.
func (r *SnapshotRepository) Save(ctx context.Context, table sheets.Table) error {
	headers, err := json.Marshal(table.Headers)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot headers: %w", err)
	}
	rows, err := json.Marshal(table.Rows)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot rows: %w", err)
	}

	query := `
        INSERT INTO sheet_snapshot (id, sheet_url, worksheet, headers, rows, fetched_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err = r.db.ExecContext(ctx, query,
		uuid.NewString(),
		table.SheetURL,
		table.Worksheet,
		string(headers),
		string(rows),
		table.FetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

// GetLatest returns the most recently fetched snapshot for a (sheet URL,
// worksheet) pair, or apperrors.ErrSnapshotNotFound if none exists.
func (r *SnapshotRepository) GetLatest(ctx context.Context, sheetURL, worksheet string) (sheets.Table, error) {
	query := `
        SELECT headers, rows, fetched_at
        FROM sheet_snapshot
        WHERE sheet_url = ? AND worksheet = ?
        ORDER BY fetched_at DESC
        LIMIT 1
    `

	var headersJSON, rowsJSON, fetchedAt string
	err := r.db.QueryRowContext(ctx, query, sheetURL, worksheet).Scan(&headersJSON, &rowsJSON, &fetchedAt)
	if err == sql.ErrNoRows {
		return sheets.Table{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return sheets.Table{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	table := sheets.Table{
		SheetURL:  sheetURL,
		Worksheet: worksheet,
	}
	if err := json.Unmarshal([]byte(headersJSON), &table.Headers); err != nil {
		return sheets.Table{}, fmt.Errorf("failed to parse snapshot headers: %w", err)
	}
	if err := json.Unmarshal([]byte(rowsJSON), &table.Rows); err != nil {
		return sheets.Table{}, fmt.Errorf("failed to parse snapshot rows: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
		table.FetchedAt = t
	}

	return table, nil
}

// Prune removes all but the newest keep snapshots for a (sheet URL,
// worksheet) pair.
func (r *SnapshotRepository) Prune(ctx context.Context, sheetURL, worksheet string, keep int) error {
	if keep < 1 {
		keep = 1
	}

	query := `
        DELETE FROM sheet_snapshot
        WHERE sheet_url = ? AND worksheet = ?
          AND id NOT IN (
            SELECT id FROM sheet_snapshot
            WHERE sheet_url = ? AND worksheet = ?
            ORDER BY fetched_at DESC
            LIMIT ?
          )
    `
	_, err := r.db.ExecContext(ctx, query, sheetURL, worksheet, sheetURL, worksheet, keep)
	if err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	return nil
}
