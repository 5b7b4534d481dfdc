package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is one recorded analyze invocation.
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	FilePath      string
	FileHash      string
	FileSizeBytes int64
	ElementSpec   string
}

// RunElement is the per-element summary stored for a run.
type RunElement struct {
	ElementType    string
	Occurrences    int
	AlwaysCount    int
	SometimesCount int
	RarelyCount    int
}

// RunField is one field's stored statistics within a run.
type RunField struct {
	ElementType string
	Field       string
	Present     int
	NonEmpty    int
	NonEmptyPct float64
}

// InsertRun records a new run and returns its run_id.
func (db *DB) InsertRun(filePath, fileHash string, fileSizeBytes int64, elementSpec string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (file_path, file_hash, file_size_bytes, element_spec)
		VALUES (?, ?, ?, ?)
	`, filePath, fileHash, fileSizeBytes, elementSpec)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// InsertRunElement records one element type's summary for a run.
func (db *DB) InsertRunElement(runID int64, e RunElement) error {
	_, err := db.Exec(`
		INSERT INTO run_elements (run_id, element_type, occurrences, always_count, sometimes_count, rarely_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, e.ElementType, e.Occurrences, e.AlwaysCount, e.SometimesCount, e.RarelyCount)
	if err != nil {
		return fmt.Errorf("failed to insert run element: %w", err)
	}
	return nil
}

// InsertRunField records one field's statistics for a run.
func (db *DB) InsertRunField(runID int64, f RunField) error {
	_, err := db.Exec(`
		INSERT INTO run_fields (run_id, element_type, field, present, non_empty, non_empty_pct)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, f.ElementType, f.Field, f.Present, f.NonEmpty, f.NonEmptyPct)
	if err != nil {
		return fmt.Errorf("failed to insert run field: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, file_path, file_hash, file_size_bytes, element_spec
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.FilePath, &r.FileHash, &r.FileSizeBytes, &r.ElementSpec); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunByID returns one run's header row.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, file_path, file_hash, file_size_bytes, element_spec
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.FilePath, &r.FileHash, &r.FileSizeBytes, &r.ElementSpec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// LatestRunID returns the id of the most recent run.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("no runs recorded yet")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// GetRunElements returns a run's per-element summaries in insertion order.
func (db *DB) GetRunElements(runID int64) ([]RunElement, error) {
	rows, err := db.Query(`
		SELECT element_type, occurrences, always_count, sometimes_count, rarely_count
		FROM run_elements
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run elements: %w", err)
	}
	defer rows.Close()

	var elements []RunElement
	for rows.Next() {
		var e RunElement
		if err := rows.Scan(&e.ElementType, &e.Occurrences, &e.AlwaysCount, &e.SometimesCount, &e.RarelyCount); err != nil {
			return nil, fmt.Errorf("failed to scan run element: %w", err)
		}
		elements = append(elements, e)
	}
	return elements, rows.Err()
}

// GetRunFields returns a run's field statistics, grouped by element type and
// sorted by field name within each group.
func (db *DB) GetRunFields(runID int64) ([]RunField, error) {
	rows, err := db.Query(`
		SELECT element_type, field, present, non_empty, non_empty_pct
		FROM run_fields
		WHERE run_id = ?
		ORDER BY element_type, field
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run fields: %w", err)
	}
	defer rows.Close()

	var fields []RunField
	for rows.Next() {
		var f RunField
		if err := rows.Scan(&f.ElementType, &f.Field, &f.Present, &f.NonEmpty, &f.NonEmptyPct); err != nil {
			return nil, fmt.Errorf("failed to scan run field: %w", err)
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}
