// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveReport persists a report and its unmatched entries.
func (s *SQLiteStore) SaveReport(ctx context.Context, report *models.Report) error {
	// Generate IDs if not set
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt == 0 {
		report.CreatedAt = time.Now().Unix()
	}
	if report.TakenOn == "" {
		report.TakenOn = time.Unix(report.CreatedAt, 0).Format(time.DateOnly)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO reports (id, title, taken_on, body, present, absent, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		report.ID, report.Title, report.TakenOn, report.Text, report.Present, report.Absent, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	for i, entry := range report.Unmatched {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO report_unmatched (report_id, position, entry) VALUES (?, ?, ?)",
			report.ID, i, entry,
		)
		if err != nil {
			return fmt.Errorf("failed to insert unmatched entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetReport retrieves a report by ID, including its unmatched entries.
func (s *SQLiteStore) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	report := &models.Report{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, taken_on, body, present, absent, created_at FROM reports WHERE id = ?",
		reportID,
	).Scan(&report.ID, &report.Title, &report.TakenOn, &report.Text, &report.Present, &report.Absent, &report.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %s: %w", reportID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT entry FROM report_unmatched WHERE report_id = ? ORDER BY position",
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get unmatched entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return nil, fmt.Errorf("failed to scan unmatched entry: %w", err)
		}
		report.Unmatched = append(report.Unmatched, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate unmatched entries: %w", err)
	}

	return report, nil
}

// ListReports returns report summaries, newest first.
// A non-positive limit returns every report.
func (s *SQLiteStore) ListReports(ctx context.Context, limit int) ([]models.ReportSummary, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, taken_on, present, absent, created_at FROM reports ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var summaries []models.ReportSummary
	for rows.Next() {
		var r models.ReportSummary
		if err := rows.Scan(&r.ID, &r.Title, &r.TakenOn, &r.Present, &r.Absent, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		summaries = append(summaries, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return summaries, nil
}
