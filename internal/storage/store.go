// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
)

// ErrNotFound is returned when a requested report or roster member does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for roster and report storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	RosterStore
	ReportStore

	// Close releases any resources held by the store.
	Close() error
}

// RosterStore holds the three rosters.
// Members are unique per category by normalized form.
type RosterStore interface {
	// SeedRosters fills each category from rosters the first time only, so
	// members removed later stay removed. Normalized duplicates are skipped
	// silently. Returns the number of rows added.
	SeedRosters(ctx context.Context, rosters models.Rosters) (int, error)

	// AddMember inserts a member. Returns false if the normalized form already exists.
	AddMember(ctx context.Context, category models.Category, name string) (bool, error)

	// RemoveMember deletes the member with the same normalized form as name.
	// Returns ErrNotFound if there is none.
	RemoveMember(ctx context.Context, category models.Category, name string) error

	// ListMembers returns the members of one roster in insertion order.
	ListMembers(ctx context.Context, category models.Category) ([]string, error)

	// LoadRosters returns a snapshot of all three rosters.
	LoadRosters(ctx context.Context) (models.Rosters, error)
}

// ReportStore keeps the history of recorded attendance runs.
type ReportStore interface {
	// SaveReport persists a report. The report.ID and report.CreatedAt fields
	// are populated by the store when empty.
	SaveReport(ctx context.Context, report *models.Report) error

	// GetReport retrieves a report by its ID.
	// Returns ErrNotFound if the report does not exist.
	GetReport(ctx context.Context, reportID string) (*models.Report, error)

	// ListReports returns the most recent reports first, at most limit of them.
	ListReports(ctx context.Context, limit int) ([]models.ReportSummary, error)
}
