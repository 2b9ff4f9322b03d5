package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mayobojhosue-coder/app-bloom/internal/attendance"
	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
)

// insertMember ignores rows whose (category, normalized) pair already exists.
const insertMember = `
	INSERT INTO roster_members (category, name, normalized, created_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (category, normalized) DO NOTHING
`

// markSeeded claims a category for seeding; it affects no row if the category
// was seeded before.
const markSeeded = `
	INSERT INTO roster_seeds (category, seeded_at)
	VALUES (?, ?)
	ON CONFLICT (category) DO NOTHING
`

// SeedRosters inserts the seed members of every category that was never
// seeded. Categories without members are left unclaimed.
func (s *SQLiteStore) SeedRosters(ctx context.Context, rosters models.Rosters) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	added := 0
	for _, roster := range rosters.Ordered() {
		if len(roster.Members) == 0 {
			continue
		}
		res, err := tx.ExecContext(ctx, markSeeded, string(roster.Category), now)
		if err != nil {
			return 0, fmt.Errorf("failed to mark %s seeded: %w", roster.Category, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return 0, fmt.Errorf("failed to read seed result: %w", err)
		} else if n == 0 {
			continue
		}

		for _, name := range roster.Members {
			key := attendance.Normalize(name)
			if key == "" {
				continue
			}
			res, err := tx.ExecContext(ctx, insertMember, string(roster.Category), name, key, now)
			if err != nil {
				return 0, fmt.Errorf("failed to seed %s member %q: %w", roster.Category, name, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return 0, fmt.Errorf("failed to read seed result: %w", err)
			}
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return added, nil
}

// AddMember inserts a single member.
func (s *SQLiteStore) AddMember(ctx context.Context, category models.Category, name string) (bool, error) {
	key := attendance.Normalize(name)
	if key == "" {
		return false, fmt.Errorf("member name cannot be empty")
	}

	res, err := s.db.ExecContext(ctx, insertMember, string(category), name, key, time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("failed to add member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return n > 0, nil
}

// RemoveMember deletes a member by normalized identity.
func (s *SQLiteStore) RemoveMember(ctx context.Context, category models.Category, name string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM roster_members WHERE category = ? AND normalized = ?",
		string(category), attendance.Normalize(name),
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("member %q in %s: %w", name, category, storage.ErrNotFound)
	}

	return nil
}

// ListMembers returns the canonical names of one roster in insertion order.
func (s *SQLiteStore) ListMembers(ctx context.Context, category models.Category) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM roster_members WHERE category = ? ORDER BY id",
		string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// LoadRosters reads all three rosters.
func (s *SQLiteStore) LoadRosters(ctx context.Context) (models.Rosters, error) {
	var rosters models.Rosters
	for _, c := range models.Categories {
		members, err := s.ListMembers(ctx, c)
		if err != nil {
			return models.Rosters{}, err
		}
		rosters.Set(c, members)
	}
	return rosters, nil
}
