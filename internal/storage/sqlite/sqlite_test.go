package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mayobojhosue-coder/app-bloom/internal/models"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "bloom-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "nested", "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSeedRosters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := models.Rosters{
		Girls:   []string{"danielle", "josé", "José", "JOSE"},
		Boys:    []string{"patrick", "jeremie"},
		Coaches: []string{"valérie"},
	}

	t.Run("first seed inserts one row per identity", func(t *testing.T) {
		added, err := store.SeedRosters(ctx, seed)
		if err != nil {
			t.Fatalf("SeedRosters failed: %v", err)
		}
		if added != 5 {
			t.Errorf("added = %d, want 5", added)
		}
	})

	t.Run("re-seeding is a no-op", func(t *testing.T) {
		added, err := store.SeedRosters(ctx, seed)
		if err != nil {
			t.Fatalf("SeedRosters failed: %v", err)
		}
		if added != 0 {
			t.Errorf("added = %d, want 0", added)
		}
	})

	t.Run("LoadRosters keeps insertion order and first spelling", func(t *testing.T) {
		rosters, err := store.LoadRosters(ctx)
		if err != nil {
			t.Fatalf("LoadRosters failed: %v", err)
		}

		wantGirls := []string{"danielle", "josé"}
		if len(rosters.Girls) != len(wantGirls) {
			t.Fatalf("girls = %v, want %v", rosters.Girls, wantGirls)
		}
		for i := range wantGirls {
			if rosters.Girls[i] != wantGirls[i] {
				t.Errorf("girls[%d] = %q, want %q", i, rosters.Girls[i], wantGirls[i])
			}
		}
		if len(rosters.Boys) != 2 || rosters.Boys[0] != "patrick" || rosters.Boys[1] != "jeremie" {
			t.Errorf("boys = %v, want [patrick jeremie]", rosters.Boys)
		}
		if len(rosters.Coaches) != 1 || rosters.Coaches[0] != "valérie" {
			t.Errorf("coaches = %v, want [valérie]", rosters.Coaches)
		}
	})

	t.Run("removed seed member is not restored", func(t *testing.T) {
		if err := store.RemoveMember(ctx, models.CategoryBoys, "patrick"); err != nil {
			t.Fatalf("RemoveMember failed: %v", err)
		}
		added, err := store.SeedRosters(ctx, seed)
		if err != nil {
			t.Fatalf("SeedRosters failed: %v", err)
		}
		if added != 0 {
			t.Errorf("added = %d, want 0", added)
		}
		boys, err := store.ListMembers(ctx, models.CategoryBoys)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(boys) != 1 || boys[0] != "jeremie" {
			t.Errorf("boys = %v, want [jeremie]", boys)
		}
	})
}

func TestSeedRostersPerCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.SeedRosters(ctx, models.Rosters{Boys: []string{"patrick"}}); err != nil {
		t.Fatalf("SeedRosters failed: %v", err)
	}

	// Coaches were empty in the first seed, so they are still unclaimed.
	added, err := store.SeedRosters(ctx, models.Rosters{
		Boys:    []string{"nathan"},
		Coaches: []string{"Patrick"},
	})
	if err != nil {
		t.Fatalf("SeedRosters failed: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}

	rosters, err := store.LoadRosters(ctx)
	if err != nil {
		t.Fatalf("LoadRosters failed: %v", err)
	}
	if len(rosters.Boys) != 1 || rosters.Boys[0] != "patrick" {
		t.Errorf("boys = %v, want [patrick]", rosters.Boys)
	}
	if len(rosters.Coaches) != 1 || rosters.Coaches[0] != "Patrick" {
		t.Errorf("coaches = %v, want [Patrick]", rosters.Coaches)
	}
}

func TestRosterMembers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("AddMember inserts new identity", func(t *testing.T) {
		added, err := store.AddMember(ctx, models.CategoryBoys, "Arthur")
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		if !added {
			t.Error("Expected member to be added")
		}
	})

	t.Run("AddMember ignores normalized duplicate", func(t *testing.T) {
		added, err := store.AddMember(ctx, models.CategoryBoys, "  ARTHUR ")
		if err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		if added {
			t.Error("Expected duplicate to be ignored")
		}

		members, err := store.ListMembers(ctx, models.CategoryBoys)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 || members[0] != "Arthur" {
			t.Errorf("members = %v, want [Arthur]", members)
		}
	})

	t.Run("AddMember rejects blank name", func(t *testing.T) {
		if _, err := store.AddMember(ctx, models.CategoryBoys, "   "); err == nil {
			t.Error("Expected error for blank name, got nil")
		}
	})

	t.Run("RemoveMember matches by normalized identity", func(t *testing.T) {
		if _, err := store.AddMember(ctx, models.CategoryGirls, "Angèle"); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		if err := store.RemoveMember(ctx, models.CategoryGirls, "angele"); err != nil {
			t.Fatalf("RemoveMember failed: %v", err)
		}

		members, err := store.ListMembers(ctx, models.CategoryGirls)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 0 {
			t.Errorf("members = %v, want none", members)
		}
	})

	t.Run("RemoveMember returns ErrNotFound", func(t *testing.T) {
		err := store.RemoveMember(ctx, models.CategoryCoaches, "nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("ListMembers of empty roster is empty", func(t *testing.T) {
		members, err := store.ListMembers(ctx, models.CategoryCoaches)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if members == nil || len(members) != 0 {
			t.Errorf("members = %#v, want empty slice", members)
		}
	})
}

func TestReports(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("SaveReport generates ID and timestamps", func(t *testing.T) {
		report := &models.Report{
			Title:   "Liste de présence de Bloom",
			Text:    "Liste de présence de Bloom\nDate : 07/03/2026\n",
			Present: 3,
			Absent:  4,
		}

		if err := store.SaveReport(ctx, report); err != nil {
			t.Fatalf("SaveReport failed: %v", err)
		}
		if report.ID == "" {
			t.Error("Expected report ID to be generated")
		}
		if report.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if report.TakenOn == "" {
			t.Error("Expected TakenOn to be set")
		}
	})

	t.Run("GetReport retrieves complete report", func(t *testing.T) {
		original := &models.Report{
			Title:     "Séance",
			TakenOn:   "2026-03-07",
			Text:      "Séance\nDate : 07/03/2026\n",
			Present:   10,
			Absent:    25,
			Unmatched: []string{"quelqu'un", "Unknown Person"},
			CreatedAt: 1772900000,
		}
		if err := store.SaveReport(ctx, original); err != nil {
			t.Fatalf("SaveReport failed: %v", err)
		}

		retrieved, err := store.GetReport(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetReport failed: %v", err)
		}

		if retrieved.Title != original.Title {
			t.Errorf("Title mismatch: got %s, want %s", retrieved.Title, original.Title)
		}
		if retrieved.TakenOn != original.TakenOn {
			t.Errorf("TakenOn mismatch: got %s, want %s", retrieved.TakenOn, original.TakenOn)
		}
		if retrieved.Text != original.Text {
			t.Errorf("Text mismatch: got %q, want %q", retrieved.Text, original.Text)
		}
		if retrieved.Present != 10 || retrieved.Absent != 25 {
			t.Errorf("counts = %d/%d, want 10/25", retrieved.Present, retrieved.Absent)
		}
		if len(retrieved.Unmatched) != 2 || retrieved.Unmatched[0] != "quelqu'un" || retrieved.Unmatched[1] != "Unknown Person" {
			t.Errorf("Unmatched = %v, want %v", retrieved.Unmatched, original.Unmatched)
		}
	})

	t.Run("GetReport returns ErrNotFound for nonexistent report", func(t *testing.T) {
		_, err := store.GetReport(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListReports returns newest first", func(t *testing.T) {
		newest := &models.Report{Title: "Plus récent", Text: "x", CreatedAt: 1900000000}
		if err := store.SaveReport(ctx, newest); err != nil {
			t.Fatalf("SaveReport failed: %v", err)
		}

		all, err := store.ListReports(ctx, 0)
		if err != nil {
			t.Fatalf("ListReports failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("Expected 3 reports, got %d", len(all))
		}
		if all[0].ID != newest.ID {
			t.Errorf("first report = %s, want %s", all[0].ID, newest.ID)
		}

		limited, err := store.ListReports(ctx, 1)
		if err != nil {
			t.Fatalf("ListReports failed: %v", err)
		}
		if len(limited) != 1 {
			t.Errorf("Expected 1 report, got %d", len(limited))
		}
	})
}
