// Package testutil provides test helpers for the filing history database.
package testutil

import (
	"context"
	"testing"

	"github.com/micetf/classifieur-numerique/internal/model"
	"github.com/micetf/classifieur-numerique/internal/storage"
)

// TestDB is a migrated in-memory history database with its seeded entries.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
	Entries []model.HistoryEntry
}

// SetupTestDB creates a new in-memory database seeded with entries.
// It handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t,
//		testutil.NewHistoryBuilder(now).
//			WithFile("thymio.pdf", "Applications/Robotique").
//			WithDescription("Outils/Tableur").
//			Build()...,
//	)
func SetupTestDB(t *testing.T, entries ...model.HistoryEntry) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	seeded := make([]model.HistoryEntry, 0, len(entries))
	for i := range entries {
		entry := entries[i]
		if _, err := store.SaveHistory(ctx, &entry); err != nil {
			_ = store.Close()
			t.Fatalf("failed to seed history entry %q: %v", entry.SourceName, err)
		}
		seeded = append(seeded, entry)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		Entries: seeded,
		t:       t,
	}
}

// MustGet returns the stored entry with the given source name or fails the test.
func (db *TestDB) MustGet(sourceName string) model.HistoryEntry {
	db.t.Helper()
	for _, e := range db.Entries {
		if e.SourceName == sourceName {
			got, err := db.Storage.GetHistory(context.Background(), e.ID)
			if err != nil {
				db.t.Fatalf("failed to load history entry %q: %v", sourceName, err)
			}
			return *got
		}
	}
	db.t.Fatalf("history entry %q was not seeded", sourceName)
	return model.HistoryEntry{}
}
