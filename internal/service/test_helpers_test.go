package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/db"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

// newTestStore opens a fresh store over a temp database with the clock
// pinned to the given local "YYYY-MM-DD HH:MM" instant.
func newTestStore(t *testing.T, clock string) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vitalsync.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	ts, err := time.ParseInLocation("2006-01-02 15:04", clock, time.Local)
	if err != nil {
		t.Fatalf("parse test clock %q: %v", clock, err)
	}
	s, err := store.OpenWithClock(sqldb, func() time.Time { return ts })
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}
