// Package testutil provides shared helpers for tests that need a real store.
// The store is an embedded SQLite file in a per-test temp directory, so tests
// need no external services and clean up automatically.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/jeevamp6/travel-planner/internal/store"
	"github.com/jeevamp6/travel-planner/migrations"
)

// NewStore opens a fresh store in t.TempDir() and applies all migrations.
// Every call returns an isolated database; the store is closed automatically
// when the test (and all its subtests) finish.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "travelplanner.db")

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("testutil.NewStore: open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	provider, err := goose.NewProvider(goose.DialectSQLite3, st.DB(), migrations.FS)
	if err != nil {
		t.Fatalf("testutil.NewStore: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		t.Fatalf("testutil.NewStore: run migrations: %v", err)
	}

	return st
}
