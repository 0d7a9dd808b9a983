// Package testutil provides shared test helpers for setting up stores and services.
package testutil

import (
	"os"
	"testing"

	"github.com/starford/ansuz/internal/flow"
	"github.com/starford/ansuz/internal/noteservice"
	"github.com/starford/ansuz/internal/store"
)

// TestStore creates a temporary SQLite document store that is automatically cleaned up.
func TestStore(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestService creates a Service over a temporary store and the default
// heuristic flow engine.
func TestService(t *testing.T) *noteservice.Service {
	t.Helper()
	engine := flow.NewEngine(flow.NewRegistry(), flow.Heuristic{})
	return noteservice.NewService(TestStore(t), engine)
}
