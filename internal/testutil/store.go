package testutil

import (
	"context"
	"testing"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/dataset"
	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/store"
)

// NewSeededStore opens an in-memory store holding the sample dataset. The
// store is closed when the test ends.
func NewSeededStore(t testing.TB) *store.Store {
	t.Helper()

	s, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("dataset.Default() failed: %v", err)
	}
	if err := s.Seed(context.Background(), ds); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	return s
}
