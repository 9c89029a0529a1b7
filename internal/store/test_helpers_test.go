package store

import (
	"context"
	"testing"

	"github.com/mohdwajid07/SNQL-to-SQL-parser/internal/dataset"
)

// createSeededStore creates an in-memory store holding the sample dataset.
func createSeededStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
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
