// Package testutil provides shared helpers for integration tests.
// Badger is embedded, so unlike an external database nothing has to be
// provisioned: helpers open a throwaway store under t.TempDir.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/aina-travel/backend/internal/store"
)

// NewStore opens a SessionStore backed by a fresh Badger directory under
// t.TempDir. The store is closed automatically when the test (and all its
// subtests) finish, and the directory is removed with the temp dir.
func NewStore(t *testing.T) *store.SessionStore {
	t.Helper()

	s, err := store.Open(t.TempDir(), DiscardLogger())
	if err != nil {
		t.Fatalf("testutil.NewStore: open: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("testutil.NewStore: close: %v", err)
		}
	})
	return s
}

// DiscardLogger returns a logger that drops everything. Pass it to
// components under test so log output does not pollute test results.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
