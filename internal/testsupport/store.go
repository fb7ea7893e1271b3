package testsupport

import (
	"testing"

	"kotoba/internal/config"
	"kotoba/internal/library"
)

// MustOpenLibrary opens a library.Store for tests and registers cleanup.
func MustOpenLibrary(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
