package store

import (
	"io"
	"log/slog"
	"testing"

	"github.com/roach88/subsave/internal/testutil"
)

// discardLogger keeps store diagnostics out of test output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestStore returns a store over a fresh copy of the canonical fixture.
// The fixture is restored before the test and again on cleanup.
func createTestStore(t *testing.T, opts ...Option) (*FileStore, string) {
	t.Helper()
	path := testutil.NewSubscriptionsFile(t)
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	return New(path, opts...), path
}

// createStoreWithContent returns a store over a file holding content.
func createStoreWithContent(t *testing.T, content string, opts ...Option) (*FileStore, string) {
	t.Helper()
	path := testutil.WriteFile(t, "subscriptions.csv", content)
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	return New(path, opts...), path
}
