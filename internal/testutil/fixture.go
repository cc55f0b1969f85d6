package testutil

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"
)

//go:embed fixtures/subscriptions.csv
var subscriptionsFixture []byte

// Records present in the canonical fixture.
const (
	SeededID         = "81a9792e-9b4c-4090-aac8-28e733ac2f54"
	SeededCustomerID = "amzn1.account.AEZI3A027560538W420H09ACTDP2"
	SeededASIN       = "B00006IEJB"
	SeededFrequency  = 3

	UpdatableID         = "1fe240f4-3296-4827-8c0e-7fa571b6f49f"
	UpdatableCustomerID = "amzn1.account.AEZI3A09486461G3DRR0VQPQHQ9I"
	UpdatableASIN       = "B01BMDAVIY"
	UpdatableFrequency  = 1

	// FixtureRecordCount is the number of records in the fixture.
	FixtureRecordCount = 4
)

// SubscriptionsFixture returns a copy of the canonical fixture content.
func SubscriptionsFixture() []byte {
	out := make([]byte, len(subscriptionsFixture))
	copy(out, subscriptionsFixture)
	return out
}

// RestoreSubscriptions resets path to the canonical fixture now and again
// when the test finishes.
func RestoreSubscriptions(t testing.TB, path string) {
	t.Helper()
	writeFixture(t, path)
	t.Cleanup(func() { writeFixture(t, path) })
}

// NewSubscriptionsFile creates a fixture-backed file in a fresh temp dir
// and returns its path.
func NewSubscriptionsFile(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subscriptions.csv")
	RestoreSubscriptions(t, path)
	return path
}

// WriteFile writes content to a new file in a fresh temp dir and returns
// its path. Used for malformed-file tests.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func writeFixture(t testing.TB, path string) {
	t.Helper()
	if err := os.WriteFile(path, subscriptionsFixture, 0o644); err != nil {
		t.Fatalf("restore fixture %s: %v", path, err)
	}
}
