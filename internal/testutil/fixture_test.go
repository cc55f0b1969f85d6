package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionsFixture_ContainsSeededRecords(t *testing.T) {
	content := string(SubscriptionsFixture())

	assert.Contains(t, content, SeededID+","+SeededCustomerID+","+SeededASIN+",3\n")
	assert.Contains(t, content, UpdatableID+","+UpdatableCustomerID+","+UpdatableASIN+",1\n")
}

func TestSubscriptionsFixture_ReturnsCopy(t *testing.T) {
	a := SubscriptionsFixture()
	a[0] = 'X'
	b := SubscriptionsFixture()
	assert.NotEqual(t, a[0], b[0])
}

func TestRestoreSubscriptions_RestoresOnCleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.csv")

	t.Run("mutating test", func(t *testing.T) {
		RestoreSubscriptions(t, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, SubscriptionsFixture(), data)

		require.NoError(t, os.WriteFile(path, []byte("garbage\n"), 0o644))
	})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SubscriptionsFixture(), data, "cleanup should restore the snapshot")
}

func TestNewSubscriptionsFile(t *testing.T) {
	path := NewSubscriptionsFile(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SubscriptionsFixture(), data)
	assert.Equal(t, "subscriptions.csv", filepath.Base(path))
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "bad.csv", "a,b\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
