package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// NewTestRoot creates a uniquely named performer root directory under the
// test's temp dir and populates it with one subdirectory per name.
// The directory is removed automatically when the test finishes.
func NewTestRoot(t *testing.T, names ...string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "root-"+uuid.NewString())
	require.NoError(t, os.MkdirAll(root, 0o755), "failed to create test root")

	SeedPerformers(t, root, names...)

	return root
}

// SeedPerformers creates performer subdirectories under root.
func SeedPerformers(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		err := os.Mkdir(filepath.Join(root, name), 0o755)
		require.NoError(t, err, "failed to seed performer: %s", name)
	}
}

// SeedFile drops a plain file under root, for tests that need non-directory
// entries mixed in with performers.
func SeedFile(t *testing.T, root, name string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644)
	require.NoError(t, err, "failed to seed file: %s", name)
}
