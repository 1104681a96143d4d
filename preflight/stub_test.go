package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStub(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.go")

		require.NoError(t, WriteStub(path))
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, WriteStub(path))
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Contains(t, string(first), "package bot")
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.go")
		require.NoError(t, os.WriteFile(path, []byte("package bot\n\nimport \"fmt\"\n"), 0o644))

		require.NoError(t, WriteStub(path))
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "import")
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "doc.go")
		err := WriteStub(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write stub")
	})
}
