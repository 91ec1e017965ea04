package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	t.Run("keeps existing mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.prisma")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

		require.NoError(t, WriteFile(path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.prisma")
		require.NoError(t, WriteFile(path, []byte("model A {}\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "model A {}\n", string(data))
	})

	t.Run("directory", func(t *testing.T) {
		err := WriteFile(t.TempDir(), []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})

	t.Run("missing parent", func(t *testing.T) {
		err := WriteFile(filepath.Join(t.TempDir(), "nope", "schema.prisma"), []byte("x"))
		require.Error(t, err)
	})
}
