package os_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	tmos "github.com/replicanet/induction/libs/os"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.False(t, tmos.FileExists(dir))
	require.NoError(t, tmos.EnsureDir(dir, 0700))
	require.True(t, tmos.FileExists(dir))
	// Existing directories are left alone.
	require.NoError(t, tmos.EnsureDir(dir, 0700))
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, tmos.WriteFileAtomic(path, []byte("first"), 0644))
	require.NoError(t, tmos.WriteFileAtomic(path, []byte("second"), 0644))

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())

	err = tmos.WriteFileAtomic(filepath.Join(path, "not-a-dir", "x"), nil, 0644)
	require.Error(t, err)
}
