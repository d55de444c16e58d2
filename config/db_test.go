package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDBProvider(t *testing.T) {
	_, err := DefaultDBProvider(nil)
	assert.Error(t, err)

	cfg := TestConfig()
	db, err := QueuesDB(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
	require.NoError(t, db.Close())

	cfg.SetRoot(t.TempDir())
	cfg.DBBackend = "goleveldb"
	db, err = QueuesDB(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
