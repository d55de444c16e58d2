package config

import (
	"fmt"

	dbm "github.com/tendermint/tm-db"
)

// QueuesDBName is the name of the database holding queue snapshots.
const QueuesDBName = "queues"

// DBContext names a database and the config it is opened under.
type DBContext struct {
	ID     string
	Config *Config
}

// DBProvider opens the database described by a DBContext.
type DBProvider func(*DBContext) (dbm.DB, error)

// DefaultDBProvider opens ctx.ID with the configured backend under DBDir.
// The memdb backend never touches the filesystem.
func DefaultDBProvider(ctx *DBContext) (dbm.DB, error) {
	if ctx == nil || ctx.Config == nil {
		return nil, fmt.Errorf("db %q: missing config", ctxID(ctx))
	}
	backend := dbm.BackendType(ctx.Config.DBBackend)
	if backend == dbm.MemDBBackend {
		return dbm.NewMemDB(), nil
	}
	db, err := dbm.NewDB(ctx.ID, backend, ctx.Config.DBDir())
	if err != nil {
		return nil, fmt.Errorf("open db %q: %w", ctx.ID, err)
	}
	return db, nil
}

// QueuesDB opens the queue snapshot database of cfg.
func QueuesDB(cfg *Config) (dbm.DB, error) {
	return DefaultDBProvider(&DBContext{ID: QueuesDBName, Config: cfg})
}

func ctxID(ctx *DBContext) string {
	if ctx == nil {
		return ""
	}
	return ctx.ID
}
