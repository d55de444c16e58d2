// Package psql implements an event sink backed by a PostgreSQL database.
package psql

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adlio/schema"

	// Register the Postgres database driver.
	_ "github.com/lib/pq"

	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/types"
)

const (
	tableEvents     = "induction_events"
	tableQueueStats = "queue_stats"
	driverName      = "postgres"
)

//go:embed schema.sql
var schemaSQL string

// Migrations returns the migrations that install the sink's schema.
func Migrations() []*schema.Migration {
	return []*schema.Migration{{
		ID:     "2022-05-01 induction schema",
		Script: schemaSQL,
	}}
}

// EnsureSchema installs the sink's schema into db, unless already installed.
func EnsureSchema(db *sql.DB) error {
	return schema.NewMigrator().Apply(db, Migrations())
}

// EventSink is an induction.EventSink backed by a PostgreSQL database.
type EventSink struct {
	store *sql.DB
}

var _ induction.EventSink = (*EventSink)(nil)

// NewEventSink constructs an event sink associated with the PostgreSQL
// database specified by connStr.
//
// The database must have the sink's schema installed, see EnsureSchema.
func NewEventSink(connStr string) (*EventSink, error) {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, err
	}
	return &EventSink{store: db}, nil
}

// DB returns the underlying Postgres connection used by the sink.
// This is exported to support testing.
func (es *EventSink) DB() *sql.DB { return es.store }

// runInTransaction executes query in a fresh database transaction.
// If query reports an error, the transaction is rolled back and the
// error from query is reported to the caller.
// Otherwise, the result of committing the transaction is returned.
func runInTransaction(db *sql.DB, query func(*sql.Tx) error) error {
	dbtx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := query(dbtx); err != nil {
		_ = dbtx.Rollback() // report the initial error, not the rollback
		return err
	}
	return dbtx.Commit()
}

// IndexEvents records the events of subnet at height in a single
// transaction.
func (es *EventSink) IndexEvents(subnet string, height int64, events []induction.Event) error {
	if len(events) == 0 {
		return nil
	}
	ts := time.Now().UTC()

	return runInTransaction(es.store, func(dbtx *sql.Tx) error {
		stmt, err := dbtx.Prepare(`
INSERT INTO ` + tableEvents + ` (subnet, height, kind, message_kind, canister, peer, size_bytes, reason, created_at)
  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`)
		if err != nil {
			return fmt.Errorf("preparing event insert: %w", err)
		}
		defer stmt.Close()

		for _, e := range events {
			if _, err := stmt.Exec(
				subnet, height, string(e.Kind), e.MessageKind,
				canisterValue(e.Canister), canisterValue(e.Peer),
				e.SizeBytes, e.Reason, ts,
			); err != nil {
				return fmt.Errorf("indexing %s event: %w", e.Kind, err)
			}
		}
		return nil
	})
}

// IndexQueueStats records the queue stats of subnet at height. Stats
// recorded earlier for the same height and canister are replaced.
func (es *EventSink) IndexQueueStats(subnet string, height int64, stats []induction.QueueStats) error {
	if len(stats) == 0 {
		return nil
	}
	ts := time.Now().UTC()

	return runInTransaction(es.store, func(dbtx *sql.Tx) error {
		stmt, err := dbtx.Prepare(`
INSERT INTO ` + tableQueueStats + ` (subnet, height, canister, ingress_count, input_messages,
    output_messages, reserved_slots, memory_usage, created_at)
  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
  ON CONFLICT (subnet, height, canister) DO UPDATE SET
    ingress_count = EXCLUDED.ingress_count,
    input_messages = EXCLUDED.input_messages,
    output_messages = EXCLUDED.output_messages,
    reserved_slots = EXCLUDED.reserved_slots,
    memory_usage = EXCLUDED.memory_usage,
    created_at = EXCLUDED.created_at;
`)
		if err != nil {
			return fmt.Errorf("preparing queue stats insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range stats {
			if _, err := stmt.Exec(
				subnet, height, canisterValue(s.Canister), s.IngressCount, s.InputMessages,
				s.OutputMessages, s.ReservedSlots, s.MemoryUsage, ts,
			); err != nil {
				return fmt.Errorf("indexing queue stats of %v: %w", s.Canister, err)
			}
		}
		return nil
	})
}

// MemoryUsage returns the total memory usage of the canister queues of
// subnet recorded at height.
func (es *EventSink) MemoryUsage(subnet string, height int64) (int64, error) {
	var usage int64
	err := es.store.QueryRow(`
SELECT memory_usage FROM subnet_memory_usage WHERE subnet = $1 AND height = $2;
`, subnet, height).Scan(&usage)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return usage, err
}

// Stop closes the underlying PostgreSQL database.
func (es *EventSink) Stop() error { return es.store.Close() }

// canisterValue renders id as a NUMERIC literal. Canister ids use the full
// uint64 range, which BIGINT cannot hold.
func canisterValue(id types.CanisterID) string {
	return strconv.FormatUint(uint64(id), 10)
}
