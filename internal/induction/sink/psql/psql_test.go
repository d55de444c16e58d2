package psql

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/types"
)

var (
	doPauseAtExit = flag.Bool("pause-at-exit", false,
		"If true, pause the test until interrupted at shutdown, to allow debugging")

	// A hook that test cases can call to obtain the shared database instance
	// used for testing the sink. This is initialized in TestMain (see below).
	testDB func() *sql.DB

	// Connection string of the test database.
	testConn string
)

const (
	user     = "postgres"
	password = "secret"
	port     = "5432"
	dsn      = "postgres://%s:%s@localhost:%s/%s?sslmode=disable"
	dbName   = "postgres"
	subnet   = "test-subnet"
)

// skipAll reports why the package cannot run and exits without failing it.
func skipAll(format string, args ...interface{}) {
	log.Printf("Skipping psql tests: "+format, args...)
	os.Exit(0)
}

func TestMain(m *testing.M) {
	flag.Parse()

	// Set up docker and start a container running PostgreSQL.
	pool, err := dockertest.NewPool(os.Getenv("DOCKER_URL"))
	if err != nil {
		skipAll("Creating docker pool: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		skipAll("Docker is unreachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "13",
		Env: []string{
			"POSTGRES_USER=" + user,
			"POSTGRES_PASSWORD=" + password,
			"POSTGRES_DB=" + dbName,
			"listen_addresses = '*'",
		},
		ExposedPorts: []string{port},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		log.Fatalf("Starting docker pool: %v", err)
	}

	if *doPauseAtExit {
		log.Print("Pause at exit is enabled, containers will not expire")
	} else {
		const expireSeconds = 60
		_ = resource.Expire(expireSeconds)
		log.Printf("Container expiration set to %d seconds", expireSeconds)
	}

	// Connect to the database, clear any leftover data, and install the
	// schema.
	conn := fmt.Sprintf(dsn, user, password, resource.GetPort(port+"/tcp"), dbName)
	testConn = conn
	var db *sql.DB

	if err := pool.Retry(func() error {
		sink, err := NewEventSink(conn)
		if err != nil {
			return err
		}
		db = sink.DB()
		return db.Ping()
	}); err != nil {
		log.Fatalf("Connecting to database: %v", err)
	}

	if err := resetDatabase(db); err != nil {
		log.Fatalf("Flushing database: %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		log.Fatalf("Applying schema: %v", err)
	}

	testDB = func() *sql.DB { return db }

	code := m.Run()

	if *doPauseAtExit {
		log.Print("Testing complete, pausing for inspection. Send SIGINT to resume teardown")
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		<-ch
		log.Print("(resuming)")
	}
	log.Print("Shutting down database")
	if err := pool.Purge(resource); err != nil {
		log.Printf("WARNING: Purging pool failed: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Printf("WARNING: Closing database failed: %v", err)
	}

	os.Exit(code)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	require.NoError(t, EnsureSchema(testDB()))
}

func TestIndexEvents(t *testing.T) {
	sink := &EventSink{store: testDB()}

	events := []induction.Event{
		{Kind: induction.EventInducted, MessageKind: "request", Canister: 1, Peer: 1<<64 - 1, SizeBytes: 64},
		{Kind: induction.EventRejected, MessageKind: "request", Canister: 1, Peer: 2, SizeBytes: 80, Reason: "queue_full"},
	}
	require.NoError(t, sink.IndexEvents(subnet, 1, events))
	// Nothing to record is not an error.
	require.NoError(t, sink.IndexEvents(subnet, 2, nil))

	var count int
	require.NoError(t, testDB().QueryRow(`
SELECT COUNT(*) FROM `+tableEvents+` WHERE subnet = $1 AND height = $2;
`, subnet, 1).Scan(&count))
	assert.Equal(t, 2, count)

	var peer, reason string
	require.NoError(t, testDB().QueryRow(`
SELECT peer, reason FROM `+tableEvents+` WHERE subnet = $1 AND height = $2 AND kind = $3;
`, subnet, 1, string(induction.EventInducted)).Scan(&peer, &reason))
	assert.Equal(t, "18446744073709551615", peer)
	assert.Empty(t, reason)
}

func TestIndexQueueStats(t *testing.T) {
	sink := &EventSink{store: testDB()}

	stats := []induction.QueueStats{
		{Canister: 1, InputMessages: 2, ReservedSlots: 2, MemoryUsage: 2 * types.MaxResponseCountBytes},
		{Canister: 2, OutputMessages: 1, ReservedSlots: 1, MemoryUsage: types.MaxResponseCountBytes},
	}
	require.NoError(t, sink.IndexQueueStats(subnet, 7, stats))

	usage, err := sink.MemoryUsage(subnet, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 3*types.MaxResponseCountBytes, usage)

	// Stats of the same height are replaced.
	stats[0].MemoryUsage = 0
	require.NoError(t, sink.IndexQueueStats(subnet, 7, stats))
	usage, err = sink.MemoryUsage(subnet, 7)
	require.NoError(t, err)
	assert.EqualValues(t, types.MaxResponseCountBytes, usage)

	usage, err = sink.MemoryUsage(subnet, 8)
	require.NoError(t, err)
	assert.Zero(t, usage)
}

func TestStop(t *testing.T) {
	sink, err := NewEventSink(testConn)
	require.NoError(t, err)
	require.NoError(t, sink.DB().Ping())
	require.NoError(t, sink.Stop())
	assert.Error(t, sink.DB().Ping())
}

// resetDatabase drops all the data from the test database.
func resetDatabase(db *sql.DB) error {
	_, err := db.Exec(`DROP VIEW IF EXISTS subnet_memory_usage CASCADE;`)
	if err != nil {
		return fmt.Errorf("dropping views: %v", err)
	}
	_, err = db.Exec(`DROP TABLE IF EXISTS induction_events,queue_stats,schema_migrations CASCADE;`)
	if err != nil {
		return fmt.Errorf("dropping tables: %v", err)
	}
	return nil
}
