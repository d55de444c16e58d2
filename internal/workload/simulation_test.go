package workload

import (
	"context"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/internal/store"
	"github.com/replicanet/induction/libs/log"
)

func newTestSimulation(t *testing.T, m Manifest, sink induction.EventSink, qs *store.QueueStore) *Simulation {
	t.Helper()
	if sink == nil {
		sink = induction.NopEventSink{}
	}
	sim, err := NewSimulation(log.TestingLogger(t), m, config.TestConfig(), induction.NopMetrics(), sink, qs)
	require.NoError(t, err)
	return sim
}

func TestSimulationRun(t *testing.T) {
	t.Cleanup(leaktest.Check(t))

	m, err := DecodeManifest(testManifest)
	require.NoError(t, err)
	sim := newTestSimulation(t, m, nil, nil)

	summary, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, m.Rounds, summary.Height)

	limit := config.TestConfig().Induction.SubnetMessageMemory
	for _, name := range m.SubnetNames() {
		var usage int64
		for _, s := range summary.Stats[name] {
			usage += int64(s.MemoryUsage)
		}
		assert.Equal(t, limit-usage, summary.AvailableMemory[name], "subnet %s", name)
	}
}

func TestSimulationIsDeterministic(t *testing.T) {
	m, err := DecodeManifest(testManifest)
	require.NoError(t, err)

	a, err := newTestSimulation(t, m, nil, nil).Run(context.Background())
	require.NoError(t, err)
	b, err := newTestSimulation(t, m, nil, nil).Run(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("runs differ (-a +b):\n%s", diff)
	}
}

func TestSimulationStopsWhenCanceled(t *testing.T) {
	m, err := DecodeManifest(testManifest)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := newTestSimulation(t, m, nil, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 0, summary.Height)
}

func TestSimulationSavesSnapshots(t *testing.T) {
	m, err := DecodeManifest(testManifest)
	require.NoError(t, err)
	m.Rounds = 5
	m.RetainSnapshots = 2

	qs := store.NewQueueStore(dbm.NewMemDB(), config.TestQueuesConfig().Options()...)
	sim := newTestSimulation(t, m, nil, qs)
	_, err = sim.Run(context.Background())
	require.NoError(t, err)

	ids, err := qs.Canisters()
	require.NoError(t, err)
	assert.Len(t, ids, 5)

	in, ok := sim.Inductor("alpha")
	require.True(t, ok)
	cq, height, err := qs.LoadLatest(1)
	require.NoError(t, err)
	assert.EqualValues(t, 5, height)
	live, _ := in.Queues(1)
	assert.Equal(t, live.InputQueuesMessageCount(), cq.InputQueuesMessageCount())
	assert.Equal(t, live.ReservedSlots(), cq.ReservedSlots())

	// Older snapshots were pruned.
	_, err = qs.Load(1, 3)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = qs.Load(1, 4)
	assert.NoError(t, err)
}

type countingSink struct {
	induction.NopEventSink
	events map[induction.EventKind]int
}

func (s *countingSink) IndexEvents(_ string, _ int64, events []induction.Event) error {
	for _, e := range events {
		s.events[e.Kind]++
	}
	return nil
}

func TestSimulationFlushesEvents(t *testing.T) {
	m, err := DecodeManifest(testManifest)
	require.NoError(t, err)

	sink := &countingSink{events: make(map[induction.EventKind]int)}
	_, err = newTestSimulation(t, m, sink, nil).Run(context.Background())
	require.NoError(t, err)

	// Every ingress message is inducted.
	assert.GreaterOrEqual(t, sink.events[induction.EventInducted], m.Rounds*m.IngressPerRound*len(m.Subnets))
	assert.Positive(t, sink.events[induction.EventExecuted])
	assert.Positive(t, sink.events[induction.EventRouted])
}
