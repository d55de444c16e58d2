package queues

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/replicanet/induction/types"
)

var testPeers = []types.CanisterID{1, 2, 3}

func TestCanisterQueuesProperties(t *testing.T) {
	rapid.Check(t, rapid.Run(&queuesModel{}))
}

// queuesModel drives CanisterQueues through the full request/response
// protocol, tracking just enough to predict counts and reservations.
// Running stats are validated against a full recomputation after every
// mutation, since the queues are built with debug checks.
type queuesModel struct {
	cq       *CanisterQueues
	capacity int

	ingressQueued int
	inReqQueued   int
	inRepQueued   int
	outReqQueued  int
	outRepQueued  int

	// Requests popped from input queues and not yet answered, per sender.
	owed map[types.CanisterID]int
	// Requests popped from output queues whose response is not yet
	// inducted, per receiver.
	inFlight map[types.CanisterID]int
}

func (m *queuesModel) Init(t *rapid.T) {
	m.capacity = rapid.IntRange(1, 6).Draw(t, "capacity").(int)
	m.cq = NewCanisterQueues(WithCapacity(m.capacity), WithDebugChecks(true))
	m.owed = map[types.CanisterID]int{}
	m.inFlight = map[types.CanisterID]int{}
}

func drawPeer(t *rapid.T) types.CanisterID {
	return rapid.SampledFrom(testPeers).Draw(t, "peer").(types.CanisterID)
}

func drawInputQueueType(t *rapid.T) InputQueueType {
	if rapid.Bool().Draw(t, "remote").(bool) {
		return RemoteSubnet
	}
	return LocalSubnet
}

func (m *queuesModel) PushIngress(t *rapid.T) {
	m.cq.PushIngress(makeIngress(ownID, "ingress"))
	m.ingressQueued++
}

func (m *queuesModel) PushInputRequest(t *rapid.T) {
	peer := drawPeer(t)
	size := rapid.IntRange(0, 64).Draw(t, "size").(int)
	before := takeSnapshot(t, m.cq)

	err := m.cq.PushInput(makeRequest(peer, ownID, size), drawInputQueueType(t))
	var qf *types.QueueFullError
	switch {
	case err == nil:
		m.inReqQueued++
	case errors.As(err, &qf):
		require.Equal(t, m.capacity, qf.Capacity)
		require.Equal(t, before, takeSnapshot(t, m.cq))
	default:
		t.Fatalf("unexpected error: %v", err)
	}
}

func (m *queuesModel) PushInputResponse(t *rapid.T) {
	peer := drawPeer(t)
	if m.inFlight[peer] == 0 {
		t.Skip("no request in flight to peer")
	}
	require.NoError(t, m.cq.PushInput(makeResponse(peer, ownID, 8), drawInputQueueType(t)))
	m.inFlight[peer]--
	m.inRepQueued++
}

func (m *queuesModel) PopInput(t *rapid.T) {
	msg, ok := m.cq.PopInput()
	if !ok {
		require.Zero(t, m.ingressQueued+m.inReqQueued+m.inRepQueued)
		return
	}
	switch msg := msg.(type) {
	case *types.Ingress:
		m.ingressQueued--
	case *types.Request:
		m.inReqQueued--
		m.owed[msg.Sender]++
	case *types.Response:
		m.inRepQueued--
	}
}

func (m *queuesModel) PushOutputRequest(t *rapid.T) {
	peer := drawPeer(t)
	before := takeSnapshot(t, m.cq)

	err := m.cq.PushOutputRequest(makeRequest(ownID, peer, 4))
	var qf *types.QueueFullError
	switch {
	case err == nil:
		m.outReqQueued++
	case errors.As(err, &qf):
		require.Equal(t, before, takeSnapshot(t, m.cq))
	default:
		t.Fatalf("unexpected error: %v", err)
	}
}

func (m *queuesModel) PushOutputResponse(t *rapid.T) {
	peer := drawPeer(t)
	if m.owed[peer] == 0 {
		t.Skip("nothing owed to peer")
	}
	m.cq.PushOutputResponse(makeResponse(ownID, peer, 16))
	m.owed[peer]--
	m.outRepQueued++
}

func (m *queuesModel) Drain(t *rapid.T) {
	limit := rapid.IntRange(0, 8).Draw(t, "limit").(int)
	it := m.cq.OutputIntoIter(ownID)
	defer it.Close()

	require.Equal(t, m.outReqQueued+m.outRepQueued, it.Size())
	for i := 0; i < limit; i++ {
		if rapid.Bool().Draw(t, "exclude").(bool) {
			it.ExcludeQueue()
			continue
		}
		size := it.Size()
		_, _, msg, ok := it.Pop()
		if !ok {
			require.Zero(t, size)
			return
		}
		require.Equal(t, size-1, it.Size())
		switch msg := msg.(type) {
		case *types.Request:
			m.outReqQueued--
			m.inFlight[msg.Receiver]++
		case *types.Response:
			m.outRepQueued--
		}
	}
}

func (m *queuesModel) FairDrainInput(t *rapid.T) {
	total := m.ingressQueued + m.inReqQueued + m.inRepQueued
	for i := 0; i < total; i++ {
		m.PopInput(t)
	}
	require.False(t, m.cq.HasInput())
}

func (m *queuesModel) RoundTrip(t *rapid.T) {
	before := takeSnapshot(t, m.cq)
	decoded, err := Unmarshal(before.Encoded, WithCapacity(m.capacity), WithDebugChecks(true))
	require.NoError(t, err)
	require.Equal(t, before, takeSnapshot(t, decoded))
	m.cq = decoded
}

func (m *queuesModel) Check(t *rapid.T) {
	require.Equal(t, m.ingressQueued, m.cq.IngressQueueMessageCount())
	require.Equal(t, m.inReqQueued+m.inRepQueued, m.cq.InputQueuesMessageCount())
	require.Equal(t, m.inRepQueued, m.cq.InputQueuesResponseCount())
	require.Equal(t, m.outReqQueued+m.outRepQueued, m.cq.OutputQueuesMessageCount())
	require.Equal(t, m.outReqQueued+m.outRepQueued, m.cq.OutputMessageCount())

	owed, inFlight := 0, 0
	for _, peer := range testPeers {
		owed += m.owed[peer]
		inFlight += m.inFlight[peer]
	}
	// Every outstanding request holds exactly one reservation for its
	// response: on the output side until answered, on the input side until
	// the response is inducted.
	require.Equal(t, m.outReqQueued+inFlight, m.cq.InputQueuesReservationCount())
	require.Equal(t, m.inReqQueued+owed+m.outReqQueued+inFlight, m.cq.ReservedSlots())

	require.Equal(t, m.cq.HasInput(), m.ingressQueued+m.inReqQueued+m.inRepQueued > 0)
	require.Equal(t, m.cq.HasOutput(), m.outReqQueued+m.outRepQueued > 0)
}

// TestCanisterQueuesDeterminism applies the same operations to two
// instances and requires byte-identical encodings.
func TestCanisterQueuesDeterminism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := newTestQueues(WithCapacity(3)), newTestQueues(WithCapacity(3))
		n := rapid.IntRange(0, 50).Draw(t, "ops").(int)
		for i := 0; i < n; i++ {
			peer := drawPeer(t)
			switch rapid.IntRange(0, 3).Draw(t, "op").(int) {
			case 0:
				typ := drawInputQueueType(t)
				errA := a.PushInput(makeRequest(peer, ownID, 1), typ)
				errB := b.PushInput(makeRequest(peer, ownID, 1), typ)
				require.Equal(t, errA, errB)
			case 1:
				errA := a.PushOutputRequest(makeRequest(ownID, peer, 1))
				errB := b.PushOutputRequest(makeRequest(ownID, peer, 1))
				require.Equal(t, errA, errB)
			case 2:
				a.PopInput()
				b.PopInput()
			case 3:
				a.PopCanisterOutput(peer)
				b.PopCanisterOutput(peer)
			}
		}
		require.Equal(t, takeSnapshot(t, a), takeSnapshot(t, b))
	})
}
