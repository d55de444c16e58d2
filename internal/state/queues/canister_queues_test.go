package queues

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/types"
)

const peerA = types.CanisterID(1)

func TestRequestResponseRoundTrip(t *testing.T) {
	cq := newTestQueues()

	req := makeRequest(peerA, ownID, 100)
	require.NoError(t, cq.PushInput(req, LocalSubnet))
	assert.Equal(t, 1, cq.InputQueue(peerA).NumMessages())
	assert.Equal(t, 1, cq.OutputQueue(peerA).ReservedSlots())
	assert.Equal(t, []types.CanisterID{peerA}, cq.LocalSubnetInputSchedule())

	msg, ok := cq.PopInput()
	require.True(t, ok)
	assert.Same(t, req, msg)
	assert.Equal(t, 0, cq.InputQueue(peerA).NumMessages())
	assert.Equal(t, 1, cq.OutputQueue(peerA).ReservedSlots())
	assert.Empty(t, cq.LocalSubnetInputSchedule())

	rep := makeResponse(ownID, peerA, 20)
	cq.PushOutputResponse(rep)
	assert.Equal(t, 0, cq.OutputQueue(peerA).ReservedSlots())
	assert.Equal(t, 1, cq.OutputQueue(peerA).NumMessages())

	it := cq.OutputIntoIter(ownID)
	assert.Equal(t, 1, it.Size())
	id, index, out, ok := it.Pop()
	require.True(t, ok)
	assert.Same(t, rep, out)
	assert.Equal(t, types.QueueID{SrcCanister: ownID, DstCanister: peerA}, id)
	assert.Equal(t, types.QueueIndex(0), index)
	assert.True(t, it.IsEmpty())
	it.Close()

	assert.Equal(t, InputQueuesStats{SizeBytes: emptyInputQueueSizeBytes}, cq.InputQueuesStats())
	assert.Equal(t, OutputQueuesStats{}, cq.OutputQueuesStats())
	assert.Equal(t, 0, cq.MemoryUsage())
	assert.Equal(t, 0, cq.ReservedSlots())
	assert.False(t, cq.HasInput())
	assert.False(t, cq.HasOutput())
}

func TestPushInputRequestFailsWhenInputQueueFull(t *testing.T) {
	cq := newTestQueues()

	for i := 0; i < DefaultQueueCapacity; i++ {
		require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 1), RemoteSubnet))
	}
	before := takeSnapshot(t, cq)

	extra := makeRequest(peerA, ownID, 1)
	err := cq.PushInput(extra, RemoteSubnet)
	requireQueueFull(t, err, DefaultQueueCapacity)

	assert.Equal(t, before, takeSnapshot(t, cq))
	assert.Equal(t, DefaultQueueCapacity, cq.InputQueueMessageCount(peerA))
	assert.Equal(t, []types.CanisterID{peerA}, cq.RemoteSubnetInputSchedule())
}

func TestPushInputRequestFailsWhenOutputReservationFails(t *testing.T) {
	cq := newTestQueues(WithCapacity(2))

	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 1), LocalSubnet))
	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 1), LocalSubnet))
	for i := 0; i < 2; i++ {
		_, ok := cq.PopInput()
		require.True(t, ok)
	}
	// The input queue is empty but the output queue is full of reservations.
	require.Equal(t, 2, cq.OutputQueue(peerA).ReservedSlots())
	before := takeSnapshot(t, cq)

	err := cq.PushInput(makeRequest(peerA, ownID, 1), LocalSubnet)
	requireQueueFull(t, err, 2)
	assert.Equal(t, before, takeSnapshot(t, cq))
	assert.Empty(t, cq.LocalSubnetInputSchedule())
}

func TestPushInputResponseFromUnknownPeer(t *testing.T) {
	cq := newTestQueues()

	err := cq.PushInput(makeResponse(peerA, ownID, 1), RemoteSubnet)
	requireQueueFull(t, err, 0)
	assert.Equal(t, 0, cq.OutputQueuesLen())
}

func TestPushInputResponseWithoutReservationPanics(t *testing.T) {
	cq := newTestQueues()

	// The queue pair exists but no request was ever sent to the peer.
	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 1), LocalSubnet))
	require.Panics(t, func() {
		_ = cq.PushInput(makeResponse(peerA, ownID, 1), LocalSubnet)
	})
}

func TestPushInputResponseConsumesReservation(t *testing.T) {
	cq := newTestQueues(WithCapacity(1))

	require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 10)))
	_, _, ok := cq.PopCanisterOutput(peerA)
	require.True(t, ok)
	assert.Equal(t, 1, cq.InputQueuesReservationCount())

	// The input queue is at capacity with the reservation alone.
	rep := makeResponse(peerA, ownID, 10)
	require.NoError(t, cq.PushInput(rep, RemoteSubnet))
	assert.Equal(t, 0, cq.InputQueue(peerA).ReservedSlots())
	assert.Equal(t, 1, cq.InputQueuesResponseCount())
	assert.Equal(t, 0, cq.InputQueuesReservationCount())
	assert.Equal(t, rep.CountBytes(), cq.ResponsesSizeBytes())
	assert.Equal(t, rep.CountBytes(), cq.MemoryUsage())

	msg, ok := cq.PopInput()
	require.True(t, ok)
	assert.Same(t, rep, msg)
	assert.Equal(t, 0, cq.MemoryUsage())
}

func TestPushOutputRequestFailsWithoutPartialEffect(t *testing.T) {
	t.Run("output queue full", func(t *testing.T) {
		cq := newTestQueues(WithCapacity(2))
		require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))
		require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))
		before := takeSnapshot(t, cq)

		requireQueueFull(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)), 2)
		assert.Equal(t, before, takeSnapshot(t, cq))
	})

	t.Run("input queue full of reservations", func(t *testing.T) {
		cq := newTestQueues(WithCapacity(2))
		require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))
		require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))
		for i := 0; i < 2; i++ {
			_, _, ok := cq.PopCanisterOutput(peerA)
			require.True(t, ok)
		}
		before := takeSnapshot(t, cq)

		requireQueueFull(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)), 2)
		assert.Equal(t, before, takeSnapshot(t, cq))
		assert.Equal(t, 0, cq.OutputQueue(peerA).NumMessages())
	})

	t.Run("zero capacity creates no queues", func(t *testing.T) {
		cq := newTestQueues(WithCapacity(0))
		requireQueueFull(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)), 0)
		requireQueueFull(t, cq.PushInput(makeRequest(peerA, ownID, 1), LocalSubnet), 0)
		assert.Equal(t, 0, cq.OutputQueuesLen())
		assert.Equal(t, 0, cq.InputQueuesSizeBytes())
	})
}

func TestPushOutputResponsePanicsOnProtocolViolation(t *testing.T) {
	cq := newTestQueues()
	require.Panics(t, func() { cq.PushOutputResponse(makeResponse(ownID, peerA, 1)) })

	require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))
	// Queues exist, but no request from peerA was ever inducted.
	require.Panics(t, func() { cq.PushOutputResponse(makeResponse(ownID, peerA, 1)) })
}

func TestPopInputRoundRobin(t *testing.T) {
	cq := newTestQueues()
	const (
		a = types.CanisterID(1)
		b = types.CanisterID(2)
		c = types.CanisterID(3)
	)

	a1, a2 := makeRequest(a, ownID, 1), makeRequest(a, ownID, 2)
	b1 := makeRequest(b, ownID, 3)
	c1, c2 := makeRequest(c, ownID, 4), makeRequest(c, ownID, 5)
	i1, i2 := makeIngress(ownID, "i1"), makeIngress(ownID, "i2")

	require.NoError(t, cq.PushInput(a1, LocalSubnet))
	require.NoError(t, cq.PushInput(a2, LocalSubnet))
	require.NoError(t, cq.PushInput(b1, LocalSubnet))
	require.NoError(t, cq.PushInput(c1, RemoteSubnet))
	require.NoError(t, cq.PushInput(c2, RemoteSubnet))
	cq.PushIngress(i1)
	cq.PushIngress(i2)

	assert.Equal(t, []types.CanisterID{a, b}, cq.LocalSubnetInputSchedule())
	assert.Equal(t, []types.CanisterID{c}, cq.RemoteSubnetInputSchedule())

	want := []types.InputMessage{a1, i1, c1, b1, i2, c2, a2}
	for i, w := range want {
		got, ok := cq.PopInput()
		require.True(t, ok, "pop %d", i)
		assert.Same(t, w, got, "pop %d", i)
	}

	_, ok := cq.PopInput()
	assert.False(t, ok)
	assert.False(t, cq.HasInput())
	assert.Empty(t, cq.LocalSubnetInputSchedule())
	assert.Empty(t, cq.RemoteSubnetInputSchedule())
}

func TestPopInputSkipsEmptyClasses(t *testing.T) {
	cq := newTestQueues()

	cq.PushIngress(makeIngress(ownID, "only"))
	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 1), RemoteSubnet))

	// Local subnet is empty, so the first pop falls through to ingress.
	msg, ok := cq.PopInput()
	require.True(t, ok)
	assert.IsType(t, &types.Ingress{}, msg)

	msg, ok = cq.PopInput()
	require.True(t, ok)
	assert.IsType(t, &types.Request{}, msg)
}

func TestFloodingSenderDoesNotStarveOthers(t *testing.T) {
	cq := newTestQueues()
	const flooder, quiet = types.CanisterID(1), types.CanisterID(2)

	for i := 0; i < 10; i++ {
		require.NoError(t, cq.PushInput(makeRequest(flooder, ownID, i), LocalSubnet))
	}
	require.NoError(t, cq.PushInput(makeRequest(quiet, ownID, 0), LocalSubnet))

	var senders []types.CanisterID
	for i := 0; i < 3; i++ {
		msg, ok := cq.PopInput()
		require.True(t, ok)
		senders = append(senders, msg.(*types.Request).Sender)
	}
	assert.Equal(t, []types.CanisterID{flooder, quiet, flooder}, senders)
}

func TestInductMessageToSelf(t *testing.T) {
	cq := newTestQueues()

	require.ErrorIs(t, cq.InductMessageToSelf(ownID), ErrNothingToInduct)

	req := makeRequest(ownID, ownID, 10)
	require.NoError(t, cq.PushOutputRequest(req))
	require.NoError(t, cq.InductMessageToSelf(ownID))

	assert.Equal(t, 0, cq.OutputQueue(ownID).NumMessages())
	assert.Equal(t, 1, cq.OutputQueue(ownID).ReservedSlots())
	assert.Equal(t, 1, cq.InputQueue(ownID).NumMessages())
	assert.Equal(t, 1, cq.InputQueue(ownID).ReservedSlots())

	msg, ok := cq.PopInput()
	require.True(t, ok)
	assert.Same(t, req, msg)

	// Reply to self and induct the response.
	rep := makeResponse(ownID, ownID, 5)
	cq.PushOutputResponse(rep)
	require.NoError(t, cq.InductMessageToSelf(ownID))
	msg, ok = cq.PopInput()
	require.True(t, ok)
	assert.Same(t, rep, msg)
	assert.Equal(t, 0, cq.ReservedSlots())
}

func TestOutputQueuesForEach(t *testing.T) {
	cq, _ := NewCanisterQueuesForTest(
		[]*types.Request{
			makeRequest(0, 0, 1), makeRequest(0, 0, 2),
			makeRequest(0, 0, 3), makeRequest(0, 0, 4),
		}, ownID, 2, WithDebugChecks(true))

	// Accept only the first message of every queue.
	seen := map[types.CanisterID]int{}
	errStop := errors.New("stop")
	cq.OutputQueuesForEach(func(id types.CanisterID, _ types.RequestOrResponse) error {
		seen[id]++
		if seen[id] > 1 {
			return errStop
		}
		return nil
	})

	assert.Equal(t, map[types.CanisterID]int{0: 2, 1: 2}, seen)
	assert.Equal(t, 2, cq.OutputQueuesMessageCount())
	assert.Equal(t, 1, cq.OutputQueue(0).NumMessages())
	assert.Equal(t, 1, cq.OutputQueue(1).NumMessages())
}

func TestAvailableOutputRequestSlots(t *testing.T) {
	cq := newTestQueues(WithCapacity(5))
	const b = types.CanisterID(2)

	require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))
	require.NoError(t, cq.PushInput(makeRequest(b, ownID, 1), LocalSubnet))
	require.NoError(t, cq.PushInput(makeRequest(b, ownID, 1), LocalSubnet))

	assert.Equal(t, map[types.CanisterID]int{peerA: 4, b: 3}, cq.AvailableOutputRequestSlots())
}

func TestMemoryUsage(t *testing.T) {
	cq := newTestQueues()

	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 10), LocalSubnet))
	assert.Equal(t, types.MaxResponseCountBytes, cq.MemoryUsage())

	big := makeRequest(ownID, peerA, types.MaxResponseCountBytes)
	extra := big.CountBytes() - types.MaxResponseCountBytes
	require.NoError(t, cq.PushOutputRequest(big))
	assert.Equal(t, extra, cq.OversizedRequestsExtraBytes())
	assert.Equal(t, 2*types.MaxResponseCountBytes+extra, cq.MemoryUsage())

	cq.SetStreamResponsesSizeBytes(1000)
	assert.Equal(t, 1000, cq.StreamResponsesSizeBytes())
	assert.Equal(t, 2*types.MaxResponseCountBytes+extra+1000, cq.MemoryUsage())

	_, _, ok := cq.PopCanisterOutput(peerA)
	require.True(t, ok)
	assert.Equal(t, 0, cq.OversizedRequestsExtraBytes())
	// The reservation for the response is still held.
	assert.Equal(t, 2*types.MaxResponseCountBytes+1000, cq.MemoryUsage())
}

func TestCyclesStats(t *testing.T) {
	cq := newTestQueues()

	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 7), LocalSubnet))
	require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 11)))
	assert.Equal(t, types.Cycles(7), cq.InputQueueCycles())
	assert.Equal(t, types.Cycles(11), cq.OutputQueueCycles())

	_, ok := cq.PopInput()
	require.True(t, ok)
	assert.Equal(t, types.Cycles(0), cq.InputQueueCycles())
}

func TestFilterIngressMessages(t *testing.T) {
	cq := newTestQueues()
	cq.PushIngress(makeIngress(ownID, "a"))
	cq.PushIngress(makeIngress(ownID, "b"))

	cq.FilterIngressMessages(func(in *types.Ingress) bool { return in.MessageID == "b" })
	assert.Equal(t, 1, cq.IngressQueueMessageCount())
	assert.Equal(t, makeIngress(ownID, "b").CountBytes(), cq.IngressQueueSizeBytes())
}

func TestMutationWhileDrainingPanics(t *testing.T) {
	cq := newTestQueues()
	require.NoError(t, cq.PushOutputRequest(makeRequest(ownID, peerA, 1)))

	it := cq.OutputIntoIter(ownID)
	require.Panics(t, func() { cq.PushIngress(makeIngress(ownID, "x")) })
	require.Panics(t, func() { cq.PopInput() })
	require.Panics(t, func() { cq.OutputIntoIter(ownID) })
	require.Panics(t, func() { cq.SetStreamResponsesSizeBytes(10) })
	it.Close()
	it.Close()

	require.NotPanics(t, func() { cq.PushIngress(makeIngress(ownID, "x")) })
	require.NotPanics(t, func() { cq.SetStreamResponsesSizeBytes(10) })
	assert.Equal(t, 10, cq.StreamResponsesSizeBytes())
}

func TestStatsDriftIsDetected(t *testing.T) {
	cq := newTestQueues()
	require.NoError(t, cq.PushInput(makeRequest(peerA, ownID, 1), LocalSubnet))

	cq.inputQueuesStats.MessageCount++
	require.Panics(t, cq.checkStats)
}
