package induction

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/config"
	"github.com/replicanet/induction/libs/log"
	"github.com/replicanet/induction/types"
)

const (
	ownSubnet    = "subnet-a"
	remoteSubnet = "subnet-b"

	// Hosted by ownSubnet.
	canisterA = types.CanisterID(1)
	canisterB = types.CanisterID(2)
	// Hosted by remoteSubnet.
	remoteX = types.CanisterID(100)
	remoteY = types.CanisterID(101)
)

func newTestTopology() *Topology {
	topo := NewTopology("")
	topo.Assign(canisterA, ownSubnet)
	topo.Assign(canisterB, ownSubnet)
	topo.Assign(remoteX, remoteSubnet)
	topo.Assign(remoteY, remoteSubnet)
	return topo
}

func newTestInductor(t *testing.T, cfg *config.InductionConfig) *Inductor {
	t.Helper()
	return newTestInductorOn(t, newTestTopology(), ownSubnet, cfg)
}

func newTestInductorOn(t *testing.T, topo *Topology, subnet string, cfg *config.InductionConfig) *Inductor {
	t.Helper()
	in := NewInductor(
		log.TestingLogger(t),
		topo.WithOwnSubnet(subnet),
		cfg,
		NopMetrics(),
		config.TestQueuesConfig().Options()...,
	)
	for _, id := range topo.Canisters(subnet) {
		require.NoError(t, in.AddCanister(id))
	}
	return in
}

func makeRequest(sender, receiver types.CanisterID, payloadSize int) *types.Request {
	return &types.Request{
		Sender:              sender,
		Receiver:            receiver,
		SenderReplyCallback: types.CallbackID(payloadSize),
		Payment:             10,
		MethodName:          "update",
		MethodPayload:       bytes.Repeat([]byte{0xa}, payloadSize),
	}
}

func makeIngress(receiver types.CanisterID, id string) *types.Ingress {
	return &types.Ingress{
		Source:     "user",
		Receiver:   receiver,
		MethodName: "update",
		MessageID:  id,
	}
}

// totalMemoryUsage sums the memory usage of all canister queues of in.
func totalMemoryUsage(t *testing.T, in *Inductor) int64 {
	var total int64
	for _, id := range in.Canisters() {
		cq, ok := in.Queues(id)
		require.True(t, ok)
		total += int64(cq.MemoryUsage())
	}
	return total
}

// replyWith returns a handler that replies to every request with data and
// makes no calls.
func replyWith(data []byte) Handler {
	return HandlerFunc(func(types.CanisterID, types.InputMessage) (*types.Response, []*types.Request) {
		return &types.Response{Data: data}, nil
	})
}

// callOnIngress returns a handler that makes the given calls for every
// ingress message and replies to requests with an empty reply.
func callOnIngress(receivers ...types.CanisterID) Handler {
	return HandlerFunc(func(_ types.CanisterID, msg types.InputMessage) (*types.Response, []*types.Request) {
		if _, ok := msg.(*types.Ingress); !ok {
			return &types.Response{}, nil
		}
		calls := make([]*types.Request, 0, len(receivers))
		for i, receiver := range receivers {
			calls = append(calls, &types.Request{
				Receiver:            receiver,
				SenderReplyCallback: types.CallbackID(i),
				MethodName:          "call",
			})
		}
		return nil, calls
	})
}

// recordingSink keeps everything it is given.
type recordingSink struct {
	events  map[int64][]Event
	stats   map[int64][]QueueStats
	stopped bool
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		events: make(map[int64][]Event),
		stats:  make(map[int64][]QueueStats),
	}
}

func (s *recordingSink) IndexEvents(_ string, height int64, events []Event) error {
	s.events[height] = append(s.events[height], events...)
	return nil
}

func (s *recordingSink) IndexQueueStats(_ string, height int64, stats []QueueStats) error {
	s.stats[height] = append(s.stats[height], stats...)
	return nil
}

func (s *recordingSink) Stop() error {
	s.stopped = true
	return nil
}
