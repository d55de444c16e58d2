package queues

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/types"
)

const ownID = types.CanisterID(13)

func newTestQueues(options ...Option) *CanisterQueues {
	return NewCanisterQueues(append([]Option{WithDebugChecks(true)}, options...)...)
}

func makeRequest(sender, receiver types.CanisterID, payloadSize int) *types.Request {
	return &types.Request{
		Sender:        sender,
		Receiver:      receiver,
		Payment:       types.Cycles(payloadSize),
		MethodName:    "update",
		MethodPayload: bytes.Repeat([]byte{0xa}, payloadSize),
	}
}

func makeResponse(respondent, originator types.CanisterID, payloadSize int) *types.Response {
	return &types.Response{
		Originator: originator,
		Respondent: respondent,
		Refund:     types.Cycles(payloadSize),
		Data:       bytes.Repeat([]byte{0xb}, payloadSize),
	}
}

func makeIngress(receiver types.CanisterID, id string) *types.Ingress {
	return &types.Ingress{
		Source:     "user",
		Receiver:   receiver,
		MethodName: "call",
		MessageID:  id,
	}
}

// snapshot returns the encoding of cq along with its running stats, which
// together make up its observable state.
type snapshot struct {
	Encoded     []byte
	Input       InputQueuesStats
	Output      OutputQueuesStats
	MemoryUsage int
}

func takeSnapshot(t require.TestingT, cq *CanisterQueues) snapshot {
	bz, err := cq.Marshal()
	require.NoError(t, err)
	return snapshot{
		Encoded:     bz,
		Input:       cq.InputQueuesStats(),
		Output:      cq.OutputQueuesStats(),
		MemoryUsage: cq.MemoryUsage(),
	}
}

func requireQueueFull(t *testing.T, err error, capacity int) {
	t.Helper()
	var qf *types.QueueFullError
	require.ErrorAs(t, err, &qf)
	require.Equal(t, capacity, qf.Capacity)
}
