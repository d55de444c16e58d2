package queues

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanisterQueuesWireRoundTrip(t *testing.T) {
	pb := &CanisterQueues{
		IngressQueue: &IngressQueue{Queue: []*Ingress{{
			Source:     "user",
			Receiver:   7,
			MethodName: "call",
			MessageId:  "m-1",
			ExpiryTime: time.Unix(0, 0).UTC(),
		}}},
		InputQueues: []*QueueEntry{{
			CanisterId: 1 << 40,
			Queue: &InputOutputQueue{
				Queue: []*RequestOrResponse{{Request: &Request{
					Receiver:      7,
					Sender:        1 << 40,
					Payment:       300,
					MethodName:    "transfer",
					MethodPayload: []byte{1, 2, 3},
				}}},
				Capacity: 500,
			},
		}},
		OutputQueues: []*QueueEntry{{
			CanisterId: 1 << 40,
			Queue: &InputOutputQueue{
				Queue: []*RequestOrResponse{{Response: &Response{
					Originator:    1 << 40,
					Respondent:    7,
					RejectCode:    3,
					RejectMessage: "gone",
				}}},
				Begin:            4,
				Capacity:         500,
				NumSlotsReserved: 1,
			},
		}},
		NextInputQueue:            NextInputQueueRemoteSubnet,
		LocalSubnetInputSchedule:  []uint64{1 << 40, 2},
		RemoteSubnetInputSchedule: []uint64{300},
	}

	bz, err := pb.Marshal()
	require.NoError(t, err)
	require.Equal(t, pb.Size(), len(bz))

	var decoded CanisterQueues
	require.NoError(t, decoded.Unmarshal(bz))
	assert.Equal(t, pb, &decoded)
}

func TestNextInputQueueString(t *testing.T) {
	assert.Equal(t, "NEXT_INPUT_QUEUE_INGRESS", NextInputQueueIngress.String())
	assert.Equal(t, "42", NextInputQueue(42).String())
}

func TestIngressSkipsUnknownFields(t *testing.T) {
	// Field 6 (reserved) as a varint, then field 1 "u".
	bz := []byte{0x30, 0x96, 0x01, 0x0a, 0x01, 'u'}
	var in Ingress
	require.NoError(t, in.Unmarshal(bz))
	assert.Equal(t, "u", in.Source)
	assert.True(t, in.ExpiryTime.IsZero())

	assert.Error(t, in.Unmarshal([]byte{0x0a, 0x05, 'u'}))
}
