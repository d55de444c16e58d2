package queues

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogo/protobuf/proto"

	pbqueues "github.com/replicanet/induction/proto/induction/queues"
	"github.com/replicanet/induction/types"
)

// ToProto converts the queues into their wire representation. Queue entries
// are emitted in peer order, so equal queues always encode to equal bytes.
// Running stats are not encoded: they are recomputed when decoding.
func (cq *CanisterQueues) ToProto() *pbqueues.CanisterQueues {
	pb := &pbqueues.CanisterQueues{
		IngressQueue:              ingressQueueToProto(&cq.ingressQueue),
		NextInputQueue:            nextInputQueueToProto(cq.nextInputQueue),
		LocalSubnetInputSchedule:  canisterIDsToProto(cq.localSubnetInputSchedule),
		RemoteSubnetInputSchedule: canisterIDsToProto(cq.remoteSubnetInputSchedule),
	}
	cq.ascend(func(p *queuePair) {
		pb.InputQueues = append(pb.InputQueues, &pbqueues.QueueEntry{
			CanisterId: uint64(p.id),
			Queue:      queueToProto(&p.input.queue, 0),
		})
		pb.OutputQueues = append(pb.OutputQueues, &pbqueues.QueueEntry{
			CanisterId: uint64(p.id),
			Queue:      queueToProto(&p.output.queue, p.output.begin),
		})
	})
	return pb
}

// FromProto reconstructs CanisterQueues from their wire representation and
// recomputes all stats from scratch. Options apply as for NewCanisterQueues;
// the capacity of decoded queues is the encoded one.
func FromProto(pb *pbqueues.CanisterQueues, options ...Option) (*CanisterQueues, error) {
	if pb == nil {
		return nil, errors.New("nil CanisterQueues")
	}
	if len(pb.InputQueues) != len(pb.OutputQueues) {
		return nil, fmt.Errorf("mismatched input (%d) and output (%d) queue lengths",
			len(pb.InputQueues), len(pb.OutputQueues))
	}

	cq := NewCanisterQueues(options...)

	var prev *types.CanisterID
	for i, ie := range pb.InputQueues {
		oe := pb.OutputQueues[i]
		if ie == nil || oe == nil {
			return nil, fmt.Errorf("nil queue entry at position %d", i)
		}
		if ie.CanisterId != oe.CanisterId {
			return nil, fmt.Errorf("mismatched input (%d) and output (%d) queue entries",
				ie.CanisterId, oe.CanisterId)
		}
		id := types.CanisterID(ie.CanisterId)
		if prev != nil && id <= *prev {
			return nil, fmt.Errorf("queue entries out of order: %v after %v", id, *prev)
		}
		prev = &id

		iq, err := queueFromProto(ie.Queue)
		if err != nil {
			return nil, fmt.Errorf("input queue from %v: %w", id, err)
		}
		oq, err := queueFromProto(oe.Queue)
		if err != nil {
			return nil, fmt.Errorf("output queue to %v: %w", id, err)
		}
		cq.canisterQueues.ReplaceOrInsert(&queuePair{
			id:     id,
			input:  &InputQueue{queue: iq},
			output: &OutputQueue{queue: oq, begin: types.QueueIndex(oe.Queue.Begin)},
		})
	}

	ingress, err := ingressQueueFromProto(pb.GetIngressQueue())
	if err != nil {
		return nil, err
	}
	cq.ingressQueue = ingress

	cq.nextInputQueue, err = nextInputQueueFromProto(pb.NextInputQueue)
	if err != nil {
		return nil, err
	}

	// The deprecated single schedule is folded into the local subnet one.
	local := append(canisterIDsFromProto(pb.InputSchedule), canisterIDsFromProto(pb.LocalSubnetInputSchedule)...)
	remote := canisterIDsFromProto(pb.RemoteSubnetInputSchedule)
	if err := cq.validateSchedules(local, remote); err != nil {
		return nil, err
	}
	cq.localSubnetInputSchedule = local
	cq.remoteSubnetInputSchedule = remote

	cq.inputQueuesStats = calculateInputQueuesStats(cq.canisterQueues)
	cq.outputQueuesStats = calculateOutputQueuesStats(cq.canisterQueues)
	cq.memoryUsageStats = calculateMemoryUsageStats(cq.canisterQueues)

	return cq, nil
}

// Marshal encodes the queues with gogo/protobuf.
func (cq *CanisterQueues) Marshal() ([]byte, error) {
	return proto.Marshal(cq.ToProto())
}

// Unmarshal decodes queues encoded with Marshal.
func Unmarshal(bz []byte, options ...Option) (*CanisterQueues, error) {
	pb := new(pbqueues.CanisterQueues)
	if err := proto.Unmarshal(bz, pb); err != nil {
		return nil, fmt.Errorf("unmarshal to CanisterQueues: %w", err)
	}
	return FromProto(pb, options...)
}

// validateSchedules checks that every scheduled sender appears once and has
// a non-empty input queue; and that every non-empty input queue is
// scheduled.
func (cq *CanisterQueues) validateSchedules(local, remote []types.CanisterID) error {
	scheduled := make(map[types.CanisterID]struct{}, len(local)+len(remote))
	for _, id := range append(append([]types.CanisterID(nil), local...), remote...) {
		if _, ok := scheduled[id]; ok {
			return fmt.Errorf("sender %v scheduled more than once", id)
		}
		scheduled[id] = struct{}{}
		pair := cq.getQueues(id)
		if pair == nil || pair.input.numMessages() == 0 {
			return fmt.Errorf("sender %v scheduled without input messages", id)
		}
	}
	var err error
	cq.ascend(func(p *queuePair) {
		if _, ok := scheduled[p.id]; !ok && p.input.numMessages() > 0 && err == nil {
			err = fmt.Errorf("sender %v has input messages but is not scheduled", p.id)
		}
	})
	return err
}

func queueToProto(q *queue, begin types.QueueIndex) *pbqueues.InputOutputQueue {
	pb := &pbqueues.InputOutputQueue{
		Begin:            uint64(begin),
		Capacity:         uint64(q.capacity),
		NumSlotsReserved: uint64(q.numSlotsReserved),
	}
	for _, msg := range q.messages {
		pb.Queue = append(pb.Queue, RequestOrResponseToProto(msg))
	}
	return pb
}

func queueFromProto(pb *pbqueues.InputOutputQueue) (queue, error) {
	if pb == nil {
		return queue{}, errors.New("missing queue")
	}
	if pb.Capacity > math.MaxInt32 {
		return queue{}, fmt.Errorf("capacity %d out of range", pb.Capacity)
	}
	if pb.NumSlotsReserved > pb.Capacity {
		return queue{}, fmt.Errorf("%d reserved slots exceed capacity %d",
			pb.NumSlotsReserved, pb.Capacity)
	}
	q := queue{
		capacity:         int(pb.Capacity),
		numSlotsReserved: int(pb.NumSlotsReserved),
	}
	for _, m := range pb.Queue {
		msg, err := RequestOrResponseFromProto(m)
		if err != nil {
			return queue{}, err
		}
		q.messages = append(q.messages, msg)
	}
	if len(q.messages)+q.numSlotsReserved > q.capacity {
		return queue{}, fmt.Errorf("%d messages and %d reserved slots exceed capacity %d",
			len(q.messages), q.numSlotsReserved, q.capacity)
	}
	return q, nil
}

// RequestOrResponseToProto converts a message to its wire representation.
func RequestOrResponseToProto(msg types.RequestOrResponse) *pbqueues.RequestOrResponse {
	switch m := msg.(type) {
	case *types.Request:
		return &pbqueues.RequestOrResponse{Request: &pbqueues.Request{
			Receiver:            uint64(m.Receiver),
			Sender:              uint64(m.Sender),
			SenderReplyCallback: uint64(m.SenderReplyCallback),
			Payment:             uint64(m.Payment),
			MethodName:          m.MethodName,
			MethodPayload:       m.MethodPayload,
		}}
	case *types.Response:
		return &pbqueues.RequestOrResponse{Response: &pbqueues.Response{
			Originator:              uint64(m.Originator),
			Respondent:              uint64(m.Respondent),
			OriginatorReplyCallback: uint64(m.OriginatorReplyCallback),
			Refund:                  uint64(m.Refund),
			Data:                    m.Data,
			RejectCode:              int32(m.RejectCode),
			RejectMessage:           m.RejectMessage,
		}}
	default:
		panic(fmt.Sprintf("unknown message type %T", msg))
	}
}

// RequestOrResponseFromProto converts a message from its wire
// representation. Exactly one of request and response must be set.
func RequestOrResponseFromProto(pb *pbqueues.RequestOrResponse) (types.RequestOrResponse, error) {
	switch {
	case pb == nil:
		return nil, errors.New("nil RequestOrResponse")
	case pb.Request != nil && pb.Response != nil:
		return nil, errors.New("RequestOrResponse has both request and response set")
	case pb.Request != nil:
		r := pb.Request
		return &types.Request{
			Receiver:            types.CanisterID(r.Receiver),
			Sender:              types.CanisterID(r.Sender),
			SenderReplyCallback: types.CallbackID(r.SenderReplyCallback),
			Payment:             types.Cycles(r.Payment),
			MethodName:          r.MethodName,
			MethodPayload:       r.MethodPayload,
		}, nil
	case pb.Response != nil:
		r := pb.Response
		return &types.Response{
			Originator:              types.CanisterID(r.Originator),
			Respondent:              types.CanisterID(r.Respondent),
			OriginatorReplyCallback: types.CallbackID(r.OriginatorReplyCallback),
			Refund:                  types.Cycles(r.Refund),
			Data:                    r.Data,
			RejectCode:              types.RejectCode(r.RejectCode),
			RejectMessage:           r.RejectMessage,
		}, nil
	default:
		return nil, errors.New("RequestOrResponse has neither request nor response set")
	}
}

func ingressQueueToProto(q *IngressQueue) *pbqueues.IngressQueue {
	pb := &pbqueues.IngressQueue{}
	for _, msg := range q.messages() {
		pb.Queue = append(pb.Queue, &pbqueues.Ingress{
			Source:        string(msg.Source),
			Receiver:      uint64(msg.Receiver),
			MethodName:    msg.MethodName,
			MethodPayload: msg.MethodPayload,
			MessageId:     msg.MessageID,
			ExpiryTime:    msg.ExpiryTime,
		})
	}
	return pb
}

func ingressQueueFromProto(pb *pbqueues.IngressQueue) (IngressQueue, error) {
	var q IngressQueue
	if pb == nil {
		return q, nil
	}
	for i, m := range pb.Queue {
		if m == nil {
			return IngressQueue{}, fmt.Errorf("nil ingress message at position %d", i)
		}
		q.Push(&types.Ingress{
			Source:        types.UserID(m.Source),
			Receiver:      types.CanisterID(m.Receiver),
			MethodName:    m.MethodName,
			MethodPayload: m.MethodPayload,
			MessageID:     m.MessageId,
			ExpiryTime:    m.ExpiryTime,
		})
	}
	return q, nil
}

func nextInputQueueToProto(n NextInputQueue) pbqueues.NextInputQueue {
	switch n {
	case NextIngress:
		return pbqueues.NextInputQueueIngress
	case NextRemoteSubnet:
		return pbqueues.NextInputQueueRemoteSubnet
	default:
		return pbqueues.NextInputQueueLocalSubnet
	}
}

func nextInputQueueFromProto(v pbqueues.NextInputQueue) (NextInputQueue, error) {
	switch v {
	case pbqueues.NextInputQueueUnspecified, pbqueues.NextInputQueueLocalSubnet:
		return NextLocalSubnet, nil
	case pbqueues.NextInputQueueIngress:
		return NextIngress, nil
	case pbqueues.NextInputQueueRemoteSubnet:
		return NextRemoteSubnet, nil
	default:
		return 0, fmt.Errorf("unknown next input queue %d", v)
	}
}

func canisterIDsToProto(ids []types.CanisterID) []uint64 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = uint64(id)
	}
	return out
}

func canisterIDsFromProto(ids []uint64) []types.CanisterID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]types.CanisterID, len(ids))
	for i, id := range ids {
		out[i] = types.CanisterID(id)
	}
	return out
}
