package queues

import "github.com/replicanet/induction/types"

// This file exposes white-box accessors for test harnesses, in this and
// other packages. They are not part of the production contract.

// IngressQueueSize returns the number of messages in the ingress queue.
func (cq *CanisterQueues) IngressQueueSize() int {
	return cq.ingressQueue.Size()
}

// PopCanisterOutput pops the next message from the output queue to dst.
// Indices returned by successive calls are sequential.
func (cq *CanisterQueues) PopCanisterOutput(dst types.CanisterID) (types.QueueIndex, types.RequestOrResponse, bool) {
	cq.mustNotDrain()

	pair := cq.getQueues(dst)
	if pair == nil {
		return 0, nil, false
	}
	index, msg, ok := pair.output.pop()
	if ok {
		cq.outputQueuesStats.sub(outputQueuesStatsDelta(msg))
		cq.memoryUsageStats.sub(memoryUsageStatsDelta(opPop, msg))
		cq.checkStats()
	}
	return index, msg, ok
}

// OutputQueuesLen returns the number of output queues, empty or not.
func (cq *CanisterQueues) OutputQueuesLen() int {
	return cq.canisterQueues.Len()
}

// OutputMessageCount counts the messages in output queues from scratch.
func (cq *CanisterQueues) OutputMessageCount() int {
	n := 0
	cq.ascend(func(p *queuePair) { n += p.output.numMessages() })
	return n
}

// InputQueueMessageCount returns the number of messages in the input queue
// from peer.
func (cq *CanisterQueues) InputQueueMessageCount(peer types.CanisterID) int {
	if pair := cq.getQueues(peer); pair != nil {
		return pair.input.numMessages()
	}
	return 0
}

// InputQueue returns the input queue from peer, or nil.
func (cq *CanisterQueues) InputQueue(peer types.CanisterID) *InputQueue {
	if pair := cq.getQueues(peer); pair != nil {
		return pair.input
	}
	return nil
}

// OutputQueue returns the output queue to peer, or nil.
func (cq *CanisterQueues) OutputQueue(peer types.CanisterID) *OutputQueue {
	if pair := cq.getQueues(peer); pair != nil {
		return pair.output
	}
	return nil
}

// LocalSubnetInputSchedule returns a copy of the local subnet input schedule.
func (cq *CanisterQueues) LocalSubnetInputSchedule() []types.CanisterID {
	return append([]types.CanisterID(nil), cq.localSubnetInputSchedule...)
}

// RemoteSubnetInputSchedule returns a copy of the remote subnet input
// schedule.
func (cq *CanisterQueues) RemoteSubnetInputSchedule() []types.CanisterID {
	return append([]types.CanisterID(nil), cq.remoteSubnetInputSchedule...)
}

// NewCanisterQueuesForTest pushes requests from sender onto output queues to
// numReceivers receivers, assigned round robin by position. It returns the
// queues along with the requests in the order an OutputIterator is expected
// to yield them.
func NewCanisterQueuesForTest(
	requests []*types.Request,
	sender types.CanisterID,
	numReceivers int,
	options ...Option,
) (*CanisterQueues, []types.RequestOrResponse) {
	cq := NewCanisterQueues(options...)
	ordered := make([]types.RequestOrResponse, 0, len(requests))
	for i, req := range requests {
		req.Sender = sender
		req.Receiver = types.CanisterID(i % numReceivers)
		ordered = append(ordered, req)
		if err := cq.PushOutputRequest(req); err != nil {
			panic(err)
		}
	}
	return cq, ordered
}
