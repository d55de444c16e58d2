package queues

import (
	"fmt"

	"github.com/replicanet/induction/types"
)

// OutputIterator consumes output queue messages round robin: it loops over
// the non-empty output queues, popping one message at a time from each.
// Messages that are not explicitly popped remain in the queues.
//
// Compared to a plain iterator it can also peek at the next message, and
// exclude whole queues from iteration while retaining their messages, e.g.
// to enforce per destination limits.
//
// An OutputIterator holds its CanisterQueues exclusively: any other
// mutation of the queues panics until Close is called.
type OutputIterator struct {
	// ID of the canister owning the output queues.
	owner types.CanisterID

	cq *CanisterQueues

	// Non-empty output queues still being iterated. The next message to be
	// peeked or popped is the head of the first one.
	queues []*queuePair

	// Number of messages that can still be popped.
	size int
}

// OutputIntoIter returns an iterator that pops output messages round robin
// across output queues, in peer order. The caller must Close the iterator
// before touching the queues again.
func (cq *CanisterQueues) OutputIntoIter(owner types.CanisterID) *OutputIterator {
	cq.mustNotDrain()
	cq.draining = true

	var queues []*queuePair
	cq.ascend(func(p *queuePair) {
		if p.output.numMessages() > 0 {
			queues = append(queues, p)
		}
	})
	return &OutputIterator{
		owner:  owner,
		cq:     cq,
		queues: queues,
		size:   computeSize(queues),
	}
}

// Peek returns the message that Pop would return, without consuming it.
func (it *OutputIterator) Peek() (types.QueueID, types.QueueIndex, types.RequestOrResponse, bool) {
	if len(it.queues) == 0 {
		return types.QueueID{}, 0, nil, false
	}
	receiver := it.queues[0]
	index, msg, ok := receiver.output.peek()
	if !ok {
		panic(fmt.Sprintf("empty output queue to %v in iterator", receiver.id))
	}
	return it.queueID(receiver.id), index, msg, true
}

// Pop pops a message from the next queue. If that queue has more messages,
// it moves to the back of the iteration order.
func (it *OutputIterator) Pop() (types.QueueID, types.QueueIndex, types.RequestOrResponse, bool) {
	if len(it.queues) == 0 {
		return types.QueueID{}, 0, nil, false
	}
	receiver := it.queues[0]
	it.queues = it.queues[1:]

	index, msg, ok := receiver.output.pop()
	if !ok {
		panic(fmt.Sprintf("empty output queue to %v in iterator", receiver.id))
	}
	if receiver.output.numMessages() > 0 {
		it.queues = append(it.queues, receiver)
	}

	it.cq.memoryUsageStats.sub(memoryUsageStatsDelta(opPop, msg))
	it.cq.outputQueuesStats.sub(outputQueuesStatsDelta(msg))
	it.size--
	it.checkSize()

	return it.queueID(receiver.id), index, msg, true
}

// Next is an alias for Pop.
func (it *OutputIterator) Next() (types.QueueID, types.QueueIndex, types.RequestOrResponse, bool) {
	return it.Pop()
}

// ExcludeQueue permanently excludes the next queue from iteration, i.e. all
// messages with the same receiver as the next message. The messages are
// retained in the output queue.
//
// Returns the number of messages left in the excluded queue.
func (it *OutputIterator) ExcludeQueue() int {
	if len(it.queues) == 0 {
		return 0
	}
	ignored := it.queues[0].output.numMessages()
	it.queues = it.queues[1:]

	it.size -= ignored
	it.checkSize()

	return ignored
}

// IsEmpty returns true if the iteration has finished.
func (it *OutputIterator) IsEmpty() bool {
	return len(it.queues) == 0
}

// Size returns the exact number of messages left to iterate over.
func (it *OutputIterator) Size() int {
	return it.size
}

// Close ends the iteration and releases the queues. It is safe to call
// Close more than once.
func (it *OutputIterator) Close() {
	if it.cq == nil {
		return
	}
	it.queues = nil
	it.size = 0
	it.cq.draining = false
	it.cq.checkStats()
	it.cq = nil
}

func (it *OutputIterator) queueID(receiver types.CanisterID) types.QueueID {
	return types.QueueID{
		SrcCanister: it.owner,
		DstCanister: receiver,
		SessionID:   0,
	}
}

func (it *OutputIterator) checkSize() {
	if it.cq.debugChecks {
		if n := computeSize(it.queues); n != it.size {
			panic(fmt.Sprintf("output iterator size drifted: running %d, computed %d", it.size, n))
		}
	}
}

// computeSize returns the number of messages left in queues.
//
// Time complexity: O(len(queues)).
func computeSize(queues []*queuePair) int {
	size := 0
	for _, p := range queues {
		size += p.output.numMessages()
	}
	return size
}
