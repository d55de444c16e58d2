package queues

import (
	"fmt"

	"github.com/replicanet/induction/types"
)

const (
	// emptyInputQueueSizeBytes is the fixed overhead accounted for every input
	// queue, on top of the byte size of its messages.
	emptyInputQueueSizeBytes = 64
)

// queue is a capacity-bounded FIFO of canister messages. Capacity is shared
// between enqueued messages and reserved slots, i.e. promises to accept a
// response at a later time:
//
//	len(messages) + numSlotsReserved <= capacity
type queue struct {
	messages         []types.RequestOrResponse
	capacity         int
	numSlotsReserved int
}

func newQueue(capacity int) queue {
	return queue{capacity: capacity}
}

// checkHasSlot returns an error iff there is no room for another request.
func (q *queue) checkHasSlot() error {
	if len(q.messages)+q.numSlotsReserved >= q.capacity {
		return &types.QueueFullError{Capacity: q.capacity}
	}
	return nil
}

// reserveSlot reserves a slot for a future response. Fails under the same
// conditions as checkHasSlot.
func (q *queue) reserveSlot() error {
	if err := q.checkHasSlot(); err != nil {
		return err
	}
	q.numSlotsReserved++
	return nil
}

func (q *queue) pushRequest(msg *types.Request) error {
	if err := q.checkHasSlot(); err != nil {
		return err
	}
	q.messages = append(q.messages, msg)
	return nil
}

// pushResponse enqueues a response into a previously reserved slot. It panics
// if there is no reservation to consume.
func (q *queue) pushResponse(msg *types.Response) {
	if q.numSlotsReserved <= 0 {
		panic(fmt.Sprintf("pushing %v into queue with no reserved slots", msg))
	}
	q.numSlotsReserved--
	q.messages = append(q.messages, msg)
}

func (q *queue) pop() (types.RequestOrResponse, bool) {
	if len(q.messages) == 0 {
		return nil, false
	}
	msg := q.messages[0]
	q.messages[0] = nil
	q.messages = q.messages[1:]
	if len(q.messages) == 0 {
		q.messages = nil
	}
	return msg, true
}

func (q *queue) peek() (types.RequestOrResponse, bool) {
	if len(q.messages) == 0 {
		return nil, false
	}
	return q.messages[0], true
}

func (q *queue) numMessages() int { return len(q.messages) }

func (q *queue) reservedSlots() int { return q.numSlotsReserved }

// availableSlots returns the number of requests that can still be pushed or
// slots that can still be reserved.
func (q *queue) availableSlots() int {
	return q.capacity - len(q.messages) - q.numSlotsReserved
}

// calculateStatSum sums f over all enqueued messages.
//
// Time complexity: O(num_messages).
func (q *queue) calculateStatSum(f func(types.RequestOrResponse) int) int {
	sum := 0
	for _, msg := range q.messages {
		sum += f(msg)
	}
	return sum
}

func (q *queue) cyclesInQueue() types.Cycles {
	var cycles types.Cycles
	for _, msg := range q.messages {
		cycles += msg.Cycles()
	}
	return cycles
}

// InputQueue holds the messages addressed to the owning canister by a single
// sender, and the slots reserved for responses to requests the owning
// canister sent to that peer.
type InputQueue struct {
	queue
}

// NewInputQueue returns an empty input queue of the given capacity.
func NewInputQueue(capacity int) *InputQueue {
	return &InputQueue{queue: newQueue(capacity)}
}

// push enqueues msg. Requests require a free slot, responses consume a
// reservation.
func (q *InputQueue) push(msg types.RequestOrResponse) error {
	switch m := msg.(type) {
	case *types.Request:
		return q.pushRequest(m)
	case *types.Response:
		q.pushResponse(m)
		return nil
	default:
		panic(fmt.Sprintf("unknown message type %T", msg))
	}
}

// NumMessages returns the number of enqueued messages.
func (q *InputQueue) NumMessages() int { return q.numMessages() }

// ReservedSlots returns the number of slots reserved for responses.
func (q *InputQueue) ReservedSlots() int { return q.reservedSlots() }

// AvailableSlots returns the number of free slots.
func (q *InputQueue) AvailableSlots() int { return q.availableSlots() }

// Capacity returns the capacity of the queue.
func (q *InputQueue) Capacity() int { return q.capacity }

// calculateSizeBytes returns the byte size of the queue and its messages.
//
// Time complexity: O(num_messages).
func (q *InputQueue) calculateSizeBytes() int {
	return emptyInputQueueSizeBytes + q.calculateStatSum(countBytes)
}

// OutputQueue holds the messages the owning canister sent to a single
// receiver, and the slots reserved for responses to requests received from
// that peer. Messages are indexed sequentially as they leave the queue.
type OutputQueue struct {
	queue

	// begin is the index of the message at the head of the queue.
	begin types.QueueIndex
}

// NewOutputQueue returns an empty output queue of the given capacity.
func NewOutputQueue(capacity int) *OutputQueue {
	return &OutputQueue{queue: newQueue(capacity)}
}

func (q *OutputQueue) push(msg types.RequestOrResponse) error {
	switch m := msg.(type) {
	case *types.Request:
		return q.pushRequest(m)
	case *types.Response:
		q.pushResponse(m)
		return nil
	default:
		panic(fmt.Sprintf("unknown message type %T", msg))
	}
}

// pop removes the head message, returning it along with its index.
func (q *OutputQueue) pop() (types.QueueIndex, types.RequestOrResponse, bool) {
	msg, ok := q.queue.pop()
	if !ok {
		return 0, nil, false
	}
	index := q.begin
	q.begin++
	return index, msg, true
}

// peek returns the head message and its index without removing it.
func (q *OutputQueue) peek() (types.QueueIndex, types.RequestOrResponse, bool) {
	msg, ok := q.queue.peek()
	if !ok {
		return 0, nil, false
	}
	return q.begin, msg, true
}

// NumMessages returns the number of enqueued messages.
func (q *OutputQueue) NumMessages() int { return q.numMessages() }

// ReservedSlots returns the number of slots reserved for responses.
func (q *OutputQueue) ReservedSlots() int { return q.reservedSlots() }

// AvailableSlots returns the number of free slots.
func (q *OutputQueue) AvailableSlots() int { return q.availableSlots() }

// Capacity returns the capacity of the queue.
func (q *OutputQueue) Capacity() int { return q.capacity }

// Begin returns the index of the next message to be popped.
func (q *OutputQueue) Begin() types.QueueIndex { return q.begin }

func countBytes(msg types.RequestOrResponse) int { return msg.CountBytes() }
