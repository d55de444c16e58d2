package queues

import "github.com/replicanet/induction/types"

// IngressQueue is an unbounded FIFO of ingress messages. Backpressure on
// ingress is applied before messages ever reach a canister, so it has no
// capacity of its own.
type IngressQueue struct {
	queue      []*types.Ingress
	totalBytes int
}

// Push appends msg to the back of the queue.
func (q *IngressQueue) Push(msg *types.Ingress) {
	q.totalBytes += msg.CountBytes()
	q.queue = append(q.queue, msg)
}

// Pop removes and returns the message at the front of the queue.
func (q *IngressQueue) Pop() (*types.Ingress, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	msg := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	if len(q.queue) == 0 {
		q.queue = nil
	}
	q.totalBytes -= msg.CountBytes()
	return msg, true
}

// Size returns the number of enqueued messages.
func (q *IngressQueue) Size() int { return len(q.queue) }

// IsEmpty returns true if there are no enqueued messages.
func (q *IngressQueue) IsEmpty() bool { return len(q.queue) == 0 }

// CountBytes returns the total byte size of the enqueued messages.
func (q *IngressQueue) CountBytes() int { return q.totalBytes }

// FilterMessages retains only the messages for which keep returns true,
// preserving their relative order.
func (q *IngressQueue) FilterMessages(keep func(*types.Ingress) bool) {
	kept := q.queue[:0]
	for _, msg := range q.queue {
		if keep(msg) {
			kept = append(kept, msg)
		} else {
			q.totalBytes -= msg.CountBytes()
		}
	}
	for i := len(kept); i < len(q.queue); i++ {
		q.queue[i] = nil
	}
	if len(kept) == 0 {
		kept = nil
	}
	q.queue = kept
}

// messages returns the enqueued messages, front first. The slice must not be
// modified.
func (q *IngressQueue) messages() []*types.Ingress { return q.queue }
