package queues

import (
	"errors"
	"fmt"

	"github.com/google/btree"

	"github.com/replicanet/induction/types"
)

// DefaultQueueCapacity is the capacity of every input and output queue,
// unless overridden with WithCapacity.
const DefaultQueueCapacity = 500

// btreeDegree is the degree of the B-tree holding queue pairs.
const btreeDegree = 16

// ErrNothingToInduct is returned by InductMessageToSelf when the canister's
// output queue to itself is empty or does not exist.
var ErrNothingToInduct = errors.New("no message to induct")

// InputQueueType classifies the sender of a message relative to the
// receiving canister's subnet.
type InputQueueType int

const (
	// LocalSubnet senders are hosted on the same subnet as the receiver.
	LocalSubnet InputQueueType = iota
	// RemoteSubnet senders are hosted on another subnet.
	RemoteSubnet
)

func (t InputQueueType) String() string {
	switch t {
	case LocalSubnet:
		return "local_subnet"
	case RemoteSubnet:
		return "remote_subnet"
	default:
		return fmt.Sprintf("InputQueueType(%d)", int(t))
	}
}

// NextInputQueue is the round-robin cursor over the three classes of input
// polled by PopInput.
type NextInputQueue int

const (
	NextLocalSubnet NextInputQueue = iota
	NextIngress
	NextRemoteSubnet
)

func (n NextInputQueue) next() NextInputQueue {
	switch n {
	case NextLocalSubnet:
		return NextIngress
	case NextIngress:
		return NextRemoteSubnet
	default:
		return NextLocalSubnet
	}
}

func (n NextInputQueue) String() string {
	switch n {
	case NextLocalSubnet:
		return "local_subnet"
	case NextIngress:
		return "ingress"
	case NextRemoteSubnet:
		return "remote_subnet"
	default:
		return fmt.Sprintf("NextInputQueue(%d)", int(n))
	}
}

// queuePair is the input and output queue to and from a single peer.
type queuePair struct {
	id     types.CanisterID
	input  *InputQueue
	output *OutputQueue
}

// Less implements btree.Item.
func (p *queuePair) Less(than btree.Item) bool {
	return p.id < than.(*queuePair).id
}

// CanisterQueues is the induction pool (ingress and input queues) plus the
// output queues of a single canister. Input and output queues live side by
// side so that every request accepted in one direction can reserve a slot
// for its response in the other, which is what makes response delivery
// immune to backpressure.
//
// CanisterQueues also schedules input fairly: round robin across local
// subnet senders, ingress and remote subnet senders; and round robin across
// senders within each of the canister classes.
//
// CanisterQueues is not safe for concurrent use. The caller owns it
// exclusively for the duration of every call, including the lifetime of an
// OutputIterator.
type CanisterQueues struct {
	// Queue of ingress (user) messages.
	ingressQueue IngressQueue

	// Per peer input and output queues, ordered by peer ID.
	canisterQueues *btree.BTree

	// FIFO of local subnet senders with non-empty input queues, for round
	// robin consumption. A sender appears at most once.
	localSubnetInputSchedule []types.CanisterID

	// FIFO of remote subnet senders with non-empty input queues.
	remoteSubnetInputSchedule []types.CanisterID

	inputQueuesStats  InputQueuesStats
	outputQueuesStats OutputQueuesStats
	memoryUsageStats  memoryUsageStats

	// Input class to poll first on the next PopInput call.
	nextInputQueue NextInputQueue

	capacity    int
	debugChecks bool

	// Set while an OutputIterator holds the queues.
	draining bool
}

// Option sets an optional parameter on CanisterQueues.
type Option func(*CanisterQueues)

// WithCapacity sets the capacity of newly created input and output queues.
func WithCapacity(capacity int) Option {
	return func(cq *CanisterQueues) { cq.capacity = capacity }
}

// WithDebugChecks enables recomputing all stats from scratch after every
// mutation and panicking if they drifted from the running stats. This is
// O(num_messages) per operation and meant for tests and debugging.
func WithDebugChecks(enabled bool) Option {
	return func(cq *CanisterQueues) { cq.debugChecks = enabled }
}

// NewCanisterQueues returns an empty CanisterQueues.
func NewCanisterQueues(options ...Option) *CanisterQueues {
	cq := &CanisterQueues{
		canisterQueues: btree.New(btreeDegree),
		capacity:       DefaultQueueCapacity,
	}
	for _, opt := range options {
		opt(cq)
	}
	return cq
}

// PushIngress pushes an ingress message into the induction pool.
func (cq *CanisterQueues) PushIngress(msg *types.Ingress) {
	cq.mustNotDrain()
	cq.ingressQueue.Push(msg)
}

func (cq *CanisterQueues) popIngress() (*types.Ingress, bool) {
	return cq.ingressQueue.Pop()
}

// FilterIngressMessages retains only the ingress messages for which keep
// returns true.
func (cq *CanisterQueues) FilterIngressMessages(keep func(*types.Ingress) bool) {
	cq.mustNotDrain()
	cq.ingressQueue.FilterMessages(keep)
}

// PushInput pushes a canister-to-canister message into the induction pool.
// The caller classifies the sender as local or remote subnet.
//
// Pushing a request also reserves a slot for the eventual response in the
// output queue to the sender. Pushing a response consumes the reservation
// made when the matching request was pushed onto the output queue, so it
// cannot fail for lack of capacity.
//
// Returns a *types.QueueFullError if pushing a request and either the input
// queue from, or the output queue to the sender is full; or if pushing a
// response from a peer the canister has never exchanged messages with
// (capacity 0). A failed push has no effect.
func (cq *CanisterQueues) PushInput(msg types.RequestOrResponse, inputQueueType InputQueueType) error {
	cq.mustNotDrain()

	sender := msg.Src()
	var inputQueue *InputQueue
	switch msg.(type) {
	case *types.Request:
		pair, found := cq.getOrNewQueues(sender)
		if err := pair.input.checkHasSlot(); err != nil {
			return err
		}
		// The push below cannot fail after the check above, so it is safe to
		// reserve the output slot first.
		if err := pair.output.reserveSlot(); err != nil {
			return err
		}
		if !found {
			cq.insertQueues(pair)
		}
		inputQueue = pair.input

	case *types.Response:
		pair := cq.getQueues(sender)
		if pair == nil {
			return &types.QueueFullError{Capacity: 0}
		}
		inputQueue = pair.input

	default:
		panic(fmt.Sprintf("unknown message type %T", msg))
	}

	iqDelta := inputQueuesStatsDelta(opPush, msg)
	muDelta := memoryUsageStatsDelta(opPush, msg)

	if err := inputQueue.push(msg); err != nil {
		panic(fmt.Sprintf("push into input queue from %v failed after capacity check: %v", sender, err))
	}

	// The sender is scheduled iff its input queue was empty before the push.
	if inputQueue.numMessages() == 1 {
		switch inputQueueType {
		case LocalSubnet:
			cq.localSubnetInputSchedule = append(cq.localSubnetInputSchedule, sender)
		case RemoteSubnet:
			cq.remoteSubnetInputSchedule = append(cq.remoteSubnetInputSchedule, sender)
		default:
			panic(fmt.Sprintf("unknown input queue type %v", inputQueueType))
		}
	}

	cq.inputQueuesStats.add(iqDelta)
	cq.memoryUsageStats.add(muDelta)
	cq.checkStats()

	return nil
}

// popCanisterInput pops the next message from the input queue of the sender
// at the head of the given schedule. The sender goes to the back of the
// schedule if it has more messages, so that senders are served round robin.
func (cq *CanisterQueues) popCanisterInput(inputQueueType InputQueueType) (types.RequestOrResponse, bool) {
	var schedule *[]types.CanisterID
	switch inputQueueType {
	case LocalSubnet:
		schedule = &cq.localSubnetInputSchedule
	case RemoteSubnet:
		schedule = &cq.remoteSubnetInputSchedule
	default:
		panic(fmt.Sprintf("unknown input queue type %v", inputQueueType))
	}
	if len(*schedule) == 0 {
		return nil, false
	}

	sender := (*schedule)[0]
	*schedule = (*schedule)[1:]
	if len(*schedule) == 0 {
		*schedule = nil
	}

	pair := cq.getQueues(sender)
	if pair == nil {
		panic(fmt.Sprintf("scheduled sender %v has no queues", sender))
	}
	msg, ok := pair.input.pop()
	if !ok {
		panic(fmt.Sprintf("scheduled sender %v has an empty input queue", sender))
	}
	if pair.input.numMessages() > 0 {
		*schedule = append(*schedule, sender)
	}

	cq.inputQueuesStats.sub(inputQueuesStatsDelta(opPop, msg))
	cq.memoryUsageStats.sub(memoryUsageStatsDelta(opPop, msg))
	cq.checkStats()

	return msg, true
}

// HasInput returns true if the ingress queue or at least one input queue is
// not empty.
func (cq *CanisterQueues) HasInput() bool {
	return !cq.ingressQueue.IsEmpty() || cq.inputQueuesStats.MessageCount > 0
}

// HasOutput returns true if at least one output queue is not empty.
func (cq *CanisterQueues) HasOutput() bool {
	return cq.outputQueuesStats.MessageCount > 0
}

// PopInput pops the next ingress message, local subnet message or remote
// subnet message.
//
// Consecutive calls cycle through the three classes, local subnet first,
// skipping empty ones. Within the local and remote subnet classes, senders
// are served round robin, one message at a time.
func (cq *CanisterQueues) PopInput() (types.InputMessage, bool) {
	cq.mustNotDrain()

	for i := 0; i < 3; i++ {
		cur := cq.nextInputQueue
		cq.nextInputQueue = cur.next()

		var (
			msg types.InputMessage
			ok  bool
		)
		switch cur {
		case NextIngress:
			msg, ok = cq.popIngress()
		case NextLocalSubnet:
			msg, ok = cq.popCanisterInput(LocalSubnet)
		case NextRemoteSubnet:
			msg, ok = cq.popCanisterInput(RemoteSubnet)
		}
		if ok {
			return msg, true
		}
	}
	return nil, false
}

// PushOutputRequest pushes a request onto the output queue to its receiver
// and reserves a slot for the eventual response on the matching input queue.
//
// Returns a *types.QueueFullError if either queue is full, in which case
// nothing changes.
func (cq *CanisterQueues) PushOutputRequest(req *types.Request) error {
	cq.mustNotDrain()

	pair, found := cq.getOrNewQueues(req.Receiver)
	if err := pair.output.checkHasSlot(); err != nil {
		return err
	}
	if err := pair.input.reserveSlot(); err != nil {
		return err
	}
	if !found {
		cq.insertQueues(pair)
	}

	muDelta := requestMemoryUsageStatsDelta(opPush, req)
	oqDelta := outputQueuesStatsDelta(req)

	if err := pair.output.pushRequest(req); err != nil {
		panic(fmt.Sprintf("push into output queue to %v failed after capacity check: %v", req.Receiver, err))
	}

	cq.inputQueuesStats.ReservedSlots++
	cq.outputQueuesStats.add(oqDelta)
	cq.memoryUsageStats.add(muDelta)
	cq.checkStats()

	return nil
}

// AvailableOutputRequestSlots returns, for every peer, the number of
// requests that can be pushed before either the output queue or the input
// queue (where the response slot is reserved) is full.
func (cq *CanisterQueues) AvailableOutputRequestSlots() map[types.CanisterID]int {
	slots := make(map[types.CanisterID]int, cq.canisterQueues.Len())
	cq.ascend(func(p *queuePair) {
		n := p.input.availableSlots()
		if m := p.output.availableSlots(); m < n {
			n = m
		}
		slots[p.id] = n
	})
	return slots
}

// PushOutputResponse pushes a response onto the output queue to the
// originator of the request. A slot was reserved when the request was
// inducted, so this cannot fail.
//
// It panics if the output queue does not exist or has no reserved slot,
// since either means the request/response protocol was violated upstream.
func (cq *CanisterQueues) PushOutputResponse(rep *types.Response) {
	cq.mustNotDrain()

	muDelta := responseMemoryUsageStatsDelta(opPush, rep)
	oqDelta := outputQueuesStatsDelta(rep)

	// Queues are never garbage collected here, so the pair created when the
	// request was inducted is still around.
	pair := cq.getQueues(rep.Originator)
	if pair == nil {
		panic(fmt.Sprintf("pushing response into inexistent output queue to %v", rep.Originator))
	}
	pair.output.pushResponse(rep)

	cq.memoryUsageStats.add(muDelta)
	cq.outputQueuesStats.add(oqDelta)
	cq.checkStats()
}

// PeekOutput returns the message at the head of the output queue to
// canisterID, if any.
func (cq *CanisterQueues) PeekOutput(canisterID types.CanisterID) (types.RequestOrResponse, bool) {
	pair := cq.getQueues(canisterID)
	if pair == nil {
		return nil, false
	}
	_, msg, ok := pair.output.peek()
	return msg, ok
}

// InductMessageToSelf moves the message at the head of the output queue to
// own into the input queue from own. Returns ErrNothingToInduct if there is
// no such message, or the push error if the input queue is full.
func (cq *CanisterQueues) InductMessageToSelf(own types.CanisterID) error {
	cq.mustNotDrain()

	msg, ok := cq.PeekOutput(own)
	if !ok {
		return ErrNothingToInduct
	}
	if err := cq.PushInput(msg, LocalSubnet); err != nil {
		return err
	}

	_, msg, ok = cq.getQueues(own).output.pop()
	if !ok {
		panic("output queue to self emptied between peek and pop")
	}
	cq.outputQueuesStats.sub(outputQueuesStatsDelta(msg))
	cq.memoryUsageStats.sub(memoryUsageStatsDelta(opPop, msg))
	cq.checkStats()

	return nil
}

// OutputQueuesForEach invokes f on the messages of every output queue, in
// peer order, until f returns an error; then moves on to the next output
// queue. Messages f accepted are popped. The message f rejected and all
// messages behind it in the same queue are retained.
func (cq *CanisterQueues) OutputQueuesForEach(f func(types.CanisterID, types.RequestOrResponse) error) {
	cq.mustNotDrain()

	cq.ascend(func(p *queuePair) {
		for {
			_, msg, ok := p.output.peek()
			if !ok || f(p.id, msg) != nil {
				return
			}
			if _, _, ok := p.output.pop(); !ok {
				panic("peeked output queue is empty")
			}
			cq.outputQueuesStats.sub(outputQueuesStatsDelta(msg))
			cq.memoryUsageStats.sub(memoryUsageStatsDelta(opPop, msg))
		}
	})
	cq.checkStats()
}

// IngressQueueMessageCount returns the number of enqueued ingress messages.
func (cq *CanisterQueues) IngressQueueMessageCount() int {
	return cq.ingressQueue.Size()
}

// IngressQueueSizeBytes returns the total byte size of enqueued ingress
// messages.
func (cq *CanisterQueues) IngressQueueSizeBytes() int {
	return cq.ingressQueue.CountBytes()
}

// InputQueuesMessageCount returns the number of messages in input queues.
func (cq *CanisterQueues) InputQueuesMessageCount() int {
	return cq.inputQueuesStats.MessageCount
}

// InputQueuesReservationCount returns the number of reservations across
// input queues.
func (cq *CanisterQueues) InputQueuesReservationCount() int {
	return cq.inputQueuesStats.ReservedSlots
}

// InputQueueCycles returns the cycles carried by messages in input queues.
func (cq *CanisterQueues) InputQueueCycles() types.Cycles {
	return cq.inputQueuesStats.Cycles
}

// OutputQueuesMessageCount returns the number of messages in output queues.
func (cq *CanisterQueues) OutputQueuesMessageCount() int {
	return cq.outputQueuesStats.MessageCount
}

// OutputQueueCycles returns the cycles carried by messages in output queues.
func (cq *CanisterQueues) OutputQueueCycles() types.Cycles {
	return cq.outputQueuesStats.Cycles
}

// InputQueuesSizeBytes returns the byte size of input queues, queue
// overhead included.
func (cq *CanisterQueues) InputQueuesSizeBytes() int {
	return cq.inputQueuesStats.SizeBytes
}

// InputQueuesResponseCount returns the number of responses in input queues.
func (cq *CanisterQueues) InputQueuesResponseCount() int {
	return cq.inputQueuesStats.ResponseCount
}

// InputQueuesStats returns the running input queue stats.
func (cq *CanisterQueues) InputQueuesStats() InputQueuesStats {
	return cq.inputQueuesStats
}

// OutputQueuesStats returns the running output queue stats.
func (cq *CanisterQueues) OutputQueuesStats() OutputQueuesStats {
	return cq.outputQueuesStats
}

// MemoryUsage returns the memory usage of the queues, in bytes.
func (cq *CanisterQueues) MemoryUsage() int {
	return cq.memoryUsageStats.memoryUsage()
}

// ResponsesSizeBytes returns the byte size of responses across input and
// output queues.
func (cq *CanisterQueues) ResponsesSizeBytes() int {
	return cq.memoryUsageStats.responsesSizeBytes
}

// ReservedSlots returns the number of reserved slots across input and output
// queues.
func (cq *CanisterQueues) ReservedSlots() int {
	return int(cq.memoryUsageStats.reservedSlots)
}

// OversizedRequestsExtraBytes returns the bytes above
// types.MaxResponseCountBytes, summed over oversized requests.
func (cq *CanisterQueues) OversizedRequestsExtraBytes() int {
	return cq.memoryUsageStats.oversizedRequestsExtraBytes
}

// SetStreamResponsesSizeBytes sets the transient byte size of responses
// routed from output queues into streams and not yet garbage collected.
func (cq *CanisterQueues) SetStreamResponsesSizeBytes(sizeBytes int) {
	cq.mustNotDrain()
	cq.memoryUsageStats.transientStreamResponsesSizeBytes = sizeBytes
}

// StreamResponsesSizeBytes returns the value set by the last call to
// SetStreamResponsesSizeBytes.
func (cq *CanisterQueues) StreamResponsesSizeBytes() int {
	return cq.memoryUsageStats.transientStreamResponsesSizeBytes
}

// Capacity returns the capacity of newly created queues.
func (cq *CanisterQueues) Capacity() int {
	return cq.capacity
}

func (cq *CanisterQueues) getQueues(canisterID types.CanisterID) *queuePair {
	item := cq.canisterQueues.Get(&queuePair{id: canisterID})
	if item == nil {
		return nil
	}
	return item.(*queuePair)
}

// getOrNewQueues returns the queue pair from/to canisterID and true; or a
// new, empty pair and false if there is none. A new pair only becomes part of
// the queues once passed to insertQueues, so that failed pushes leave no
// trace.
func (cq *CanisterQueues) getOrNewQueues(canisterID types.CanisterID) (*queuePair, bool) {
	if pair := cq.getQueues(canisterID); pair != nil {
		return pair, true
	}
	return &queuePair{
		id:     canisterID,
		input:  NewInputQueue(cq.capacity),
		output: NewOutputQueue(cq.capacity),
	}, false
}

func (cq *CanisterQueues) insertQueues(pair *queuePair) {
	cq.canisterQueues.ReplaceOrInsert(pair)
	cq.inputQueuesStats.SizeBytes += pair.input.calculateSizeBytes()
}

// ascend calls f on every queue pair in peer order.
func (cq *CanisterQueues) ascend(f func(*queuePair)) {
	cq.canisterQueues.Ascend(func(item btree.Item) bool {
		f(item.(*queuePair))
		return true
	})
}

func (cq *CanisterQueues) mustNotDrain() {
	if cq.draining {
		panic("CanisterQueues accessed while an OutputIterator is open")
	}
}

// checkStats validates the running stats against a full recomputation when
// debug checks are enabled.
func (cq *CanisterQueues) checkStats() {
	if !cq.debugChecks {
		return
	}
	if want := calculateInputQueuesStats(cq.canisterQueues); want != cq.inputQueuesStats {
		panic(fmt.Sprintf("input queues stats drifted: running %+v, computed %+v", cq.inputQueuesStats, want))
	}
	if want := calculateOutputQueuesStats(cq.canisterQueues); want != cq.outputQueuesStats {
		panic(fmt.Sprintf("output queues stats drifted: running %+v, computed %+v", cq.outputQueuesStats, want))
	}
	if want := calculateMemoryUsageStats(cq.canisterQueues); !want.equal(cq.memoryUsageStats) {
		panic(fmt.Sprintf("memory usage stats drifted: running %+v, computed %+v", cq.memoryUsageStats, want))
	}
}

// calculateInputQueuesStats computes input queue stats from scratch. Used
// when decoding and by debug checks.
//
// Time complexity: O(num_messages).
func calculateInputQueuesStats(canisterQueues *btree.BTree) InputQueuesStats {
	var stats InputQueuesStats
	canisterQueues.Ascend(func(item btree.Item) bool {
		q := item.(*queuePair).input
		stats.MessageCount += q.numMessages()
		stats.ResponseCount += q.calculateStatSum(responseCount)
		stats.ReservedSlots += q.reservedSlots()
		stats.SizeBytes += q.calculateSizeBytes()
		stats.Cycles += q.cyclesInQueue()
		return true
	})
	return stats
}

// calculateOutputQueuesStats computes output queue stats from scratch.
//
// Time complexity: O(num_messages).
func calculateOutputQueuesStats(canisterQueues *btree.BTree) OutputQueuesStats {
	var stats OutputQueuesStats
	canisterQueues.Ascend(func(item btree.Item) bool {
		q := item.(*queuePair).output
		stats.MessageCount += q.numMessages()
		stats.Cycles += q.cyclesInQueue()
		return true
	})
	return stats
}

// calculateMemoryUsageStats computes memory usage stats from scratch. The
// transient stream responses size is left at zero.
//
// Time complexity: O(num_messages).
func calculateMemoryUsageStats(canisterQueues *btree.BTree) memoryUsageStats {
	var stats memoryUsageStats
	canisterQueues.Ascend(func(item btree.Item) bool {
		p := item.(*queuePair)
		for _, q := range []*queue{&p.input.queue, &p.output.queue} {
			stats.responsesSizeBytes += q.calculateStatSum(responseSizeBytes)
			stats.reservedSlots += int64(q.reservedSlots())
			stats.oversizedRequestsExtraBytes += q.calculateStatSum(oversizedExtraBytes)
		}
		return true
	})
	return stats
}
