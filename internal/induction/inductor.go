package induction

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/state/queues"
	"github.com/replicanet/induction/libs/log"
	"github.com/replicanet/induction/types"
)

var (
	// ErrCanisterNotFound is returned when a message is addressed to a
	// canister the subnet does not host.
	ErrCanisterNotFound = errors.New("canister not found")

	// ErrCanisterExists is returned when adding a canister twice.
	ErrCanisterExists = errors.New("canister already exists")
)

// Handler executes input messages on behalf of canisters.
type Handler interface {
	// Execute executes msg on canister. For requests, reply is the response
	// to send back; a nil reply is turned into a reject. Calls are requests
	// to other canisters made during execution; their sender is set to
	// canister.
	Execute(canister types.CanisterID, msg types.InputMessage) (reply *types.Response, calls []*types.Request)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(types.CanisterID, types.InputMessage) (*types.Response, []*types.Request)

func (f HandlerFunc) Execute(canister types.CanisterID, msg types.InputMessage) (*types.Response, []*types.Request) {
	return f(canister, msg)
}

// Inductor owns the queues of all canisters on one subnet, along with the
// subnet wide memory budget they share and the streams carrying their
// output to other subnets.
//
// It inducts messages into canister queues, checking the memory budget
// before every request push; executes input messages; and routes output
// messages into per subnet streams, subject to per stream limits.
type Inductor struct {
	mtx sync.Mutex

	logger   log.Logger
	metrics  *Metrics
	topology *Topology
	cfg      *config.InductionConfig
	options  []queues.Option

	canisters map[types.CanisterID]*queues.CanisterQueues
	// Canister ids in ascending order, for deterministic iteration.
	ids []types.CanisterID

	// Sum of MemoryUsage over all canister queues.
	memoryUsage int64

	// Outbound streams, by destination subnet.
	streams map[string]*Stream

	height int64
	events []Event
}

// NewInductor returns an Inductor for the own subnet of topology. Canister
// queues it creates are configured with options.
func NewInductor(
	logger log.Logger,
	topology *Topology,
	cfg *config.InductionConfig,
	metrics *Metrics,
	options ...queues.Option,
) *Inductor {
	in := &Inductor{
		logger:    logger.With("subnet", topology.OwnSubnet()),
		metrics:   metrics,
		topology:  topology,
		cfg:       cfg,
		options:   options,
		canisters: make(map[types.CanisterID]*queues.CanisterQueues),
		streams:   make(map[string]*Stream),
	}
	in.metrics.AvailableMemory.Set(float64(in.availableMemory()))
	return in
}

// AddCanister creates empty queues for a new canister hosted by the subnet.
func (in *Inductor) AddCanister(canisterID types.CanisterID) error {
	return in.RestoreCanister(canisterID, queues.NewCanisterQueues(in.options...))
}

// RestoreCanister adds a canister with existing queues, e.g. loaded from a
// snapshot.
func (in *Inductor) RestoreCanister(canisterID types.CanisterID, cq *queues.CanisterQueues) error {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	if _, ok := in.canisters[canisterID]; ok {
		return fmt.Errorf("%w: %v", ErrCanisterExists, canisterID)
	}
	in.canisters[canisterID] = cq
	i := sort.Search(len(in.ids), func(i int) bool { return in.ids[i] >= canisterID })
	in.ids = append(in.ids, 0)
	copy(in.ids[i+1:], in.ids[i:])
	in.ids[i] = canisterID

	in.topology.Assign(canisterID, in.topology.OwnSubnet())
	in.memoryUsage += int64(cq.MemoryUsage())
	in.updateMemoryMetrics()
	return nil
}

// Canisters returns the ids of the canisters hosted by the subnet, in
// ascending order.
func (in *Inductor) Canisters() []types.CanisterID {
	in.mtx.Lock()
	defer in.mtx.Unlock()
	return append([]types.CanisterID(nil), in.ids...)
}

// Queues returns the queues of canisterID. The caller must not mutate them
// while the Inductor is in use.
func (in *Inductor) Queues(canisterID types.CanisterID) (*queues.CanisterQueues, bool) {
	in.mtx.Lock()
	defer in.mtx.Unlock()
	cq, ok := in.canisters[canisterID]
	return cq, ok
}

// AvailableMemory returns the memory left to canister queues on the subnet.
// It may be negative: responses are never vetoed.
func (in *Inductor) AvailableMemory() int64 {
	in.mtx.Lock()
	defer in.mtx.Unlock()
	return in.availableMemory()
}

// BeginHeight starts recording events for height.
func (in *Inductor) BeginHeight(height int64) {
	in.mtx.Lock()
	defer in.mtx.Unlock()
	in.height = height
	in.events = in.events[:0]
}

// InductIngress pushes an ingress message into the queues of its receiver.
func (in *Inductor) InductIngress(msg *types.Ingress) error {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	cq, ok := in.canisters[msg.Receiver]
	if !ok {
		err := fmt.Errorf("%w: %v", ErrCanisterNotFound, msg.Receiver)
		in.recordRejection(msg, msg.Receiver, 0, err)
		return err
	}
	cq.PushIngress(msg)

	in.metrics.InductedMessages.With("kind", "ingress").Add(1)
	in.metrics.MessageSizeBytes.Observe(float64(msg.CountBytes()))
	in.events = append(in.events, Event{
		Kind:        EventInducted,
		MessageKind: "ingress",
		Canister:    msg.Receiver,
		SizeBytes:   msg.CountBytes(),
	})
	return nil
}

// InductMessage pushes a canister message into the queues of its receiver.
//
// Requests are only pushed if the subnet has enough memory for them (see
// queues.CanPush); otherwise a *queues.NotEnoughMemoryError is returned.
// Push errors, notably *types.QueueFullError, are passed through.
func (in *Inductor) InductMessage(msg types.RequestOrResponse) error {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	err := in.inductMessage(msg)
	if err != nil {
		in.recordRejection(msg, msg.Dst(), msg.Src(), err)
	}
	return err
}

func (in *Inductor) inductMessage(msg types.RequestOrResponse) error {
	cq, ok := in.canisters[msg.Dst()]
	if !ok {
		return fmt.Errorf("%w: %v", ErrCanisterNotFound, msg.Dst())
	}
	if err := queues.CanPush(msg, in.availableMemory()); err != nil {
		return err
	}

	var err error
	in.track(cq, func() {
		err = cq.PushInput(msg, in.topology.Classify(msg.Src()))
	})
	if err != nil {
		return err
	}

	kind := messageKind(msg)
	in.metrics.InductedMessages.With("kind", kind).Add(1)
	in.metrics.MessageSizeBytes.Observe(float64(msg.CountBytes()))
	in.events = append(in.events, Event{
		Kind:        EventInducted,
		MessageKind: kind,
		Canister:    msg.Dst(),
		Peer:        msg.Src(),
		SizeBytes:   msg.CountBytes(),
	})
	return nil
}

// Execute pops and executes up to maxMessages input messages of canisterID
// (all of them if maxMessages <= 0) and pushes the resulting replies and
// calls onto its output queues. Calls that do not fit, in the output queues
// or the memory budget, are dropped and recorded as rejected.
//
// Returns the number of messages executed.
func (in *Inductor) Execute(canisterID types.CanisterID, handler Handler, maxMessages int) (int, error) {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	cq, ok := in.canisters[canisterID]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrCanisterNotFound, canisterID)
	}

	executed := 0
	for maxMessages <= 0 || executed < maxMessages {
		var (
			msg types.InputMessage
			ok  bool
		)
		in.track(cq, func() { msg, ok = cq.PopInput() })
		if !ok {
			break
		}
		executed++

		reply, calls := handler.Execute(canisterID, msg)
		if req, isRequest := msg.(*types.Request); isRequest {
			if reply == nil {
				reply = RejectResponse(req, types.RejectCodeCanisterError, "canister did not reply")
			}
			reply.Originator = req.Sender
			reply.Respondent = req.Receiver
			reply.OriginatorReplyCallback = req.SenderReplyCallback
			in.track(cq, func() { cq.PushOutputResponse(reply) })
		}
		for _, call := range calls {
			call.Sender = canisterID
			in.pushOutputRequest(cq, call)
		}

		in.events = append(in.events, Event{
			Kind:        EventExecuted,
			MessageKind: messageKind(msg),
			Canister:    canisterID,
			SizeBytes:   msg.CountBytes(),
		})
	}

	in.metrics.ExecutedMessages.Add(float64(executed))
	in.updateMemoryMetrics()
	return executed, nil
}

func (in *Inductor) pushOutputRequest(cq *queues.CanisterQueues, req *types.Request) {
	err := queues.CanPush(req, in.availableMemory())
	if err == nil {
		in.track(cq, func() { err = cq.PushOutputRequest(req) })
	}
	if err != nil {
		in.logger.Debug("dropping outgoing call", "sender", req.Sender, "receiver", req.Receiver, "err", err)
		in.recordRejection(req, req.Sender, req.Receiver, err)
	}
}

// QueueStats returns the queue stats of every canister, in ascending
// canister order.
func (in *Inductor) QueueStats() []QueueStats {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	stats := make([]QueueStats, 0, len(in.ids))
	for _, id := range in.ids {
		cq := in.canisters[id]
		stats = append(stats, QueueStats{
			Canister:       id,
			IngressCount:   cq.IngressQueueMessageCount(),
			InputMessages:  cq.InputQueuesMessageCount(),
			OutputMessages: cq.OutputQueuesMessageCount(),
			ReservedSlots:  cq.ReservedSlots(),
			MemoryUsage:    cq.MemoryUsage(),
		})
	}
	return stats
}

// FlushEvents hands the events recorded since BeginHeight, and the current
// queue stats, to sink.
func (in *Inductor) FlushEvents(sink EventSink) error {
	stats := in.QueueStats()

	in.mtx.Lock()
	defer in.mtx.Unlock()

	subnet := in.topology.OwnSubnet()
	if err := sink.IndexEvents(subnet, in.height, in.events); err != nil {
		return fmt.Errorf("indexing events of height %d: %w", in.height, err)
	}
	if err := sink.IndexQueueStats(subnet, in.height, stats); err != nil {
		return fmt.Errorf("indexing queue stats of height %d: %w", in.height, err)
	}
	in.events = in.events[:0]
	return nil
}

// RejectResponse returns a reject response to req.
func RejectResponse(req *types.Request, code types.RejectCode, message string) *types.Response {
	return &types.Response{
		Originator:              req.Sender,
		Respondent:              req.Receiver,
		OriginatorReplyCallback: req.SenderReplyCallback,
		Refund:                  req.Payment,
		RejectCode:              code,
		RejectMessage:           message,
	}
}

// track runs f, which may mutate cq, and accounts for the change in memory
// usage.
func (in *Inductor) track(cq *queues.CanisterQueues, f func()) {
	before := cq.MemoryUsage()
	f()
	in.memoryUsage += int64(cq.MemoryUsage() - before)
}

func (in *Inductor) availableMemory() int64 {
	return in.cfg.SubnetMessageMemory - in.memoryUsage
}

func (in *Inductor) updateMemoryMetrics() {
	in.metrics.AvailableMemory.Set(float64(in.availableMemory()))
	in.metrics.MemoryUsage.Set(float64(in.memoryUsage))
}

func (in *Inductor) recordRejection(msg types.InputMessage, canister, peer types.CanisterID, err error) {
	reason := rejectReason(err)
	in.metrics.RejectedMessages.With("reason", reason).Add(1)
	in.events = append(in.events, Event{
		Kind:        EventRejected,
		MessageKind: messageKind(msg),
		Canister:    canister,
		Peer:        peer,
		SizeBytes:   msg.CountBytes(),
		Reason:      reason,
	})
}

func rejectReason(err error) string {
	var (
		queueFull *types.QueueFullError
		noMemory  *queues.NotEnoughMemoryError
	)
	switch {
	case errors.As(err, &queueFull):
		return "queue_full"
	case errors.As(err, &noMemory):
		return "out_of_memory"
	case errors.Is(err, ErrCanisterNotFound):
		return "unknown_canister"
	default:
		return "other"
	}
}

// rejectCode returns the code of the reject response to a request that
// could not be inducted because of err.
func rejectCode(err error) types.RejectCode {
	if errors.Is(err, ErrCanisterNotFound) {
		return types.RejectCodeDestinationInvalid
	}
	return types.RejectCodeSysTransient
}
