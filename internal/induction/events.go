package induction

import (
	"github.com/replicanet/induction/types"
)

// EventKind is what happened to a message.
type EventKind string

const (
	EventInducted EventKind = "inducted"
	EventRejected EventKind = "rejected"
	EventExecuted EventKind = "executed"
	EventRouted   EventKind = "routed"
	EventDropped  EventKind = "dropped"
)

// Event records what happened to one message at one height.
type Event struct {
	Kind EventKind
	// Request, response or ingress.
	MessageKind string
	// The canister whose queues the message went into or came out of.
	Canister types.CanisterID
	// The other end: sender of inducted messages, receiver of routed ones.
	Peer      types.CanisterID
	SizeBytes int
	// Why the message was rejected or dropped; empty otherwise.
	Reason string
}

// QueueStats is a per canister snapshot of queue stats at the end of a
// height.
type QueueStats struct {
	Canister       types.CanisterID
	IngressCount   int
	InputMessages  int
	OutputMessages int
	ReservedSlots  int
	MemoryUsage    int
}

// EventSink records induction events and queue stats, e.g. for offline
// analysis. Implementations need not be safe for concurrent use.
type EventSink interface {
	// IndexEvents records the events of a height.
	IndexEvents(subnet string, height int64, events []Event) error
	// IndexQueueStats records queue stats at the end of a height.
	IndexQueueStats(subnet string, height int64, stats []QueueStats) error
	// Stop releases the sink's resources.
	Stop() error
}

// NopEventSink discards everything.
type NopEventSink struct{}

var _ EventSink = NopEventSink{}

func (NopEventSink) IndexEvents(string, int64, []Event) error          { return nil }
func (NopEventSink) IndexQueueStats(string, int64, []QueueStats) error { return nil }
func (NopEventSink) Stop() error                                       { return nil }

func messageKind(msg types.InputMessage) string {
	switch msg.(type) {
	case *types.Request:
		return "request"
	case *types.Response:
		return "response"
	case *types.Ingress:
		return "ingress"
	default:
		return "unknown"
	}
}
