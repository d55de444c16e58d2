package induction

import (
	"fmt"

	"github.com/replicanet/induction/types"
)

// Stream is an ordered sequence of messages from one subnet to another.
type Stream struct {
	// Destination subnet.
	Subnet string

	messages  []types.RequestOrResponse
	sizeBytes int
	// Byte size of the responses routed from each local canister's output
	// queues. Rejects generated during induction are not accounted for.
	responseBytes map[types.CanisterID]int
}

func newStream(subnet string) *Stream {
	return &Stream{
		Subnet:        subnet,
		responseBytes: make(map[types.CanisterID]int),
	}
}

// NewStream returns a stream to subnet carrying msgs, e.g. received from
// another node.
func NewStream(subnet string, msgs ...types.RequestOrResponse) *Stream {
	s := newStream(subnet)
	for _, msg := range msgs {
		s.push(msg, false)
	}
	return s
}

// Messages returns the messages in the stream, in order.
func (s *Stream) Messages() []types.RequestOrResponse { return s.messages }

// Len returns the number of messages in the stream.
func (s *Stream) Len() int { return len(s.messages) }

// SizeBytes returns the byte size of the messages in the stream.
func (s *Stream) SizeBytes() int { return s.sizeBytes }

func (s *Stream) push(msg types.RequestOrResponse, fromOutputQueue bool) {
	s.messages = append(s.messages, msg)
	s.sizeBytes += msg.CountBytes()
	if _, ok := msg.(*types.Response); ok && fromOutputQueue {
		s.responseBytes[msg.Src()] += msg.CountBytes()
	}
}

func (s *Stream) String() string {
	return fmt.Sprintf("Stream{%s, %d messages, %d bytes}", s.Subnet, len(s.messages), s.sizeBytes)
}

// RouteOutputs moves messages from the output queues of all canisters into
// the streams to their destination subnets, canister by canister in
// ascending order and round robin across each canister's output queues.
//
// When a stream is at its message or byte limit, the output queue whose
// message did not fit is excluded for the rest of the canister's turn; its
// messages stay put. Requests to canisters no subnet hosts are rejected back
// to their sender; responses to them are dropped.
//
// Returns the number of messages routed.
func (in *Inductor) RouteOutputs() int {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	routed := 0
	for _, id := range in.ids {
		routed += in.routeCanisterOutputs(id)
	}
	in.updateStreamResponsesSizeBytes()

	in.metrics.RoutedMessages.Add(float64(routed))
	in.updateStreamMetrics()
	in.updateMemoryMetrics()
	return routed
}

func (in *Inductor) routeCanisterOutputs(canisterID types.CanisterID) int {
	cq := in.canisters[canisterID]

	var (
		routed  int
		invalid []*types.Request
	)
	in.track(cq, func() {
		it := cq.OutputIntoIter(canisterID)
		defer it.Close()

		for !it.IsEmpty() {
			_, _, msg, _ := it.Peek()
			subnet, ok := in.topology.SubnetOf(msg.Dst())
			if !ok {
				it.Pop()
				if req, isRequest := msg.(*types.Request); isRequest {
					invalid = append(invalid, req)
				} else {
					in.logger.Error("dropping response to unknown canister", "response", msg)
					in.recordDrop(msg, canisterID, "unknown_canister")
				}
				continue
			}

			stream := in.stream(subnet)
			if !in.hasRoom(stream) {
				excluded := it.ExcludeQueue()
				in.logger.Debug("stream full; excluding output queue",
					"canister", canisterID, "receiver", msg.Dst(), "stream", stream, "messages", excluded)
				in.metrics.ExcludedQueues.Add(1)
				continue
			}

			it.Pop()
			stream.push(msg, true)
			routed++
			in.events = append(in.events, Event{
				Kind:        EventRouted,
				MessageKind: messageKind(msg),
				Canister:    canisterID,
				Peer:        msg.Dst(),
				SizeBytes:   msg.CountBytes(),
			})
		}
	})

	for _, req := range invalid {
		reject := RejectResponse(req, types.RejectCodeDestinationInvalid,
			fmt.Sprintf("%v does not exist", req.Receiver))
		// The sender holds a reservation for the reject, so this cannot fail
		// unless the queues are corrupt.
		if err := in.inductMessage(reject); err != nil {
			panic(fmt.Sprintf("inducting reject to %v: %v", req.Sender, err))
		}
	}
	return routed
}

// TakeStream removes and returns the stream to subnet, for delivery. It
// returns an empty stream if there is nothing to deliver.
func (in *Inductor) TakeStream(subnet string) *Stream {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	s, ok := in.streams[subnet]
	if !ok {
		return newStream(subnet)
	}
	delete(in.streams, subnet)
	in.updateStreamResponsesSizeBytes()
	in.updateStreamMetrics()
	in.updateMemoryMetrics()
	return s
}

// InductStream inducts the messages of a stream received from another
// subnet. Requests that cannot be inducted are answered with a reject
// response on the stream back to their sender; responses that cannot be
// inducted are dropped.
//
// Returns the number of messages inducted.
func (in *Inductor) InductStream(s *Stream) int {
	in.mtx.Lock()
	defer in.mtx.Unlock()

	inducted := 0
	for _, msg := range s.messages {
		err := in.inductMessage(msg)
		if err == nil {
			inducted++
			continue
		}
		in.recordRejection(msg, msg.Dst(), msg.Src(), err)

		switch m := msg.(type) {
		case *types.Request:
			in.enqueueReject(RejectResponse(m, rejectCode(err), err.Error()))
		case *types.Response:
			in.logger.Error("dropping response", "response", m, "err", err)
			in.recordDrop(m, m.Dst(), rejectReason(err))
		}
	}
	in.updateStreamMetrics()
	in.updateMemoryMetrics()
	return inducted
}

// enqueueReject appends a reject to the stream towards the sender of the
// rejected request. Rejects are not subject to stream limits.
func (in *Inductor) enqueueReject(reject *types.Response) {
	subnet, ok := in.topology.SubnetOf(reject.Dst())
	if !ok {
		in.logger.Error("dropping reject to unknown canister", "reject", reject)
		in.recordDrop(reject, reject.Src(), "unknown_canister")
		return
	}
	in.stream(subnet).push(reject, false)
}

func (in *Inductor) stream(subnet string) *Stream {
	s, ok := in.streams[subnet]
	if !ok {
		s = newStream(subnet)
		in.streams[subnet] = s
	}
	return s
}

func (in *Inductor) hasRoom(s *Stream) bool {
	if in.cfg.MaxStreamMessages > 0 && s.Len() >= in.cfg.MaxStreamMessages {
		return false
	}
	if in.cfg.MaxStreamBytes > 0 && s.SizeBytes() >= in.cfg.MaxStreamBytes {
		return false
	}
	return true
}

// updateStreamResponsesSizeBytes sets, for every canister, the byte size of
// its responses sitting in streams.
func (in *Inductor) updateStreamResponsesSizeBytes() {
	sizes := make(map[types.CanisterID]int)
	for _, s := range in.streams {
		for id, n := range s.responseBytes {
			sizes[id] += n
		}
	}
	for _, id := range in.ids {
		cq := in.canisters[id]
		if cq.StreamResponsesSizeBytes() == sizes[id] {
			continue
		}
		in.track(cq, func() { cq.SetStreamResponsesSizeBytes(sizes[id]) })
	}
}

func (in *Inductor) updateStreamMetrics() {
	n := 0
	for _, s := range in.streams {
		n += s.Len()
	}
	in.metrics.StreamMessages.Set(float64(n))
}

func (in *Inductor) recordDrop(msg types.RequestOrResponse, canister types.CanisterID, reason string) {
	in.events = append(in.events, Event{
		Kind:        EventDropped,
		MessageKind: messageKind(msg),
		Canister:    canister,
		Peer:        msg.Dst(),
		SizeBytes:   msg.CountBytes(),
		Reason:      reason,
	})
}
