package queues

import "github.com/replicanet/induction/types"

type queueOp int

const (
	opPush queueOp = iota
	opPop
)

// InputQueuesStats are running message count and byte size stats across
// input queues.
//
// They are kept apart from memoryUsageStats so that a delta only ever
// carries the fields a single queue kind affects.
type InputQueuesStats struct {
	// Count of messages in input queues.
	MessageCount int
	// Count of responses in input queues.
	ResponseCount int
	// Count of reservations in input queues. Signed, because a delta may be
	// negative.
	ReservedSlots int
	// Byte size of input queues (queues plus messages).
	SizeBytes int
	// Total cycles carried by messages in input queues.
	Cycles types.Cycles
}

// inputQueuesStatsDelta returns the change in input queue stats caused by
// pushing (+) or popping (-) msg.
func inputQueuesStatsDelta(op queueOp, msg types.RequestOrResponse) InputQueuesStats {
	delta := InputQueuesStats{
		MessageCount: 1,
		SizeBytes:    msg.CountBytes(),
		Cycles:       msg.Cycles(),
	}
	if _, ok := msg.(*types.Response); ok {
		delta.ResponseCount = 1
		// Pushing a response consumes a reservation.
		if op == opPush {
			delta.ReservedSlots = -1
		}
	}
	return delta
}

func (s *InputQueuesStats) add(d InputQueuesStats) {
	s.MessageCount += d.MessageCount
	s.ResponseCount += d.ResponseCount
	s.ReservedSlots += d.ReservedSlots
	s.SizeBytes += d.SizeBytes
	s.Cycles += d.Cycles
}

func (s *InputQueuesStats) sub(d InputQueuesStats) {
	s.MessageCount -= d.MessageCount
	s.ResponseCount -= d.ResponseCount
	s.ReservedSlots -= d.ReservedSlots
	s.SizeBytes -= d.SizeBytes
	s.Cycles -= d.Cycles
}

// OutputQueuesStats are running stats across output queues.
type OutputQueuesStats struct {
	// Count of messages in output queues.
	MessageCount int
	// Total cycles carried by messages in output queues.
	Cycles types.Cycles
}

func outputQueuesStatsDelta(msg types.RequestOrResponse) OutputQueuesStats {
	return OutputQueuesStats{
		MessageCount: 1,
		Cycles:       msg.Cycles(),
	}
}

func (s *OutputQueuesStats) add(d OutputQueuesStats) {
	s.MessageCount += d.MessageCount
	s.Cycles += d.Cycles
}

func (s *OutputQueuesStats) sub(d OutputQueuesStats) {
	s.MessageCount -= d.MessageCount
	s.Cycles -= d.Cycles
}

// memoryUsageStats are running memory utilization stats across input and
// output queues.
//
// Memory taken by responses already routed into streams is tracked by the
// owner of the streams and only mirrored here, in the transient field.
type memoryUsageStats struct {
	// Byte size of every response across input and output queues.
	responsesSizeBytes int

	// Reserved slots across input and output queues. Equal to the number of
	// outstanding requests (across queues and streams); each accounts for
	// types.MaxResponseCountBytes.
	reservedSlots int64

	// Bytes above types.MaxResponseCountBytes, summed over oversized requests.
	oversizedRequestsExtraBytes int

	// Transient: byte size of responses routed from output queues into
	// streams and not yet garbage collected. Not affected by push or pop.
	transientStreamResponsesSizeBytes int
}

// memoryUsage returns the memory usage in bytes computed from the stats.
func (s *memoryUsageStats) memoryUsage() int {
	return s.responsesSizeBytes +
		int(s.reservedSlots)*types.MaxResponseCountBytes +
		s.oversizedRequestsExtraBytes +
		s.transientStreamResponsesSizeBytes
}

func memoryUsageStatsDelta(op queueOp, msg types.RequestOrResponse) memoryUsageStats {
	switch m := msg.(type) {
	case *types.Request:
		return requestMemoryUsageStatsDelta(op, m)
	case *types.Response:
		return responseMemoryUsageStatsDelta(op, m)
	}
	return memoryUsageStats{}
}

// requestMemoryUsageStatsDelta returns the change in stats caused by pushing
// (+) or popping (-) a request. Pushing a request reserves a slot for its
// response.
func requestMemoryUsageStatsDelta(op queueOp, req *types.Request) memoryUsageStats {
	delta := memoryUsageStats{
		oversizedRequestsExtraBytes: oversizedExtraBytes(req),
	}
	if op == opPush {
		delta.reservedSlots = 1
	}
	return delta
}

// responseMemoryUsageStatsDelta returns the change in stats caused by pushing
// (+) or popping (-) a response. Pushing a response consumes a reservation.
func responseMemoryUsageStatsDelta(op queueOp, rep *types.Response) memoryUsageStats {
	delta := memoryUsageStats{
		responsesSizeBytes: rep.CountBytes(),
	}
	if op == opPush {
		delta.reservedSlots = -1
	}
	return delta
}

func (s *memoryUsageStats) add(d memoryUsageStats) {
	s.responsesSizeBytes += d.responsesSizeBytes
	s.reservedSlots += d.reservedSlots
	s.oversizedRequestsExtraBytes += d.oversizedRequestsExtraBytes
	if s.reservedSlots < 0 {
		panic("negative reserved slots in memory usage stats")
	}
}

func (s *memoryUsageStats) sub(d memoryUsageStats) {
	s.responsesSizeBytes -= d.responsesSizeBytes
	s.reservedSlots -= d.reservedSlots
	s.oversizedRequestsExtraBytes -= d.oversizedRequestsExtraBytes
	if s.reservedSlots < 0 {
		panic("negative reserved slots in memory usage stats")
	}
}

// equal compares everything but the transient stream responses size.
func (s memoryUsageStats) equal(o memoryUsageStats) bool {
	return s.responsesSizeBytes == o.responsesSizeBytes &&
		s.reservedSlots == o.reservedSlots &&
		s.oversizedRequestsExtraBytes == o.oversizedRequestsExtraBytes
}

// oversizedExtraBytes returns max(0, CountBytes - MaxResponseCountBytes) for
// requests and 0 for responses.
func oversizedExtraBytes(msg types.RequestOrResponse) int {
	if _, ok := msg.(*types.Request); !ok {
		return 0
	}
	if extra := msg.CountBytes() - types.MaxResponseCountBytes; extra > 0 {
		return extra
	}
	return 0
}

func responseSizeBytes(msg types.RequestOrResponse) int {
	if _, ok := msg.(*types.Response); ok {
		return msg.CountBytes()
	}
	return 0
}

func responseCount(msg types.RequestOrResponse) int {
	if _, ok := msg.(*types.Response); ok {
		return 1
	}
	return 0
}
