package types

import (
	"fmt"
	"strconv"
)

// CanisterID identifies an execution unit. IDs are totally ordered by their
// numeric value, which is the canonical iteration order everywhere a set of
// canisters is traversed.
type CanisterID uint64

// String implements fmt.Stringer.
func (id CanisterID) String() string {
	return "canister-" + strconv.FormatUint(uint64(id), 10)
}

// Cycles is an amount of cycles attached to a message, either as payment
// (requests) or as refund (responses).
type Cycles uint64

func (c Cycles) String() string {
	return fmt.Sprintf("%d cycles", uint64(c))
}

// QueueIndex is the position of a message within a queue. Indices of messages
// leaving an output queue are strictly sequential.
type QueueIndex uint64

// QueueIndexNone is the index used for messages that were not inducted from a
// stream, e.g. messages inducted from a canister's own output queue.
const QueueIndexNone = QueueIndex(1<<64 - 1)

// SessionID is reserved for multiplexing several queues between the same pair
// of canisters. Only session 0 is ever used.
type SessionID uint64

// QueueID identifies a directed queue between two canisters.
type QueueID struct {
	SrcCanister CanisterID
	DstCanister CanisterID
	SessionID   SessionID
}

func (q QueueID) String() string {
	return fmt.Sprintf("QueueID{%v->%v/%d}", q.SrcCanister, q.DstCanister, q.SessionID)
}
