package queues

import (
	"fmt"

	"github.com/replicanet/induction/types"
)

// NotEnoughMemoryError is returned by CanPush when pushing a request would
// take more memory than is available.
type NotEnoughMemoryError struct {
	Required  int
	Available int64
}

func (e *NotEnoughMemoryError) Error() string {
	return fmt.Sprintf("not enough memory to push request: %d bytes required, %d available",
		e.Required, e.Available)
}

// CanPush checks whether availableMemory is sufficient to push msg onto an
// input or output queue. Responses always return memory, so they are never
// vetoed.
func CanPush(msg types.RequestOrResponse, availableMemory int64) error {
	req, ok := msg.(*types.Request)
	if !ok {
		return nil
	}
	required := MemoryRequiredToPushRequest(req)
	if int64(required) > availableMemory {
		return &NotEnoughMemoryError{Required: required, Available: availableMemory}
	}
	return nil
}

// MemoryRequiredToPushRequest returns the memory required to push req onto an
// input or output queue: the larger of types.MaxResponseCountBytes (reserved
// for the response) and the byte size of req.
func MemoryRequiredToPushRequest(req *types.Request) int {
	if n := req.CountBytes(); n > types.MaxResponseCountBytes {
		return n
	}
	return types.MaxResponseCountBytes
}
