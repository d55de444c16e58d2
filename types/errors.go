package types

import "fmt"

// QueueFullError is returned when a push would violate a queue's capacity,
// counting both enqueued messages and reserved response slots. A push that
// fails with QueueFullError has no effect: the message is not retained and
// the queues are left untouched.
type QueueFullError struct {
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("maximum queue capacity %d reached", e.Capacity)
}
