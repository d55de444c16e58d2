package types

import (
	"fmt"
	"time"
)

// ingressHeaderBytes is the fixed size of an ingress message excluding its
// variable length fields.
const ingressHeaderBytes = 40

// UserID identifies the external principal that submitted an ingress message.
type UserID string

// Ingress is a message submitted by a user from outside the system.
type Ingress struct {
	Source        UserID
	Receiver      CanisterID
	MethodName    string
	MethodPayload []byte
	MessageID     string
	ExpiryTime    time.Time
}

var _ InputMessage = (*Ingress)(nil)

// CountBytes returns the byte size of the ingress message.
func (in *Ingress) CountBytes() int {
	return ingressHeaderBytes + len(in.Source) + len(in.MethodName) +
		len(in.MethodPayload) + len(in.MessageID)
}

func (in *Ingress) String() string {
	return fmt.Sprintf("Ingress{%s %s->%v %s}", in.MessageID, in.Source, in.Receiver, in.MethodName)
}

func (*Ingress) inputMessage() {}
