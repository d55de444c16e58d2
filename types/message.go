package types

import "fmt"

const (
	// requestHeaderBytes is the fixed size of a request excluding its method
	// name and payload.
	requestHeaderBytes = 64
	// responseHeaderBytes is the fixed size of a response excluding its
	// payload.
	responseHeaderBytes = 48
)

const (
	// MaxInterCanisterPayloadBytes is the largest payload a response may carry.
	MaxInterCanisterPayloadBytes = 2 * 1024 * 1024

	// MaxResponseCountBytes is the largest byte size of any response. This is
	// the amount of memory set aside for every outstanding request.
	MaxResponseCountBytes = responseHeaderBytes + MaxInterCanisterPayloadBytes
)

// CallbackID correlates a response with the call context that issued the
// matching request.
type CallbackID uint64

// RejectCode classifies a reject response. Zero means the response carries a
// reply rather than a reject.
type RejectCode int32

const (
	RejectCodeNone RejectCode = iota
	RejectCodeSysFatal
	RejectCodeSysTransient
	RejectCodeDestinationInvalid
	RejectCodeCanisterReject
	RejectCodeCanisterError
)

// InputMessage is anything a canister can pick up for execution: an ingress
// message, a request or a response.
type InputMessage interface {
	// CountBytes returns the number of bytes the message accounts for.
	CountBytes() int

	inputMessage()
}

// RequestOrResponse is a canister-to-canister message.
type RequestOrResponse interface {
	InputMessage

	// Src returns the canister that produced the message.
	Src() CanisterID
	// Dst returns the canister the message is addressed to.
	Dst() CanisterID
	// Cycles returns the cycles carried by the message.
	Cycles() Cycles

	requestOrResponse()
}

// Request is a canister-to-canister call.
type Request struct {
	Receiver            CanisterID
	Sender              CanisterID
	SenderReplyCallback CallbackID
	Payment             Cycles
	MethodName          string
	MethodPayload       []byte
}

var (
	_ RequestOrResponse = (*Request)(nil)
	_ RequestOrResponse = (*Response)(nil)
)

func (r *Request) Src() CanisterID { return r.Sender }
func (r *Request) Dst() CanisterID { return r.Receiver }
func (r *Request) Cycles() Cycles  { return r.Payment }

// CountBytes returns the byte size of the request.
func (r *Request) CountBytes() int {
	return requestHeaderBytes + len(r.MethodName) + len(r.MethodPayload)
}

func (r *Request) String() string {
	return fmt.Sprintf("Request{%v->%v %s, %d bytes, %v}",
		r.Sender, r.Receiver, r.MethodName, r.CountBytes(), r.Payment)
}

func (*Request) inputMessage()      {}
func (*Request) requestOrResponse() {}

// Response is the reply (or reject) to a previously issued request. It travels
// from the respondent back to the originator of the request.
type Response struct {
	Originator              CanisterID
	Respondent              CanisterID
	OriginatorReplyCallback CallbackID
	Refund                  Cycles
	Data                    []byte
	RejectCode              RejectCode
	RejectMessage           string
}

func (r *Response) Src() CanisterID { return r.Respondent }
func (r *Response) Dst() CanisterID { return r.Originator }
func (r *Response) Cycles() Cycles  { return r.Refund }

// IsReject returns true if the response rejects the request.
func (r *Response) IsReject() bool {
	return r.RejectCode != RejectCodeNone
}

// CountBytes returns the byte size of the response.
func (r *Response) CountBytes() int {
	return responseHeaderBytes + len(r.Data) + len(r.RejectMessage)
}

func (r *Response) String() string {
	return fmt.Sprintf("Response{%v->%v cb=%d, %d bytes, %v}",
		r.Respondent, r.Originator, r.OriginatorReplyCallback, r.CountBytes(), r.Refund)
}

func (*Response) inputMessage()      {}
func (*Response) requestOrResponse() {}
