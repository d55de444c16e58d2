package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAccessors(t *testing.T) {
	req := &Request{
		Receiver:      2,
		Sender:        1,
		Payment:       17,
		MethodName:    "transfer",
		MethodPayload: make([]byte, 100),
	}
	assert.Equal(t, CanisterID(1), req.Src())
	assert.Equal(t, CanisterID(2), req.Dst())
	assert.Equal(t, Cycles(17), req.Cycles())
	assert.Equal(t, requestHeaderBytes+len("transfer")+100, req.CountBytes())
	assert.Equal(t, "Request{canister-1->canister-2 transfer, 172 bytes, 17 cycles}", req.String())
}

func TestResponseAccessors(t *testing.T) {
	rep := &Response{
		Originator:              1,
		Respondent:              2,
		OriginatorReplyCallback: 9,
		Refund:                  3,
		Data:                    []byte("ok"),
	}
	assert.Equal(t, CanisterID(2), rep.Src())
	assert.Equal(t, CanisterID(1), rep.Dst())
	assert.Equal(t, Cycles(3), rep.Cycles())
	assert.False(t, rep.IsReject())
	assert.Equal(t, responseHeaderBytes+2, rep.CountBytes())
	assert.Equal(t, "Response{canister-2->canister-1 cb=9, 50 bytes, 3 cycles}", rep.String())

	rej := &Response{RejectCode: RejectCodeDestinationInvalid, RejectMessage: "gone"}
	assert.True(t, rej.IsReject())
	assert.Equal(t, responseHeaderBytes+4, rej.CountBytes())
}

func TestMaxResponseCountBytes(t *testing.T) {
	rep := &Response{Data: make([]byte, MaxInterCanisterPayloadBytes)}
	require.Equal(t, MaxResponseCountBytes, rep.CountBytes())
}

func TestIngressCountBytes(t *testing.T) {
	in := &Ingress{
		Source:        "user",
		Receiver:      5,
		MethodName:    "go",
		MethodPayload: []byte{1, 2, 3},
		MessageID:     "id",
		ExpiryTime:    time.Unix(0, 0),
	}
	assert.Equal(t, ingressHeaderBytes+4+2+3+2, in.CountBytes())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "canister-42", CanisterID(42).String())
	assert.Equal(t, "QueueID{canister-1->canister-2/0}", QueueID{SrcCanister: 1, DstCanister: 2}.String())

	var err error = &QueueFullError{Capacity: 500}
	assert.EqualError(t, err, "maximum queue capacity 500 reached")
}
