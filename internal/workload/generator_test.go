package workload

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/types"
)

func newTestGenerator(t *testing.T, manifest, subnet string) *Generator {
	t.Helper()
	m, err := DecodeManifest(manifest)
	require.NoError(t, err)
	g, err := NewGenerator(m, subnet)
	require.NoError(t, err)
	return g
}

func TestNewGeneratorUnknownSubnet(t *testing.T) {
	m, err := DecodeManifest(testManifest)
	require.NoError(t, err)
	_, err = NewGenerator(m, "gamma")
	assert.Error(t, err)
}

func TestGeneratorIngress(t *testing.T) {
	g := newTestGenerator(t, testManifest, "beta")

	msgs := g.Ingress(1)
	require.Len(t, msgs, 4)
	ids := make(map[string]bool)
	for _, msg := range msgs {
		assert.Contains(t, []types.CanisterID{4, 5}, msg.Receiver)
		assert.LessOrEqual(t, len(msg.MethodPayload), 128)
		assert.False(t, ids[msg.MessageID], "duplicate message id %s", msg.MessageID)
		ids[msg.MessageID] = true
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	a := newTestGenerator(t, testManifest, "alpha")
	b := newTestGenerator(t, testManifest, "alpha")

	for round := 1; round <= 5; round++ {
		ingressA, ingressB := a.Ingress(round), b.Ingress(round)
		if diff := cmp.Diff(ingressA, ingressB); diff != "" {
			t.Fatalf("ingress of round %d differs (-a +b):\n%s", round, diff)
		}
		for _, msg := range ingressA {
			_, callsA := a.Execute(msg.Receiver, msg)
			_, callsB := b.Execute(msg.Receiver, msg)
			if diff := cmp.Diff(callsA, callsB); diff != "" {
				t.Fatalf("calls of round %d differ (-a +b):\n%s", round, diff)
			}
		}
	}

	// Other subnets get other traffic.
	c := newTestGenerator(t, testManifest, "beta")
	assert.NotEqual(t, a.Ingress(6)[0].MessageID, c.Ingress(6)[0].MessageID)
}

func TestGeneratorActions(t *testing.T) {
	const subnets = `
max_calls = 2
[subnet.alpha]
canisters = 2
[subnet.beta]
canisters = 2
`
	testCases := []struct {
		action    string
		receivers []types.CanisterID
	}{
		{ActionReply, nil},
		{ActionCallLocal, []types.CanisterID{1, 2}},
		{ActionCallRemote, []types.CanisterID{3, 4}},
		{ActionCallUnknown, []types.CanisterID{5}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.action, func(t *testing.T) {
			g := newTestGenerator(t, subnets+"[actions]\n"+tc.action+" = 1\n", "alpha")

			for i := 0; i < 20; i++ {
				reply, calls := g.Execute(1, &types.Ingress{Receiver: 1})
				assert.Nil(t, reply)
				if tc.receivers == nil {
					assert.Empty(t, calls)
					continue
				}
				require.NotEmpty(t, calls)
				assert.LessOrEqual(t, len(calls), 2)
				for _, call := range calls {
					assert.Contains(t, tc.receivers, call.Receiver)
				}
			}
		})
	}
}

func TestGeneratorRepliesToRequests(t *testing.T) {
	g := newTestGenerator(t, "[subnet.alpha]\ncanisters = 1\n", "alpha")
	reply, calls := g.Execute(1, &types.Request{Sender: 1, Receiver: 1})
	assert.NotNil(t, reply)
	assert.Empty(t, calls)

	rejecting := newTestGenerator(t, "reject_rate = 1.0\n[subnet.alpha]\ncanisters = 1\n", "alpha")
	reply, _ = rejecting.Execute(1, &types.Request{Sender: 1, Receiver: 1})
	assert.Nil(t, reply)

	reply, calls = g.Execute(1, &types.Response{Originator: 1, Respondent: 1})
	assert.Nil(t, reply)
	assert.Empty(t, calls)
}
