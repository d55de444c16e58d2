package workload

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mroth/weightedrand"

	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/types"
)

// Generator produces the traffic of one subnet: ingress messages, and the
// behavior of the subnet's canisters when executing messages.
//
// A Generator is deterministic given the manifest and subnet. It is not safe
// for concurrent use; use one per subnet.
type Generator struct {
	manifest Manifest
	subnet   string
	r        *rand.Rand
	actions  *weightedrand.Chooser

	local   []types.CanisterID
	remote  []types.CanisterID
	unknown types.CanisterID

	nextCallback types.CallbackID
}

var _ induction.Handler = (*Generator)(nil)

// NewGenerator returns the traffic generator of subnet.
func NewGenerator(m Manifest, subnet string) (*Generator, error) {
	names := m.SubnetNames()
	i := sort.SearchStrings(names, subnet)
	if i == len(names) || names[i] != subnet {
		return nil, fmt.Errorf("subnet %q not in manifest", subnet)
	}

	// Sort action names so that choices do not depend on map order.
	actionNames := make([]string, 0, len(m.Actions))
	for action := range m.Actions {
		actionNames = append(actionNames, action)
	}
	sort.Strings(actionNames)
	choices := make([]weightedrand.Choice, 0, len(actionNames))
	for _, action := range actionNames {
		choices = append(choices, weightedrand.NewChoice(action, m.Actions[action]))
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("invalid actions: %w", err)
	}

	g := &Generator{
		manifest: m,
		subnet:   subnet,
		r:        rand.New(rand.NewSource(m.Seed + int64(i))), // nolint:gosec
		actions:  chooser,
	}
	topo := m.Topology()
	for _, name := range names {
		ids := topo.Canisters(name)
		if name == subnet {
			g.local = ids
		} else {
			g.remote = append(g.remote, ids...)
		}
		for _, id := range ids {
			if id >= g.unknown {
				g.unknown = id + 1
			}
		}
	}
	return g, nil
}

// Subnet returns the subnet the generator produces traffic for.
func (g *Generator) Subnet() string { return g.subnet }

// Ingress returns the ingress messages submitted to the subnet in round.
func (g *Generator) Ingress(round int) []*types.Ingress {
	msgs := make([]*types.Ingress, 0, g.manifest.IngressPerRound)
	for i := 0; i < g.manifest.IngressPerRound; i++ {
		id, err := uuid.NewRandomFromReader(g.r)
		if err != nil {
			// rand.Rand never fails to read.
			panic(err)
		}
		msgs = append(msgs, &types.Ingress{
			Source:        types.UserID(fmt.Sprintf("user-%d", g.r.Intn(100))),
			Receiver:      g.pick(g.local),
			MethodName:    "ingress",
			MethodPayload: g.payload(),
			MessageID:     id.String(),
			ExpiryTime:    time.Unix(int64(round), 0).Add(5 * time.Minute).UTC(),
		})
	}
	return msgs
}

// Execute implements induction.Handler. Ingress messages trigger an action
// chosen by weight; requests are replied to, unless randomly left
// unanswered; responses are consumed.
func (g *Generator) Execute(canister types.CanisterID, msg types.InputMessage) (*types.Response, []*types.Request) {
	switch msg.(type) {
	case *types.Ingress:
		return nil, g.calls(g.actions.PickSource(g.r).(string))
	case *types.Request:
		if g.r.Float64() < g.manifest.RejectRate {
			return nil, nil
		}
		return &types.Response{Data: g.payload()}, nil
	default:
		return nil, nil
	}
}

func (g *Generator) calls(action string) []*types.Request {
	var receivers []types.CanisterID
	switch action {
	case ActionCallLocal:
		receivers = g.local
	case ActionCallRemote:
		receivers = g.remote
	case ActionCallUnknown:
		receivers = []types.CanisterID{g.unknown}
	}
	if len(receivers) == 0 {
		return nil
	}

	n := 1 + g.r.Intn(g.manifest.MaxCalls)
	calls := make([]*types.Request, 0, n)
	for i := 0; i < n; i++ {
		g.nextCallback++
		calls = append(calls, &types.Request{
			Receiver:            g.pick(receivers),
			SenderReplyCallback: g.nextCallback,
			Payment:             types.Cycles(g.r.Intn(1000)),
			MethodName:          "call",
			MethodPayload:       g.payload(),
		})
	}
	return calls
}

func (g *Generator) pick(ids []types.CanisterID) types.CanisterID {
	return ids[g.r.Intn(len(ids))]
}

func (g *Generator) payload() []byte {
	if g.manifest.MaxPayloadBytes == 0 {
		return nil
	}
	bz := make([]byte, g.r.Intn(g.manifest.MaxPayloadBytes+1))
	_, _ = g.r.Read(bz)
	return bz
}
