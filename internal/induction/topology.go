package induction

import (
	"fmt"
	"sort"

	"github.com/replicanet/induction/internal/state/queues"
	"github.com/replicanet/induction/types"
)

// Topology maps canisters to the subnets hosting them, as seen from one
// subnet.
type Topology struct {
	own      string
	subnetOf map[types.CanisterID]string
}

// NewTopology returns an empty topology as seen from subnet own.
func NewTopology(own string) *Topology {
	return &Topology{
		own:      own,
		subnetOf: make(map[types.CanisterID]string),
	}
}

// OwnSubnet returns the subnet the topology is seen from.
func (t *Topology) OwnSubnet() string { return t.own }

// Assign records that canisterID is hosted by subnet, replacing any earlier
// assignment.
func (t *Topology) Assign(canisterID types.CanisterID, subnet string) {
	t.subnetOf[canisterID] = subnet
}

// SubnetOf returns the subnet hosting canisterID.
func (t *Topology) SubnetOf(canisterID types.CanisterID) (string, bool) {
	subnet, ok := t.subnetOf[canisterID]
	return subnet, ok
}

// IsLocal returns true if canisterID is hosted by the own subnet.
func (t *Topology) IsLocal(canisterID types.CanisterID) bool {
	subnet, ok := t.subnetOf[canisterID]
	return ok && subnet == t.own
}

// Classify returns the input queue class of messages from sender. Senders
// the topology does not know about are treated as remote.
func (t *Topology) Classify(sender types.CanisterID) queues.InputQueueType {
	if t.IsLocal(sender) {
		return queues.LocalSubnet
	}
	return queues.RemoteSubnet
}

// Subnets returns all known subnets in ascending order.
func (t *Topology) Subnets() []string {
	seen := map[string]struct{}{t.own: {}}
	subnets := []string{t.own}
	for _, s := range t.subnetOf {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			subnets = append(subnets, s)
		}
	}
	sort.Strings(subnets)
	return subnets
}

// Canisters returns the canisters hosted by subnet in ascending order.
func (t *Topology) Canisters(subnet string) []types.CanisterID {
	var ids []types.CanisterID
	for id, s := range t.subnetOf {
		if s == subnet {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// WithOwnSubnet returns a copy of t as seen from subnet own.
func (t *Topology) WithOwnSubnet(own string) *Topology {
	c := NewTopology(own)
	for id, s := range t.subnetOf {
		c.subnetOf[id] = s
	}
	return c
}

func (t *Topology) String() string {
	return fmt.Sprintf("Topology{own: %s, canisters: %d}", t.own, len(t.subnetOf))
}
