package induction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/replicanet/induction/internal/state/queues"
	"github.com/replicanet/induction/types"
)

func TestTopology(t *testing.T) {
	topo := NewTopology("subnet-a")
	topo.Assign(3, "subnet-b")
	topo.Assign(1, "subnet-a")
	topo.Assign(2, "subnet-c")
	topo.Assign(4, "subnet-b")

	assert.Equal(t, "subnet-a", topo.OwnSubnet())
	assert.Equal(t, []string{"subnet-a", "subnet-b", "subnet-c"}, topo.Subnets())
	assert.Equal(t, []types.CanisterID{3, 4}, topo.Canisters("subnet-b"))

	subnet, ok := topo.SubnetOf(2)
	assert.True(t, ok)
	assert.Equal(t, "subnet-c", subnet)
	_, ok = topo.SubnetOf(99)
	assert.False(t, ok)

	assert.True(t, topo.IsLocal(1))
	assert.False(t, topo.IsLocal(3))
	assert.False(t, topo.IsLocal(99))
}

func TestTopologyClassify(t *testing.T) {
	topo := NewTopology("subnet-a")
	topo.Assign(1, "subnet-a")
	topo.Assign(2, "subnet-b")

	assert.Equal(t, queues.LocalSubnet, topo.Classify(1))
	assert.Equal(t, queues.RemoteSubnet, topo.Classify(2))
	// Unknown senders are treated as remote.
	assert.Equal(t, queues.RemoteSubnet, topo.Classify(3))
}

func TestTopologyWithOwnSubnet(t *testing.T) {
	topo := NewTopology("")
	topo.Assign(1, "subnet-a")
	topo.Assign(2, "subnet-b")

	b := topo.WithOwnSubnet("subnet-b")
	assert.True(t, b.IsLocal(2))
	assert.False(t, b.IsLocal(1))

	// The copy is independent of the original.
	b.Assign(3, "subnet-b")
	_, ok := topo.SubnetOf(3)
	assert.False(t, ok)
}
