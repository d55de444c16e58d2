package queues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replicanet/induction/types"
)

func TestMemoryRequiredToPushRequest(t *testing.T) {
	small := makeRequest(1, 2, 10)
	assert.Equal(t, types.MaxResponseCountBytes, MemoryRequiredToPushRequest(small))

	big := makeRequest(1, 2, types.MaxResponseCountBytes)
	assert.Equal(t, big.CountBytes(), MemoryRequiredToPushRequest(big))
	assert.Greater(t, big.CountBytes(), types.MaxResponseCountBytes)
}

func TestCanPush(t *testing.T) {
	req := makeRequest(1, 2, 10)

	assert.NoError(t, CanPush(req, int64(types.MaxResponseCountBytes)))

	err := CanPush(req, int64(types.MaxResponseCountBytes-1))
	var nem *NotEnoughMemoryError
	require.ErrorAs(t, err, &nem)
	assert.Equal(t, types.MaxResponseCountBytes, nem.Required)
	assert.Equal(t, int64(types.MaxResponseCountBytes-1), nem.Available)

	// Responses are never vetoed, even with memory overcommitted.
	assert.NoError(t, CanPush(makeResponse(2, 1, 10), -1))
}

func TestMemoryUsageMatchesRequiredMemory(t *testing.T) {
	cq := newTestQueues()
	const a = types.CanisterID(1)

	for _, size := range []int{0, 1000, types.MaxResponseCountBytes, 2 * types.MaxResponseCountBytes} {
		before := cq.MemoryUsage()
		req := makeRequest(ownID, a, size)
		require.NoError(t, cq.PushOutputRequest(req))
		assert.Equal(t, MemoryRequiredToPushRequest(req), cq.MemoryUsage()-before, "payload %d", size)
	}
}
