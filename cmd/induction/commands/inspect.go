package commands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	cfg "github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/store"
	"github.com/replicanet/induction/types"
)

var inspectHeight int64

// InspectCmd prints queue snapshots saved by simulate --snapshots.
var InspectCmd = &cobra.Command{
	Use:   "inspect [canister]",
	Short: "Inspect saved canister queue snapshots",
	Long: `
	inspect prints the queue snapshots saved in the database. Without
	arguments it lists every canister with a snapshot, along with the latest
	height. Given a canister id it prints the queues of that canister at
	--height, or at the latest height.
	`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().Int64Var(&inspectHeight, "height", 0, "height of the snapshot; 0 is the latest")
}

func runInspect(cmd *cobra.Command, args []string) error {
	db, err := cfg.QueuesDB(config)
	if err != nil {
		return err
	}
	qs := store.NewQueueStore(db, config.Queues.Options()...)
	defer qs.Close()

	if len(args) == 0 {
		return listSnapshots(cmd, qs)
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid canister id %q: %w", args[0], err)
	}
	return printSnapshot(cmd, qs, types.CanisterID(id), inspectHeight)
}

func listSnapshots(cmd *cobra.Command, qs *store.QueueStore) error {
	ids, err := qs.Canisters()
	if err != nil {
		return err
	}
	for _, id := range ids {
		height, err := qs.LatestHeight(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v latest_height=%d\n", id, height)
	}
	return nil
}

func printSnapshot(cmd *cobra.Command, qs *store.QueueStore, id types.CanisterID, height int64) error {
	var err error
	if height == 0 {
		if height, err = qs.LatestHeight(id); err != nil {
			return err
		}
	}
	cq, err := qs.Load(id, height)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no snapshot of %v at height %d", id, height)
	} else if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v at height %d\n", id, height)
	fmt.Fprintf(out, "  ingress:        %d messages, %d bytes\n", cq.IngressQueueMessageCount(), cq.IngressQueueSizeBytes())
	fmt.Fprintf(out, "  input:          %d messages, %d bytes, %v\n", cq.InputQueuesMessageCount(), cq.InputQueuesSizeBytes(), cq.InputQueueCycles())
	fmt.Fprintf(out, "  output:         %d messages, %v\n", cq.OutputQueuesMessageCount(), cq.OutputQueueCycles())
	fmt.Fprintf(out, "  reserved slots: %d\n", cq.ReservedSlots())
	fmt.Fprintf(out, "  memory usage:   %d bytes\n", cq.MemoryUsage())
	slots := cq.AvailableOutputRequestSlots()
	peers := make([]types.CanisterID, 0, len(slots))
	for peer := range slots {
		peers = append(peers, peer)
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
	for _, peer := range peers {
		fmt.Fprintf(out, "  %v: %d output request slots\n", peer, slots[peer])
	}
	return nil
}
