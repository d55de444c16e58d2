package workload

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/types"
)

// Actions a canister may take when executing an ingress message.
const (
	// ActionReply does nothing beyond replying.
	ActionReply = "reply"
	// ActionCallLocal calls canisters on the same subnet.
	ActionCallLocal = "call_local"
	// ActionCallRemote calls canisters on other subnets.
	ActionCallRemote = "call_remote"
	// ActionCallUnknown calls a canister no subnet hosts.
	ActionCallUnknown = "call_unknown"
)

// Manifest represents a TOML workload manifest.
type Manifest struct {
	// Seed seeds every random choice of the workload. Runs of the same
	// manifest are identical.
	Seed int64 `toml:"seed"`

	// Rounds is the number of rounds to simulate. Defaults to 100.
	Rounds int `toml:"rounds"`

	// Subnets specifies the subnets and the canisters they host. At least
	// one subnet must be given. Canister ids are assigned sequentially from
	// 1, across subnets in name order:
	//
	// [subnet.alpha]
	// canisters = 4
	Subnets map[string]*ManifestSubnet `toml:"subnet"`

	// IngressPerRound is the number of ingress messages submitted to each
	// subnet per round, to random canisters.
	IngressPerRound int `toml:"ingress_per_round"`

	// ExecutePerRound bounds the number of input messages each canister
	// executes per round. 0 executes everything.
	ExecutePerRound int `toml:"execute_per_round"`

	// MaxCalls is the maximum number of calls made by a single call action.
	// Defaults to 1.
	MaxCalls int `toml:"max_calls"`

	// MaxPayloadBytes bounds the payload of generated requests and replies.
	MaxPayloadBytes int `toml:"max_payload_bytes"`

	// RejectRate is the share of requests (0-1) canisters leave unanswered,
	// which turns into a reject.
	RejectRate float64 `toml:"reject_rate"`

	// Actions weighs what canisters do when executing an ingress message:
	//
	// [actions]
	// reply = 1
	// call_local = 2
	// call_remote = 2
	//
	// Defaults to calling local and remote canisters with equal weight.
	Actions map[string]uint `toml:"actions"`

	// RetainSnapshots is the number of most recent queue snapshots kept per
	// canister when snapshots are stored. 0 keeps all of them.
	RetainSnapshots int64 `toml:"retain_snapshots"`
}

// ManifestSubnet represents a subnet in a workload manifest.
type ManifestSubnet struct {
	// Canisters is the number of canisters the subnet hosts.
	Canisters int `toml:"canisters"`
}

// Save saves the workload manifest to a file.
func (m Manifest) Save(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create manifest file %q: %w", file, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(m)
}

// LoadManifest loads a workload manifest from a file and fills in defaults.
func LoadManifest(file string) (Manifest, error) {
	manifest := Manifest{}
	_, err := toml.DecodeFile(file, &manifest)
	if err != nil {
		return manifest, fmt.Errorf("failed to load workload manifest %q: %w", file, err)
	}
	manifest.setDefaults()
	return manifest, manifest.Validate()
}

// DecodeManifest decodes a workload manifest from TOML data and fills in
// defaults.
func DecodeManifest(data string) (Manifest, error) {
	manifest := Manifest{}
	if _, err := toml.Decode(data, &manifest); err != nil {
		return manifest, fmt.Errorf("failed to decode workload manifest: %w", err)
	}
	manifest.setDefaults()
	return manifest, manifest.Validate()
}

func (m *Manifest) setDefaults() {
	if m.Rounds == 0 {
		m.Rounds = 100
	}
	if m.MaxCalls == 0 {
		m.MaxCalls = 1
	}
	if len(m.Actions) == 0 {
		m.Actions = map[string]uint{ActionCallLocal: 1, ActionCallRemote: 1}
	}
}

// Validate checks the manifest for errors.
func (m Manifest) Validate() error {
	if len(m.Subnets) == 0 {
		return errors.New("no subnets specified")
	}
	for name, subnet := range m.Subnets {
		if name == "" {
			return errors.New("subnet name can't be empty")
		}
		if subnet == nil || subnet.Canisters <= 0 {
			return fmt.Errorf("subnet %q must host at least one canister", name)
		}
	}
	if m.Rounds < 0 {
		return errors.New("rounds can't be negative")
	}
	if m.IngressPerRound < 0 || m.ExecutePerRound < 0 || m.MaxCalls < 0 || m.MaxPayloadBytes < 0 {
		return errors.New("per round limits can't be negative")
	}
	if m.RetainSnapshots < 0 {
		return errors.New("retain_snapshots can't be negative")
	}
	if m.RejectRate < 0 || m.RejectRate > 1 {
		return fmt.Errorf("reject_rate must be between 0 and 1, got %v", m.RejectRate)
	}
	var total uint
	for action, weight := range m.Actions {
		switch action {
		case ActionReply, ActionCallLocal, ActionCallRemote, ActionCallUnknown:
		default:
			return fmt.Errorf("unknown action %q", action)
		}
		total += weight
	}
	if total == 0 {
		return errors.New("actions must have a positive total weight")
	}
	return nil
}

// SubnetNames returns the names of the subnets in ascending order.
func (m Manifest) SubnetNames() []string {
	names := make([]string, 0, len(m.Subnets))
	for name := range m.Subnets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Topology returns the canister placement of the manifest, as seen from no
// subnet in particular; see induction.Topology.WithOwnSubnet.
func (m Manifest) Topology() *induction.Topology {
	topo := induction.NewTopology("")
	next := types.CanisterID(1)
	for _, name := range m.SubnetNames() {
		for i := 0; i < m.Subnets[name].Canisters; i++ {
			topo.Assign(next, name)
			next++
		}
	}
	return topo
}
