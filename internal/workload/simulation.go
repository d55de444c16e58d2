package workload

import (
	"context"
	"fmt"

	"github.com/creachadair/taskgroup"

	"github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/internal/store"
	"github.com/replicanet/induction/libs/log"
)

// Simulation runs a workload across the subnets of a manifest, one round at
// a time. In every round each subnet, in parallel with the others:
//
//  1. inducts the streams other subnets sent it in the previous round,
//  2. inducts the round's ingress messages,
//  3. executes input messages of every canister,
//  4. routes output messages into streams.
//
// Streams are then exchanged, events are flushed to the event sink and, if a
// store is given, queue snapshots are saved.
type Simulation struct {
	logger   log.Logger
	manifest Manifest
	sink     induction.EventSink
	store    *store.QueueStore

	subnets []*subnet
	// Streams received by each subnet, to be inducted next round.
	inbound map[string][]*induction.Stream
	height  int64
}

type subnet struct {
	name      string
	inductor  *induction.Inductor
	generator *Generator
}

// Summary describes the state of a simulation after a run.
type Summary struct {
	Height int64
	// Queue stats per subnet.
	Stats map[string][]induction.QueueStats
	// Memory left to canister queues per subnet.
	AvailableMemory map[string]int64
	// Messages sent but not yet inducted, per receiving subnet.
	InFlight map[string]int
}

// NewSimulation sets up the subnets of m. Metrics get a "subnet" label per
// subnet. qs may be nil, in which case no snapshots are saved.
func NewSimulation(
	logger log.Logger,
	m Manifest,
	cfg *config.Config,
	metrics *induction.Metrics,
	sink induction.EventSink,
	qs *store.QueueStore,
) (*Simulation, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	sim := &Simulation{
		logger:   logger,
		manifest: m,
		sink:     sink,
		store:    qs,
		inbound:  make(map[string][]*induction.Stream),
	}
	topo := m.Topology()
	for _, name := range m.SubnetNames() {
		gen, err := NewGenerator(m, name)
		if err != nil {
			return nil, err
		}
		in := induction.NewInductor(
			logger,
			topo.WithOwnSubnet(name),
			cfg.Induction,
			metrics.With("subnet", name),
			cfg.Queues.Options()...,
		)
		for _, id := range topo.Canisters(name) {
			if err := in.AddCanister(id); err != nil {
				return nil, err
			}
		}
		sim.subnets = append(sim.subnets, &subnet{name: name, inductor: in, generator: gen})
	}
	return sim, nil
}

// Inductor returns the inductor of the named subnet.
func (sim *Simulation) Inductor(name string) (*induction.Inductor, bool) {
	for _, sn := range sim.subnets {
		if sn.name == name {
			return sn.inductor, true
		}
	}
	return nil, false
}

// Run simulates the rounds of the manifest, stopping early if ctx is
// canceled.
func (sim *Simulation) Run(ctx context.Context) (Summary, error) {
	for i := 0; i < sim.manifest.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			return sim.Summary(), err
		}
		if err := sim.Step(); err != nil {
			return sim.Summary(), err
		}
	}
	summary := sim.Summary()
	sim.logger.Info("simulation finished", "height", summary.Height, "subnets", len(sim.subnets))
	return summary, nil
}

// Step simulates a single round.
func (sim *Simulation) Step() error {
	sim.height++
	height := sim.height

	g := taskgroup.New(nil)
	for _, sn := range sim.subnets {
		sn, inbound := sn, sim.inbound[sn.name]
		g.Go(func() error {
			return sn.step(height, inbound, sim.manifest.ExecutePerRound)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("round %d: %w", height, err)
	}

	sim.inbound = make(map[string][]*induction.Stream)
	for _, src := range sim.subnets {
		for _, dst := range sim.subnets {
			if s := src.inductor.TakeStream(dst.name); s.Len() > 0 {
				sim.inbound[dst.name] = append(sim.inbound[dst.name], s)
			}
		}
	}

	for _, sn := range sim.subnets {
		if err := sn.inductor.FlushEvents(sim.sink); err != nil {
			return err
		}
		if err := sim.saveSnapshots(sn.inductor, height); err != nil {
			return err
		}
	}
	sim.logger.Debug("finished round", "height", height)
	return nil
}

func (sn *subnet) step(height int64, inbound []*induction.Stream, maxMessages int) error {
	in := sn.inductor
	in.BeginHeight(height)

	for _, s := range inbound {
		in.InductStream(s)
	}
	for _, msg := range sn.generator.Ingress(int(height)) {
		if err := in.InductIngress(msg); err != nil {
			return fmt.Errorf("subnet %s: %w", sn.name, err)
		}
	}
	for _, id := range in.Canisters() {
		if _, err := in.Execute(id, sn.generator, maxMessages); err != nil {
			return fmt.Errorf("subnet %s: %w", sn.name, err)
		}
	}
	in.RouteOutputs()
	return nil
}

func (sim *Simulation) saveSnapshots(in *induction.Inductor, height int64) error {
	if sim.store == nil {
		return nil
	}
	for _, id := range in.Canisters() {
		cq, _ := in.Queues(id)
		if err := sim.store.Save(id, height, cq); err != nil {
			return fmt.Errorf("saving snapshot of %v: %w", id, err)
		}
		if retain := sim.manifest.RetainSnapshots; retain > 0 && height > retain {
			if _, err := sim.store.Prune(id, height-retain+1); err != nil {
				return fmt.Errorf("pruning snapshots of %v: %w", id, err)
			}
		}
	}
	return nil
}

// Summary returns the current state of the simulation.
func (sim *Simulation) Summary() Summary {
	summary := Summary{
		Height:          sim.height,
		Stats:           make(map[string][]induction.QueueStats),
		AvailableMemory: make(map[string]int64),
		InFlight:        make(map[string]int),
	}
	for _, sn := range sim.subnets {
		summary.Stats[sn.name] = sn.inductor.QueueStats()
		summary.AvailableMemory[sn.name] = sn.inductor.AvailableMemory()
		for _, s := range sim.inbound[sn.name] {
			summary.InFlight[sn.name] += s.Len()
		}
	}
	return summary
}
