package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cfg "github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/internal/induction/sink/psql"
	"github.com/replicanet/induction/internal/store"
	"github.com/replicanet/induction/internal/workload"
)

var (
	rounds        int
	saveSnapshots bool
)

// SimulateCmd runs a workload manifest.
var SimulateCmd = &cobra.Command{
	Use:   "simulate [manifest]",
	Short: "Simulate a workload of canister messages across subnets",
	Long: `
	simulate runs the workload described by a TOML manifest: every round,
	ingress messages are inducted, canisters execute their input and make
	calls, and output messages are routed between subnets in streams.

	Induction events are recorded in the configured event sink, and queue
	snapshots in the database when --snapshots is set.
	`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	SimulateCmd.Flags().IntVar(&rounds, "rounds", 0, "number of rounds to simulate; overrides the manifest")
	SimulateCmd.Flags().BoolVar(&saveSnapshots, "snapshots", false, "save queue snapshots every round")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	m, err := workload.LoadManifest(args[0])
	if err != nil {
		return err
	}
	if rounds > 0 {
		m.Rounds = rounds
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metrics := induction.NopMetrics()
	if config.Instrumentation.Prometheus {
		metrics = induction.PrometheusMetrics(config.Instrumentation.Namespace, "subnet", "")
		srv := startPrometheusServer(config.Instrumentation.PrometheusListenAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Prometheus HTTP server Shutdown", "err", err)
			}
		}()
	}

	sink, err := newEventSink(config.EventSink)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Stop(); err != nil {
			logger.Error("failed to stop event sink", "err", err)
		}
	}()

	var qs *store.QueueStore
	if saveSnapshots {
		db, err := cfg.QueuesDB(config)
		if err != nil {
			return err
		}
		qs = store.NewQueueStore(db, config.Queues.Options()...)
		defer qs.Close()
	}

	sim, err := workload.NewSimulation(logger, m, config, metrics, sink, qs)
	if err != nil {
		return err
	}
	logger.Info("starting simulation", "subnets", strings.Join(m.SubnetNames(), ","), "rounds", m.Rounds)

	summary, err := sim.Run(ctx)
	printSummary(cmd, summary)
	if errors.Is(err, context.Canceled) {
		logger.Info("simulation interrupted", "height", summary.Height)
		return nil
	}
	return err
}

func newEventSink(conf *cfg.EventSinkConfig) (induction.EventSink, error) {
	switch strings.ToLower(conf.Type) {
	case cfg.EventSinkPSQL:
		sink, err := psql.NewEventSink(conf.PsqlConn)
		if err != nil {
			return nil, err
		}
		if err := psql.EnsureSchema(sink.DB()); err != nil {
			_ = sink.Stop()
			return nil, fmt.Errorf("installing event sink schema: %w", err)
		}
		return sink, nil
	default:
		return induction.NopEventSink{}, nil
	}
}

// startPrometheusServer starts a Prometheus HTTP server, listening for metrics
// collectors on addr.
func startPrometheusServer(addr string) *http.Server {
	srv := &http.Server{
		Addr: addr,
		Handler: promhttp.InstrumentMetricHandler(
			prometheus.DefaultRegisterer, promhttp.HandlerFor(
				prometheus.DefaultGatherer,
				promhttp.HandlerOpts{MaxRequestsInFlight: 3},
			),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Prometheus HTTP server ListenAndServe", "err", err)
		}
	}()
	return srv
}

func printSummary(cmd *cobra.Command, summary workload.Summary) {
	out := cmd.OutOrStdout()
	subnets := make([]string, 0, len(summary.Stats))
	for name := range summary.Stats {
		subnets = append(subnets, name)
	}
	sort.Strings(subnets)

	fmt.Fprintf(out, "height %d\n", summary.Height)
	for _, name := range subnets {
		var input, output, reserved int
		for _, s := range summary.Stats[name] {
			input += s.InputMessages
			output += s.OutputMessages
			reserved += s.ReservedSlots
		}
		fmt.Fprintf(out, "%s: input=%d output=%d reserved=%d in_flight=%d available_memory=%d\n",
			name, input, output, reserved, summary.InFlight[name], summary.AvailableMemory[name])
	}
}
