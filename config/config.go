package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/replicanet/induction/internal/state/queues"
)

const (
	// LogFormatPlain is a format for colored text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	// EventSinkNull discards induction events
	EventSinkNull = "null"
	// EventSinkPSQL records induction events in PostgreSQL
	EventSinkPSQL = "psql"
)

// NOTE: Most of the structs & relevant comments + the
// default configuration options were used to manually
// generate the config.toml. Please reflect any changes
// made here in the defaultConfigTemplate constant in
// config/toml.go
// NOTE: libs/cli must know to look in the config dir!
var (
	DefaultInductionDir = ".induction"
	defaultConfigDir    = "config"
	defaultDataDir      = "data"

	defaultConfigFileName = "config.toml"
	defaultConfigFilePath = filepath.Join(defaultConfigDir, defaultConfigFileName)
)

// Config defines the top level configuration of the induction pipeline.
type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`

	Queues          *QueuesConfig          `mapstructure:"queues"`
	Induction       *InductionConfig       `mapstructure:"induction"`
	EventSink       *EventSinkConfig       `mapstructure:"event_sink"`
	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig:      DefaultBaseConfig(),
		Queues:          DefaultQueuesConfig(),
		Induction:       DefaultInductionConfig(),
		EventSink:       DefaultEventSinkConfig(),
		Instrumentation: DefaultInstrumentationConfig(),
	}
}

// TestConfig returns a configuration that can be used for testing
func TestConfig() *Config {
	return &Config{
		BaseConfig:      TestBaseConfig(),
		Queues:          TestQueuesConfig(),
		Induction:       TestInductionConfig(),
		EventSink:       DefaultEventSinkConfig(),
		Instrumentation: TestInstrumentationConfig(),
	}
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *Config) ValidateBasic() error {
	if err := cfg.BaseConfig.ValidateBasic(); err != nil {
		return err
	}
	if err := cfg.Queues.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [queues] section: %w", err)
	}
	if err := cfg.Induction.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [induction] section: %w", err)
	}
	if err := cfg.EventSink.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [event_sink] section: %w", err)
	}
	if err := cfg.Instrumentation.ValidateBasic(); err != nil {
		return fmt.Errorf("error in [instrumentation] section: %w", err)
	}
	return nil
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration.
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Database backend: goleveldb | memdb
	// * goleveldb (github.com/syndtr/goleveldb - most popular implementation)
	//   - pure go
	//   - stable
	// * memdb
	//   - snapshots are lost on exit
	DBBackend string `mapstructure:"db_backend"`

	// Database directory
	DBPath string `mapstructure:"db_dir"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`
}

// DefaultBaseConfig returns a default base configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		DBBackend: "goleveldb",
		DBPath:    defaultDataDir,
		LogLevel:  DefaultLogLevel,
		LogFormat: LogFormatPlain,
	}
}

// TestBaseConfig returns a base configuration for testing.
func TestBaseConfig() BaseConfig {
	cfg := DefaultBaseConfig()
	cfg.DBBackend = "memdb"
	return cfg
}

// DBDir returns the full path to the database directory
func (cfg BaseConfig) DBDir() string {
	return rootify(cfg.DBPath, cfg.RootDir)
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg BaseConfig) ValidateBasic() error {
	switch cfg.LogFormat {
	case LogFormatPlain, LogFormatJSON:
	default:
		return errors.New("unknown log_format (must be 'plain' or 'json')")
	}
	switch cfg.DBBackend {
	case "goleveldb", "memdb":
	default:
		return fmt.Errorf("unsupported db_backend %q (must be 'goleveldb' or 'memdb')", cfg.DBBackend)
	}
	return nil
}

// DefaultLogLevel is the default output level for logging.
const DefaultLogLevel = "info"

//-----------------------------------------------------------------------------
// QueuesConfig

// QueuesConfig configures the per canister queues.
type QueuesConfig struct {
	// Capacity of every input and output queue, counting messages and
	// reserved slots.
	QueueCapacity int `mapstructure:"queue_capacity"`

	// Cross-check running stats against a full recomputation after every
	// mutation. O(messages) per operation: for tests and debugging only.
	DebugChecks bool `mapstructure:"debug_checks"`
}

// DefaultQueuesConfig returns a default configuration for the queues.
func DefaultQueuesConfig() *QueuesConfig {
	return &QueuesConfig{
		QueueCapacity: queues.DefaultQueueCapacity,
		DebugChecks:   false,
	}
}

// TestQueuesConfig returns a configuration for testing the queues.
func TestQueuesConfig() *QueuesConfig {
	cfg := DefaultQueuesConfig()
	cfg.QueueCapacity = 10
	cfg.DebugChecks = true
	return cfg
}

// Options returns the queue options the config translates to.
func (cfg *QueuesConfig) Options() []queues.Option {
	return []queues.Option{
		queues.WithCapacity(cfg.QueueCapacity),
		queues.WithDebugChecks(cfg.DebugChecks),
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *QueuesConfig) ValidateBasic() error {
	if cfg.QueueCapacity <= 0 {
		return errors.New("queue_capacity must be positive")
	}
	return nil
}

//-----------------------------------------------------------------------------
// InductionConfig

// InductionConfig configures message induction and routing.
type InductionConfig struct {
	// Memory available to the queues of all canisters on the subnet, in
	// bytes. Requests that would exceed it are rejected before being pushed.
	SubnetMessageMemory int64 `mapstructure:"subnet_message_memory"`

	// Maximum number of messages routed into the stream to any one
	// destination per round. 0 means unlimited.
	MaxStreamMessages int `mapstructure:"max_stream_messages"`

	// Maximum byte size of the stream to any one destination. Routing to a
	// destination stops once its stream reaches it. 0 means unlimited.
	MaxStreamBytes int `mapstructure:"max_stream_bytes"`
}

// DefaultInductionConfig returns a default configuration for induction.
func DefaultInductionConfig() *InductionConfig {
	return &InductionConfig{
		SubnetMessageMemory: 2 << 30, // 2 GiB
		MaxStreamMessages:   1000,
		MaxStreamBytes:      10 << 20, // 10 MiB
	}
}

// TestInductionConfig returns a configuration for testing induction.
func TestInductionConfig() *InductionConfig {
	cfg := DefaultInductionConfig()
	cfg.SubnetMessageMemory = 64 << 20
	cfg.MaxStreamMessages = 10
	return cfg
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InductionConfig) ValidateBasic() error {
	if cfg.SubnetMessageMemory < 0 {
		return errors.New("subnet_message_memory can't be negative")
	}
	if cfg.MaxStreamMessages < 0 {
		return errors.New("max_stream_messages can't be negative")
	}
	if cfg.MaxStreamBytes < 0 {
		return errors.New("max_stream_bytes can't be negative")
	}
	return nil
}

//-----------------------------------------------------------------------------
// EventSinkConfig

// EventSinkConfig configures where induction events are recorded.
type EventSinkConfig struct {
	// What sink to use: null | psql
	//   1) "null" - events are discarded.
	//   2) "psql" - events are recorded in a PostgreSQL database, see
	//      internal/induction/sink/psql/schema.sql.
	Type string `mapstructure:"type"`

	// The PostgreSQL connection configuration, the connection format:
	// postgresql://<user>:<password>@<host>:<port>/<db>?<opts>
	PsqlConn string `mapstructure:"psql_conn"`
}

// DefaultEventSinkConfig returns a default configuration for the event sink.
func DefaultEventSinkConfig() *EventSinkConfig {
	return &EventSinkConfig{
		Type: EventSinkNull,
	}
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *EventSinkConfig) ValidateBasic() error {
	switch strings.ToLower(cfg.Type) {
	case EventSinkNull:
	case EventSinkPSQL:
		if cfg.PsqlConn == "" {
			return errors.New("psql_conn is required for the psql event sink")
		}
	default:
		return fmt.Errorf("unsupported event sink type %q", cfg.Type)
	}
	return nil
}

//-----------------------------------------------------------------------------
// InstrumentationConfig

// InstrumentationConfig defines the configuration for metrics reporting.
type InstrumentationConfig struct {
	// When true, Prometheus metrics are served under /metrics on
	// PrometheusListenAddr.
	// Check out the documentation for the list of available metrics.
	Prometheus bool `mapstructure:"prometheus"`

	// Address to listen for Prometheus collector(s) connections.
	PrometheusListenAddr string `mapstructure:"prometheus_listen_addr"`

	// Instrumentation namespace.
	Namespace string `mapstructure:"namespace"`
}

// DefaultInstrumentationConfig returns a default configuration for metrics
// reporting.
func DefaultInstrumentationConfig() *InstrumentationConfig {
	return &InstrumentationConfig{
		Prometheus:           false,
		PrometheusListenAddr: ":26660",
		Namespace:            "induction",
	}
}

// TestInstrumentationConfig returns a default configuration for metrics
// reporting.
func TestInstrumentationConfig() *InstrumentationConfig {
	return DefaultInstrumentationConfig()
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg *InstrumentationConfig) ValidateBasic() error {
	if cfg.Prometheus && cfg.PrometheusListenAddr == "" {
		return errors.New("prometheus_listen_addr is required when prometheus is enabled")
	}
	return nil
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
