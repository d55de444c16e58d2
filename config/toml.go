package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	tmos "github.com/replicanet/induction/libs/os"
)

// defaultDirPerm is the default permissions used when creating directories.
const defaultDirPerm = 0700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate").Funcs(template.FuncMap{
		"StringsJoin": strings.Join,
	})
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

/****** these are for production settings ***********/

// EnsureRoot creates the root, config, and data directories if they don't exist,
// and writes the default config file if there is none.
func EnsureRoot(rootDir string) error {
	if err := tmos.EnsureDir(rootDir, defaultDirPerm); err != nil {
		return err
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultConfigDir), defaultDirPerm); err != nil {
		return err
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultDataDir), defaultDirPerm); err != nil {
		return err
	}
	return writeDefaultConfigFileIfNone(rootDir)
}

// WriteConfigFile renders config using the template and writes it to
// $rootDir/config/config.toml.
func WriteConfigFile(rootDir string, config *Config) error {
	return config.WriteToTemplate(filepath.Join(rootDir, defaultConfigFilePath))
}

// WriteToTemplate writes the config to the exact file specified by
// the path, in the default toml template and does not mangle the path
// or filename at all.
func (cfg *Config) WriteToTemplate(path string) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, cfg); err != nil {
		return err
	}

	return tmos.WriteFileAtomic(path, buffer.Bytes(), 0644)
}

func writeDefaultConfigFileIfNone(rootDir string) error {
	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)
	if !tmos.FileExists(configFilePath) {
		return WriteConfigFile(rootDir, DefaultConfig())
	}
	return nil
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

# NOTE: Any path below can be absolute (e.g. "/var/induction/data") or
# relative to the home directory (e.g. "data"). The home directory is
# "$HOME/.induction" by default, but could be changed via $INDUCTION_HOME env
# variable or --home cmd flag.

#######################################################################
###                   Main Base Config Options                      ###
#######################################################################

# Database backend: goleveldb | memdb
# * goleveldb (github.com/syndtr/goleveldb - most popular implementation)
#   - pure go
#   - stable
# * memdb
#   - snapshots are lost on exit
db_backend = "{{ .BaseConfig.DBBackend }}"

# Database directory
db_dir = "{{ js .BaseConfig.DBPath }}"

# Output level for logging: debug | info | warn | error
log_level = "{{ .BaseConfig.LogLevel }}"

# Output format: 'plain' (colored text) or 'json'
log_format = "{{ .BaseConfig.LogFormat }}"

#######################################################
###           Queues Configuration Options          ###
#######################################################
[queues]

# Capacity of every input and output queue, counting messages and
# reserved slots
queue_capacity = {{ .Queues.QueueCapacity }}

# Cross-check running stats against a full recomputation after every
# mutation. Slow: for tests and debugging only
debug_checks = {{ .Queues.DebugChecks }}

#######################################################
###          Induction Configuration Options        ###
#######################################################
[induction]

# Memory available to the queues of all canisters on the subnet, in bytes
subnet_message_memory = {{ .Induction.SubnetMessageMemory }}

# Maximum number of messages routed into the stream to any one destination
# per round. 0 means unlimited
max_stream_messages = {{ .Induction.MaxStreamMessages }}

# Maximum byte size of the stream to any one destination. 0 means unlimited
max_stream_bytes = {{ .Induction.MaxStreamBytes }}

#######################################################
###          Event Sink Configuration Options       ###
#######################################################
[event_sink]

# What sink to use for induction events: null | psql
#   1) "null" - events are discarded
#   2) "psql" - events are recorded in a PostgreSQL database
type = "{{ .EventSink.Type }}"

# The PostgreSQL connection configuration, the connection format:
#   postgresql://<user>:<password>@<host>:<port>/<db>?<opts>
psql_conn = "{{ .EventSink.PsqlConn }}"

#######################################################
###       Instrumentation Configuration Options     ###
#######################################################
[instrumentation]

# When true, Prometheus metrics are served under /metrics on
# PrometheusListenAddr.
# Check out the documentation for the list of available metrics.
prometheus = {{ .Instrumentation.Prometheus }}

# Address to listen for Prometheus collector(s) connections
prometheus_listen_addr = "{{ .Instrumentation.PrometheusListenAddr }}"

# Instrumentation namespace
namespace = "{{ .Instrumentation.Namespace }}"
`

/****** these are for test settings ***********/

// ResetTestRoot creates a fresh root directory for t holding the test
// config, and returns that config.
func ResetTestRoot(t testing.TB) *Config {
	t.Helper()

	rootDir := t.TempDir()
	cfg := TestConfig().SetRoot(rootDir)
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultConfigDir), defaultDirPerm); err != nil {
		t.Fatal(err)
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultDataDir), defaultDirPerm); err != nil {
		t.Fatal(err)
	}
	if err := WriteConfigFile(rootDir, cfg); err != nil {
		t.Fatal(err)
	}
	return cfg
}
