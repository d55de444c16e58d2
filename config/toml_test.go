package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ensureFiles(t *testing.T, rootDir string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := rootify(f, rootDir)
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestEnsureRoot(t *testing.T) {
	tmpDir := t.TempDir()

	// create root dir
	require.NoError(t, EnsureRoot(tmpDir))

	// make sure config is set properly
	data, err := ioutil.ReadFile(filepath.Join(tmpDir, defaultConfigFilePath))
	require.NoError(t, err)

	checkConfig(t, string(data))

	ensureFiles(t, tmpDir, "data")

	// an existing config file is left alone
	path := filepath.Join(tmpDir, defaultConfigFilePath)
	require.NoError(t, ioutil.WriteFile(path, []byte("log_level = \"debug\"\n"), 0644))
	require.NoError(t, EnsureRoot(tmpDir))
	data, err = ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level = \"debug\"\n", string(data))
}

func TestEnsureTestRoot(t *testing.T) {
	cfg := ResetTestRoot(t)
	rootDir := cfg.RootDir

	// make sure config is set properly
	data, err := ioutil.ReadFile(filepath.Join(rootDir, defaultConfigFilePath))
	require.NoError(t, err)

	checkConfig(t, string(data))

	ensureFiles(t, rootDir, "data", defaultConfigFilePath)
}

func TestConfigTemplateRoundTrip(t *testing.T) {
	cfg := ResetTestRoot(t)

	// the rendered template is valid TOML
	var raw map[string]interface{}
	_, err := toml.DecodeFile(filepath.Join(cfg.RootDir, defaultConfigFilePath), &raw)
	require.NoError(t, err)

	// and viper decodes it back into an equal config
	v := viper.New()
	v.SetConfigFile(filepath.Join(cfg.RootDir, defaultConfigFilePath))
	require.NoError(t, v.ReadInConfig())

	decoded := DefaultConfig()
	require.NoError(t, v.Unmarshal(decoded))
	decoded.SetRoot(cfg.RootDir)
	assert.Equal(t, cfg, decoded)
}

func checkConfig(t *testing.T, configFile string) {
	t.Helper()

	// list of words we expect in the config
	var elems = []string{
		"db_backend",
		"db_dir",
		"log_level",
		"log_format",
		"queue_capacity",
		"debug_checks",
		"subnet_message_memory",
		"max_stream_messages",
		"max_stream_bytes",
		"psql_conn",
		"prometheus",
	}
	for _, e := range elems {
		if !strings.Contains(configFile, e) {
			t.Errorf("config file was expected to contain %s but did not", e)
		}
	}
}
