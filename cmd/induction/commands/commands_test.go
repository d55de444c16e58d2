package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/induction"
	"github.com/replicanet/induction/internal/workload"
	"github.com/replicanet/induction/libs/log"
	tmos "github.com/replicanet/induction/libs/os"
)

// setupTest points the package globals at a fresh home directory and
// returns a command whose output is captured.
func setupTest(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	config = cfg.TestConfig().SetRoot(t.TempDir())
	config.DBBackend = "goleveldb"
	logger = log.TestingLogger(t)

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd, out
}

func TestExampleManifestIsValid(t *testing.T) {
	require.NoError(t, exampleManifest().Validate())
}

func TestInitFiles(t *testing.T) {
	cmd, _ := setupTest(t)

	require.NoError(t, initFiles(cmd, nil))
	assert.True(t, tmos.FileExists(filepath.Join(config.RootDir, "config", "config.toml")))

	m, err := workload.LoadManifest(filepath.Join(config.RootDir, exampleManifestFile))
	require.NoError(t, err)
	assert.Equal(t, exampleManifest(), m)

	// Running init again keeps existing files.
	require.NoError(t, initFiles(cmd, nil))
}

func TestSimulateAndInspect(t *testing.T) {
	cmd, out := setupTest(t)

	manifestFile := filepath.Join(config.RootDir, "workload.toml")
	m := exampleManifest()
	m.Rounds = 5
	require.NoError(t, m.Save(manifestFile))

	saveSnapshots = true
	t.Cleanup(func() { saveSnapshots = false })

	require.NoError(t, runSimulate(cmd, []string{manifestFile}))
	assert.Contains(t, out.String(), "height 5\n")
	for _, name := range m.SubnetNames() {
		assert.Contains(t, out.String(), name+": input=")
	}

	out.Reset()
	require.NoError(t, runInspect(cmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "canister-1 latest_height=5", lines[0])

	out.Reset()
	require.NoError(t, runInspect(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "canister-1 at height 5\n")

	assert.Error(t, runInspect(cmd, []string{"not-a-canister"}))
	assert.Error(t, runInspect(cmd, []string{"999"}))
}

func TestNewEventSink(t *testing.T) {
	sink, err := newEventSink(cfg.DefaultEventSinkConfig())
	require.NoError(t, err)
	assert.Equal(t, induction.NopEventSink{}, sink)
}

func TestVersionCmd(t *testing.T) {
	cmd, out := setupTest(t)
	require.NoError(t, VersionCmd.RunE(cmd, nil))
	assert.NotEmpty(t, strings.TrimSpace(out.String()))
}
