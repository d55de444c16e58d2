package cli

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestBindFlagsLoadViper(t *testing.T) {
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0700))
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(home, "config", "config.toml"),
		[]byte("log_level = \"debug\"\n[queues]\nqueue_capacity = 7\n"),
		0600,
	))

	var (
		level    string
		capacity int
	)
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			level = viper.GetString("log_level")
			capacity = viper.GetInt("queues.queue_capacity")
			return nil
		},
	}
	cmd = PrepareBaseCmd(cmd, "TEST", home)
	cmd.SetArgs([]string{"--home", home})
	require.NoError(t, cmd.Execute())

	require.Equal(t, "debug", level)
	require.Equal(t, 7, capacity)
}

func TestBindFlagsLoadViperWithoutConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd = PrepareBaseCmd(cmd, "TEST", t.TempDir())
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
}
