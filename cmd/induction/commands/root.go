package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/replicanet/induction/config"
	"github.com/replicanet/induction/libs/log"
)

var (
	config = cfg.DefaultConfig()
	logger = log.MustNewDefaultLogger(log.LogFormatPlain, log.LogLevelInfo)
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", config.LogLevel, "log level")
	cmd.PersistentFlags().String("log-format", config.LogFormat, "log format: plain | json")
}

// ParseConfig retrieves the default environment configuration, sets up the
// root and validates the result.
func ParseConfig() (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}
	conf.SetRoot(conf.RootDir)
	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %w", err)
	}
	return conf, nil
}

// RootCmd is the root command for the induction simulator.
var RootCmd = &cobra.Command{
	Use:   "induction",
	Short: "Canister message induction and routing across subnets",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		config, err = ParseConfig()
		if err != nil {
			return err
		}
		if viper.IsSet("log-level") {
			config.LogLevel = viper.GetString("log-level")
		}
		if viper.IsSet("log-format") {
			config.LogFormat = viper.GetString("log-format")
		}

		logger, err = log.NewDefaultLogger(config.LogFormat, config.LogLevel)
		if err != nil {
			return err
		}
		logger = logger.With("module", "main")
		return nil
	},
}
