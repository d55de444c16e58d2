package main

import (
	"os"

	"github.com/replicanet/induction/cmd/induction/commands"
	"github.com/replicanet/induction/config"
	"github.com/replicanet/induction/libs/cli"
)

func main() {
	rootCmd := commands.RootCmd
	rootCmd.AddCommand(
		commands.InitFilesCmd,
		commands.SimulateCmd,
		commands.InspectCmd,
		commands.VersionCmd,
	)

	cmd := cli.PrepareBaseCmd(rootCmd, "INDUCTION", cli.DefaultHome(config.DefaultInductionDir))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
