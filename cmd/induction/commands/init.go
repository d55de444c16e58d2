package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	cfg "github.com/replicanet/induction/config"
	"github.com/replicanet/induction/internal/workload"
	tmos "github.com/replicanet/induction/libs/os"
)

// InitFilesCmd initializes a fresh home directory.
var InitFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the home directory with a default config and workload",
	RunE:  initFiles,
}

const exampleManifestFile = "workload.toml"

func initFiles(cmd *cobra.Command, args []string) error {
	if err := cfg.EnsureRoot(config.RootDir); err != nil {
		return err
	}
	logger.Info("Found or generated config", "path", filepath.Join(config.RootDir, "config", "config.toml"))

	manifestFile := filepath.Join(config.RootDir, exampleManifestFile)
	if tmos.FileExists(manifestFile) {
		logger.Info("Found workload manifest", "path", manifestFile)
		return nil
	}
	if err := exampleManifest().Save(manifestFile); err != nil {
		return err
	}
	logger.Info("Generated workload manifest", "path", manifestFile)
	return nil
}

// exampleManifest is a small workload across three subnets.
func exampleManifest() workload.Manifest {
	return workload.Manifest{
		Seed:            1,
		Rounds:          100,
		IngressPerRound: 10,
		ExecutePerRound: 20,
		MaxCalls:        3,
		MaxPayloadBytes: 1024,
		RejectRate:      0.05,
		RetainSnapshots: 10,
		Subnets: map[string]*workload.ManifestSubnet{
			"alpha": {Canisters: 4},
			"beta":  {Canisters: 4},
			"gamma": {Canisters: 2},
		},
		Actions: map[string]uint{
			workload.ActionReply:       2,
			workload.ActionCallLocal:   3,
			workload.ActionCallRemote:  3,
			workload.ActionCallUnknown: 1,
		},
	}
}
