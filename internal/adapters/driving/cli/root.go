// Package cli implements the exvespa command surface with cobra.
// Commands build their collaborators from the deployment profile on
// each invocation; nothing is long-lived.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodhamgupta/ex-vespa/internal/adapters/driven/config/file"
	"github.com/goodhamgupta/ex-vespa/internal/adapters/driven/docker"
	"github.com/goodhamgupta/ex-vespa/internal/adapters/driven/vespahttp"
	"github.com/goodhamgupta/ex-vespa/internal/core/services"
	"github.com/goodhamgupta/ex-vespa/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "exvespa",
	Short: "Compile, package and deploy search application configuration",
	Long: `exvespa models a search application as a typed configuration,
compiles it into the cluster's textual artifacts, packages them and
drives the deployment protocol against a running cluster.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.exvespa)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadProfile reads the deployment profile from the config directory.
func loadProfile() (file.Profile, error) {
	store, err := file.NewProfileStore(configDir)
	if err != nil {
		return file.Profile{}, fmt.Errorf("open profile store: %w", err)
	}
	return store.Load()
}

// clusterClient builds the HTTP client for the profile's endpoints.
func clusterClient(p file.Profile) *vespahttp.Client {
	return vespahttp.NewClient(p.ResolvedConfigURL(), p.ResolvedAppURL())
}

// newDeployer wires the orchestrator from the profile.
func newDeployer(p file.Profile, waitForApp bool) (*services.Deployer, error) {
	runtime, err := docker.NewRuntime()
	if err != nil {
		return nil, err
	}
	client := clusterClient(p)
	return services.NewDeployer(runtime, client, client, services.DeployConfig{
		ContainerName:      p.ContainerName,
		Image:              p.Image,
		MemoryBytes:        p.MemoryBytes,
		ConfigPort:         p.ConfigPort,
		AppPort:            p.AppPort,
		PollInterval:       p.PollInterval(),
		MaxWait:            p.MaxWait(),
		WaitForApplication: waitForApp,
	})
}
