package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the cluster's deployment state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}
	deployer, err := newDeployer(profile, false)
	if err != nil {
		return err
	}

	state, err := deployer.Status(context.Background())
	if err != nil {
		return err
	}
	cmd.Printf("%s\n", state)
	return nil
}
