package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Stop the engine container",
	RunE:  runDestroy,
}

func init() {
	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}
	deployer, err := newDeployer(profile, false)
	if err != nil {
		return err
	}

	if err := deployer.Destroy(context.Background()); err != nil {
		return err
	}
	cmd.Println("Container stopped.")
	return nil
}
