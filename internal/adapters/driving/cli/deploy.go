package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goodhamgupta/ex-vespa/internal/core/services"
)

var (
	deployDir     string
	deployZip     string
	deployWaitApp bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy a packaged application to the cluster",
	Long: `Ensures the engine container is running, waits for the config
server, then uploads and activates the packaged application. The package
is read from --zip, or built on the fly from the directory given with
--dir.`,
	RunE: runDeploy,
}

func init() {
	deployCmd.Flags().StringVar(&deployDir, "dir", "", "package directory to archive and deploy")
	deployCmd.Flags().StringVar(&deployZip, "zip", "", "packaged archive to deploy")
	deployCmd.Flags().BoolVar(&deployWaitApp, "wait-app", false, "also wait for the application endpoint after activation")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	archive, err := deployArchive()
	if err != nil {
		return err
	}

	profile, err := loadProfile()
	if err != nil {
		return err
	}
	deployer, err := newDeployer(profile, deployWaitApp)
	if err != nil {
		return err
	}

	if err := deployer.Deploy(context.Background(), archive); err != nil {
		return fmt.Errorf("deploy failed: %w", err)
	}
	cmd.Println("Deployment activated.")
	return nil
}

// deployArchive resolves the package bytes from the flags.
func deployArchive() ([]byte, error) {
	switch {
	case deployZip != "" && deployDir != "":
		return nil, errors.New("--zip and --dir are mutually exclusive")
	case deployZip != "":
		data, err := os.ReadFile(deployZip)
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		return data, nil
	case deployDir != "":
		return services.ZipDir(deployDir)
	default:
		return nil, errors.New("either --zip or --dir is required")
	}
}
