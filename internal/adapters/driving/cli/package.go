package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
	"github.com/goodhamgupta/ex-vespa/internal/core/services"
)

var (
	packageName string
	packageOut  string
	packageZip  string
)

var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Render a default application package",
	Long: `Renders the artifacts of a default application package (one
schema named after the application, default query profiles) into a
directory, or into an archive with --zip-out. The directory is a
starting point: edit the schema files, then deploy with "deploy --dir".`,
	RunE: runPackage,
}

func init() {
	packageCmd.Flags().StringVar(&packageName, "name", "", "application name (required)")
	packageCmd.Flags().StringVar(&packageOut, "out", "", "output directory (default: the application name)")
	packageCmd.Flags().StringVar(&packageZip, "zip-out", "", "write an archive instead of a directory")
	packageCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(packageCmd)
}

func runPackage(cmd *cobra.Command, _ []string) error {
	app, err := domain.NewApplicationPackage(packageName)
	if err != nil {
		return err
	}

	if packageZip != "" {
		if err := services.WriteZip(app, packageZip); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", packageZip)
		return nil
	}

	out := packageOut
	if out == "" {
		out = packageName
	}
	if err := services.WritePackage(app, out); err != nil {
		return fmt.Errorf("write package: %w", err)
	}
	cmd.Printf("Wrote package to %s\n", out)
	return nil
}
