package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goodhamgupta/ex-vespa/internal/core/services"
)

var (
	feedNamespace string
	feedID        string
	removeAll     bool
	removeCluster string
)

var feedCmd = &cobra.Command{
	Use:   "feed <schema> <json-fields>",
	Short: "Feed a document to the cluster",
	Long: `Writes a document to the given schema. The document id is
taken from --id; without it a fresh id is generated and printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runFeed,
}

var getCmd = &cobra.Command{
	Use:   "get <schema> <id>",
	Short: "Fetch a document by id",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var removeCmd = &cobra.Command{
	Use:   "remove <schema> [id]",
	Short: "Delete a document, or all documents with --all",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runRemove,
}

func init() {
	feedCmd.Flags().StringVar(&feedNamespace, "namespace", "", "document namespace (optional)")
	feedCmd.Flags().StringVar(&feedID, "id", "", "document id (generated when omitted)")
	getCmd.Flags().StringVar(&feedNamespace, "namespace", "", "document namespace (optional)")
	removeCmd.Flags().StringVar(&feedNamespace, "namespace", "", "document namespace (optional)")
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "delete every document of the schema")
	removeCmd.Flags().StringVar(&removeCluster, "cluster", "", "content cluster for --all")
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(removeCmd)
}

func documentService() (*services.DocumentService, error) {
	profile, err := loadProfile()
	if err != nil {
		return nil, err
	}
	return services.NewDocumentService(clusterClient(profile)), nil
}

func runFeed(cmd *cobra.Command, args []string) error {
	schema := args[0]
	var fields map[string]any
	if err := json.Unmarshal([]byte(args[1]), &fields); err != nil {
		return fmt.Errorf("parse fields: %w", err)
	}

	service, err := documentService()
	if err != nil {
		return err
	}
	id, resp, err := service.Feed(context.Background(), feedNamespace, schema, feedID, fields)
	if err != nil {
		return err
	}
	cmd.Printf("Fed %s (%d)\n", id, resp.Status)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	service, err := documentService()
	if err != nil {
		return err
	}
	resp, err := service.Get(context.Background(), feedNamespace, args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Println(string(resp.Body))
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	service, err := documentService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if removeAll {
		if removeCluster == "" {
			return fmt.Errorf("--all requires --cluster")
		}
		if err := service.RemoveAll(ctx, feedNamespace, args[0], removeCluster); err != nil {
			return err
		}
		cmd.Println("Removed all documents.")
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("a document id is required without --all")
	}
	resp, err := service.Remove(ctx, feedNamespace, args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Printf("Removed %s (%d)\n", args[1], resp.Status)
	return nil
}
