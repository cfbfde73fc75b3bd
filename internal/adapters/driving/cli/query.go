package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goodhamgupta/ex-vespa/internal/core/services"
)

var (
	queryFile string
	queryRate float64
)

var queryCmd = &cobra.Command{
	Use:   "query [json-body]",
	Short: "Run a query against the cluster",
	Long: `Posts a JSON query body to the cluster's search endpoint.
With --file, reads one JSON body per line and runs them as a batch;
--rate bounds the batch's queries per second. Batch outcomes are
collected per input: one failing query does not abort the rest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryFile, "file", "", "file with one JSON query body per line")
	queryCmd.Flags().Float64Var(&queryRate, "rate", 0, "maximum queries per second for --file batches (0 = unlimited)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}
	service := services.NewQueryService(clusterClient(profile), queryRate)
	ctx := context.Background()

	if queryFile != "" {
		bodies, err := readQueryBodies(queryFile)
		if err != nil {
			return err
		}
		outcomes := service.QueryMany(ctx, bodies)
		failures := 0
		for i, outcome := range outcomes {
			if outcome.Err != nil {
				failures++
				cmd.PrintErrf("[%d] error: %v\n", i+1, outcome.Err)
				continue
			}
			cmd.Printf("[%d] %s\n", i+1, string(outcome.Response.Body))
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d queries failed", failures, len(outcomes))
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a JSON query body or --file is required")
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(args[0]), &body); err != nil {
		return fmt.Errorf("parse query body: %w", err)
	}
	resp, err := service.Query(ctx, body)
	if err != nil {
		return err
	}
	cmd.Println(string(resp.Body))
	return nil
}

func readQueryBodies(path string) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open query file: %w", err)
	}
	defer f.Close()

	var bodies []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var body map[string]any
		if err := json.Unmarshal(line, &body); err != nil {
			return nil, fmt.Errorf("parse query body %d: %w", len(bodies)+1, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, scanner.Err()
}
