package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrelopt/modelde/internal/report"
)

var statusCmd = &cobra.Command{
	Use:   "status <report-path>",
	Short: "Inspect a previously written run report",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	res, err := report.Read(args[0])
	if err != nil {
		var notFound *report.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no report at %s", args[0])
		}
		return fmt.Errorf("read report: %w", err)
	}

	fmt.Printf("problem:     %s\n", res.Problem)
	fmt.Printf("algorithm:   %s\n", res.Algorithm)
	fmt.Printf("seed:        %d\n", res.Seed)
	fmt.Printf("best x:      %v\n", res.BestX)
	fmt.Printf("best y:      %v\n", res.BestY)
	fmt.Printf("evaluations: %d\n", res.Evaluations)
	fmt.Printf("iterations:  %d\n", res.Iterations)
	fmt.Printf("stopped:     %s\n", res.Stopped)
	fmt.Printf("timestamp:   %s\n", res.Timestamp.Format(time.RFC3339))
	if len(res.Population) > 0 {
		fmt.Printf("survivors:   %d\n", len(res.Population))
	}
	return nil
}
