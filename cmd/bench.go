package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kestrelopt/modelde/internal/bench"
)

var benchCmd = &cobra.Command{
	Use:   "bench [name]",
	Short: "List or describe the built-in benchmark problems",
	Long: `With no argument, lists every registered benchmark. Given a name,
prints that benchmark's dimension, objective/constraint counts, and
bounds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, p := range bench.All() {
			fmt.Printf("%-15s dim=%-3d nobj=%-2d ncon=%-2d\n", p.Name(), p.Dim(), p.NObj(), p.NCon())
		}
		return nil
	}

	prob, ok := bench.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown benchmark %q", args[0])
	}
	lower, upper := prob.Bounds()
	fmt.Printf("%s\n  dim:     %d\n  nobj:    %d\n  ncon:    %d\n  lower:   %v\n  upper:   %v\n  intmask: %v\n",
		prob.Name(), prob.Dim(), prob.NObj(), prob.NCon(), lower, upper, prob.IntMask())
	return nil
}
