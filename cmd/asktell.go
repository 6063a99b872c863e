package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kestrelopt/modelde/internal/bench"
	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/mode"
	"github.com/kestrelopt/modelde/internal/session"
)

var (
	atProblem string
	atRounds  int
	atSeed    int64
)

var askTellCmd = &cobra.Command{
	Use:   "asktell",
	Short: "Demonstrate the interactive MODE ask/tell handle API",
	Long: `Drives internal/session's init/askAll/tellAll/population/destroy
handle API against a built-in benchmark, switching from DE to NSGA-style
variation halfway through the run.`,
	RunE: runAskTell,
}

func init() {
	askTellCmd.Flags().StringVar(&atProblem, "problem", "zdt1", "Benchmark: sphere, zdt1, constrained, mixed_integer")
	askTellCmd.Flags().IntVar(&atRounds, "rounds", 50, "Number of askAll/tellAll rounds")
	askTellCmd.Flags().Int64Var(&atSeed, "seed", 42, "Random seed")
	rootCmd.AddCommand(askTellCmd)
}

func runAskTell(cmd *cobra.Command, args []string) error {
	prob, ok := bench.ByName(atProblem)
	if !ok {
		return fmt.Errorf("unknown problem %q", atProblem)
	}

	lower, upper := prob.Bounds()
	cfg := mode.Config{
		Dim:   prob.Dim(),
		Nobj:  prob.NObj(),
		Ncon:  prob.NCon(),
		Seed:  atSeed,
		Lower: lower,
		Upper: upper,
		Ints:  bounds.IntMask(prob.IntMask()),
	}
	fit := fitness.NewMultiObjective(prob.Eval, prob.NObj(), prob.NCon())

	mgr := session.NewManager()
	handle, err := mgr.Init(cfg, fit)
	if err != nil {
		return fmt.Errorf("init session: %w", err)
	}
	defer mgr.Destroy(handle)
	slog.Info("session opened", "handle", handle, "problem", prob.Name())

	switched := false
	for round := 0; round < atRounds; round++ {
		x, err := mgr.AskAll(handle)
		if err != nil {
			return fmt.Errorf("askAll round %d: %w", round, err)
		}
		y := make([][]float64, len(x))
		for i, xi := range x {
			y[i] = fit.Eval(xi)
		}

		var stop bool
		if !switched && round == atRounds/2 {
			stop, err = mgr.TellAllWithStrategy(handle, y, true, 0.5)
			switched = true
			slog.Info("switched to NSGA-style variation", "round", round)
		} else {
			stop, err = mgr.TellAll(handle, y)
		}
		if err != nil {
			return fmt.Errorf("tellAll round %d: %w", round, err)
		}
		if stop {
			slog.Info("optimizer requested termination", "round", round)
			break
		}
	}

	pop, err := mgr.Population(handle)
	if err != nil {
		return fmt.Errorf("population: %w", err)
	}
	fmt.Printf("survivors: %d, evaluations: %d\n", len(pop), fit.Evaluations())
	return nil
}
