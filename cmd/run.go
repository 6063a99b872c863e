package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/kestrelopt/modelde/internal/bench"
	"github.com/kestrelopt/modelde/internal/bounds"
	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/lde"
	"github.com/kestrelopt/modelde/internal/mode"
	"github.com/kestrelopt/modelde/internal/opt"
	"github.com/kestrelopt/modelde/internal/report"
)

var (
	runProblem   string
	runAlgorithm string
	runPopSize   int
	runMaxEvals  int
	runWorkers   int
	runSeed      int64
	runNSGA      bool
	runOut       string
	runTrace     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single synchronous optimization against a benchmark problem",
	Long: `Runs MODE or LDE to completion against one of the built-in benchmark
problems and writes a report.json summary (see the status command).`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runProblem, "problem", "sphere", "Benchmark: sphere, zdt1, constrained, mixed_integer")
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "", "Optimizer: mode or lde (default: inferred from the problem)")
	runCmd.Flags().IntVar(&runPopSize, "pop", 0, "Population size (0 = default)")
	runCmd.Flags().IntVar(&runMaxEvals, "max-evals", 0, "Evaluation budget (0 = default)")
	runCmd.Flags().IntVar(&runWorkers, "workers", 1, "Concurrent MODE evaluators; >1 selects the async delayed-update loop")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "Random seed")
	runCmd.Flags().BoolVar(&runNSGA, "nsga", false, "MODE: use NSGA-style variation instead of DE/rand/1")
	runCmd.Flags().StringVar(&runOut, "out", "report.json", "Report output path")
	runCmd.Flags().StringVar(&runTrace, "trace", "", "Progress trace output path (empty disables tracing)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	prob, ok := bench.ByName(runProblem)
	if !ok {
		return fmt.Errorf("unknown problem %q", runProblem)
	}

	algorithm := runAlgorithm
	if algorithm == "" {
		algorithm = "mode"
		if prob.NObj() == 1 && prob.NCon() == 0 && len(prob.IntMask()) == 0 {
			algorithm = "lde"
		}
	}

	slog.Info("starting run", "problem", prob.Name(), "algorithm", algorithm, "seed", runSeed)
	start := time.Now()

	var res *report.Result
	var err error
	switch algorithm {
	case "mode":
		res, err = runModeProblem(prob)
	case "lde":
		res, err = runLDEProblem(prob)
	default:
		return fmt.Errorf("unknown algorithm %q", algorithm)
	}
	if err != nil {
		return fmt.Errorf("run %s/%s: %w", algorithm, prob.Name(), err)
	}
	res.Timestamp = time.Now()

	slog.Info("run complete", "elapsed", time.Since(start), "evaluations", res.Evaluations, "bestY", res.BestY)

	if err := report.Write(runOut, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("wrote %s (bestY=%v, evaluations=%d)\n", runOut, res.BestY, res.Evaluations)
	return nil
}

func runModeProblem(prob bench.Problem) (*report.Result, error) {
	lower, upper := prob.Bounds()
	cfg := mode.Config{
		Dim:            prob.Dim(),
		Nobj:           prob.NObj(),
		Ncon:           prob.NCon(),
		Seed:           runSeed,
		Lower:          lower,
		Upper:          upper,
		Ints:           bounds.IntMask(prob.IntMask()),
		MaxEvaluations: runMaxEvals,
		PopSize:        runPopSize,
		Workers:        runWorkers,
		NSGAUpdate:     runNSGA,
	}
	fit := fitness.NewMultiObjective(prob.Eval, prob.NObj(), prob.NCon())

	var tracer *report.TraceWriter
	var logFn mode.LogFunc
	if runTrace != "" {
		var err error
		tracer, err = report.NewTraceWriter(runTrace)
		if err != nil {
			return nil, err
		}
		logFn = func(iteration int, x, y [][]float64) bool {
			if len(y) > 0 {
				tracer.Write(report.TraceEntry{Iteration: iteration, BestY: y[0], Timestamp: time.Now()})
			}
			return false
		}
	}

	optimizer := opt.NewMode(cfg, fit, logFn, runWorkers > 1)
	x, y := optimizer.Run()
	if tracer != nil {
		tracer.Close()
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("mode: optimization produced no survivors")
	}

	return &report.Result{
		Problem:     prob.Name(),
		Algorithm:   "mode",
		Seed:        runSeed,
		BestX:       x[0],
		BestY:       y[0],
		Population:  x,
		Values:      y,
		Evaluations: fit.Evaluations(),
		Stopped:     "evaluations",
	}, nil
}

func runLDEProblem(prob bench.Problem) (*report.Result, error) {
	lower, upper := prob.Bounds()
	init := make([]float64, prob.Dim())
	sigma := make([]float64, prob.Dim())
	for i := range init {
		init[i] = 0.5 * (lower[i] + upper[i])
		sigma[i] = 0.3 * (upper[i] - lower[i])
	}

	cfg := lde.Config{
		Dim:            prob.Dim(),
		Init:           init,
		Seed:           runSeed,
		Lower:          lower,
		Upper:          upper,
		Ints:           bounds.IntMask(prob.IntMask()),
		InputSigma:     sigma,
		MaxEvaluations: runMaxEvals,
		PopSize:        runPopSize,
		StopFitness:    -1e18,
	}
	fit := fitness.NewSingleObjective(func(x []float64) float64 { return prob.Eval(x)[0] })

	optimizer := opt.NewLDE(cfg, fit)
	x, y := optimizer.Run()
	if len(x) == 0 {
		return nil, fmt.Errorf("lde: optimization produced no result")
	}

	return &report.Result{
		Problem:     prob.Name(),
		Algorithm:   "lde",
		Seed:        runSeed,
		BestX:       x[0],
		BestY:       y[0],
		Evaluations: fit.Evaluations(),
		Stopped:     "evaluations",
	}, nil
}
