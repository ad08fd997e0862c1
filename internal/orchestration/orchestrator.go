// Package orchestration runs engines concurrently and cross-checks their
// results: every Fibonacci calculator against the others, and the tropical
// shortest-path engine against Bellman-Ford relaxation.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/powkit/internal/cli"
	"github.com/agbru/powkit/internal/config"
	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/fibonacci"
	"github.com/agbru/powkit/internal/paths"
	"github.com/agbru/powkit/internal/semiring"
	"github.com/agbru/powkit/internal/ui"
)

// CalculationResult is the outcome of one calculator run.
type CalculationResult struct {
	// Name is the calculator name, e.g. "vector".
	Name string
	// Result is F(n), or nil if Err is set.
	Result *big.Int
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is the failure, if any.
	Err error
}

// ProgressBufferMultiplier sizes the progress channel per calculator so that
// a slow display does not stall the calculators.
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs every calculator concurrently for cfg.N and
// collects one result per calculator, in input order. Progress is rendered
// on progressOut; pass io.Discard to suppress it. Calculators implementing
// fibonacci.ObservableCalculator also report to observers.
//
// Parameters:
//   - ctx: Cancels all calculators.
//   - calculators: The calculators to run.
//   - cfg: Supplies N and the calculation options.
//   - progressOut: Where the progress display is written.
//   - observers: Extra progress observers, e.g. logging or metrics.
//
// Returns:
//   - []CalculationResult: One entry per calculator. Failures are recorded
//     in Err and do not stop the other calculators.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, progressOut io.Writer, observers ...fibonacci.ProgressObserver) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, len(calculators), progressOut)

	opts := cfg.ToCalculationOptions()
	for i, calc := range calculators {
		i, calc := i, calc
		g.Go(func() error {
			start := time.Now()
			var (
				res *big.Int
				err error
			)
			if oc, ok := calc.(fibonacci.ObservableCalculator); ok && len(observers) > 0 {
				subject := fibonacci.NewProgressSubject(observers...)
				subject.Register(fibonacci.NewChannelObserver(progressChan))
				res, err = oc.CalculateWithObservers(ctx, subject, i, cfg.N, opts)
			} else {
				res, err = calc.Calculate(ctx, progressChan, i, cfg.N, opts)
			}
			results[i] = CalculationResult{Name: calc.Name(), Result: res, Duration: time.Since(start), Err: err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()
	return results
}

// Summary condenses a set of calculation results.
type Summary struct {
	// Fastest is the quickest successful result; its Result is nil when
	// every calculator failed.
	Fastest CalculationResult
	// Successes counts the runs without error.
	Successes int
	// FirstError is the error of the first failed run in sorted order.
	FirstError error
	// Mismatch is set when two successful runs disagree.
	Mismatch bool
}

// Summarize sorts results in place (successes first, then by duration) and
// checks that every successful result is the same number.
func Summarize(results []CalculationResult) Summary {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var s Summary
	for _, res := range results {
		if res.Err != nil {
			if s.FirstError == nil {
				s.FirstError = res.Err
			}
			continue
		}
		s.Successes++
		if s.Fastest.Result == nil {
			s.Fastest = res
		} else if res.Result.Cmp(s.Fastest.Result) != 0 {
			s.Mismatch = true
		}
	}
	return s
}

// AnalyzeComparisonResults prints a comparison table of results followed by
// the agreed value, and returns the process exit code: ExitErrorMismatch
// when calculators disagree, the mapped error code when all of them failed.
func AnalyzeComparisonResults(results []CalculationResult, cfg config.AppConfig, out io.Writer) int {
	summary := Summarize(results)
	t := ui.CurrentTheme()

	fmt.Fprintf(out, "\n%s\n", t.Paint(t.Heading, "--- Comparison Summary ---"))
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tDuration\tStatus")
	for _, res := range results {
		status := t.Paint(t.Success, "Success")
		if res.Err != nil {
			status = t.Paint(t.Error, fmt.Sprintf("Failure (%v)", res.Err))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", res.Name, cli.FormatExecutionDuration(res.Duration), status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush table: %v\n", err)
	}

	switch {
	case summary.Successes == 0:
		fmt.Fprintln(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.")
		return apperrors.HandleCalculationError(summary.FirstError, 0, out, cli.ColorProvider{})
	case summary.Mismatch:
		fmt.Fprintln(out, t.Paint(t.Error, "\nGlobal Status: CRITICAL ERROR! The algorithms returned different results."))
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintln(out, t.Paint(t.Success, "\nGlobal Status: Success. All valid results are consistent."))
	cli.DisplayResult(out, fmt.Sprintf("F(%d)", cfg.N), summary.Fastest.Result, summary.Fastest.Duration, cfg.Verbose, cfg.Details)
	return apperrors.ExitSuccess
}

// PathComparison holds the distances computed by both shortest-path engines.
type PathComparison struct {
	Tropical           paths.Graph
	Relaxation         paths.Graph
	TropicalDuration   time.Duration
	RelaxationDuration time.Duration
	// NegativeCycle is set when the graph has a cycle of negative weight.
	// The engines are not expected to agree in that case.
	NegativeCycle bool
	// Agree reports entry-wise equality of the two matrices.
	Agree bool
}

// ComparePathEngines computes the shortest distances of graph with
// paths.ShortestPaths and paths.RelaxationDistances concurrently. The first
// engine error cancels the other one and is returned.
func ComparePathEngines(ctx context.Context, graph paths.Graph) (PathComparison, error) {
	var cmp PathComparison
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		dist, err := paths.ShortestPaths(graph)
		cmp.TropicalDuration = time.Since(start)
		if err != nil {
			return apperrors.CalculationError{Engine: "tropical", Cause: err}
		}
		cmp.Tropical = dist
		return gctx.Err()
	})
	g.Go(func() error {
		start := time.Now()
		dist, err := paths.RelaxationDistances(gctx, graph)
		cmp.RelaxationDuration = time.Since(start)
		if err != nil {
			return apperrors.CalculationError{Engine: "relaxation", Cause: err}
		}
		cmp.Relaxation = dist
		return nil
	})
	if err := g.Wait(); err != nil {
		return PathComparison{}, err
	}

	negative, err := paths.HasNegativeCycle(graph, cmp.Tropical)
	if err != nil {
		return PathComparison{}, err
	}
	cmp.NegativeCycle = negative
	cmp.Agree = semiring.Equal(cmp.Tropical, cmp.Relaxation)
	log.Debug().
		Int("nodes", len(graph)).
		Bool("agree", cmp.Agree).
		Bool("negative_cycle", cmp.NegativeCycle).
		Dur("tropical", cmp.TropicalDuration).
		Dur("relaxation", cmp.RelaxationDuration).
		Msg("shortest path engines compared")
	return cmp, nil
}
