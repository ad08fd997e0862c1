// Package app wires configuration, engines and rendering into the powkit
// command: it dispatches on the selected mode and maps outcomes to exit
// codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/powkit/internal/algebra"
	"github.com/agbru/powkit/internal/cli"
	"github.com/agbru/powkit/internal/config"
	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/fibonacci"
	"github.com/agbru/powkit/internal/logging"
	"github.com/agbru/powkit/internal/orchestration"
	"github.com/agbru/powkit/internal/paths"
	"github.com/agbru/powkit/internal/ui"
)

// Application is one configured powkit invocation.
type Application struct {
	// Config holds the parsed command line.
	Config config.AppConfig
	// Factory provides the Fibonacci calculators.
	Factory fibonacci.CalculatorFactory
	// ErrWriter receives diagnostics and error messages.
	ErrWriter io.Writer
	// Logger records the start and end of each mode.
	Logger logging.Logger
	// Gatherer is dumped by -metrics.
	Gatherer prometheus.Gatherer
	// Graph is the input of the paths and reach modes.
	Graph paths.Graph

	logLevel zerolog.Level
}

// New parses args (args[0] is the program name) and returns a ready
// Application. The zerolog global logger is configured from -log-level.
//
// Parameters:
//   - args: The command line, typically os.Args.
//   - errWriter: Destination for usage, errors and logs.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp, a flag parse error, or a ConfigError.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := fibonacci.NewDefaultFactory()

	programName := "powkit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, factory.List())
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	logging.SetGlobal(errWriter, level)

	return &Application{
		Config:    cfg,
		Factory:   factory,
		ErrWriter: errWriter,
		Logger:    logging.NewLogger(errWriter, "app", level),
		Gatherer:  prometheus.DefaultGatherer,
		Graph:     paths.SampleGraph(),
		logLevel:  level,
	}, nil
}

// IsHelpError reports whether err means -h or -help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the configured mode within the configured timeout and until
// SIGINT or SIGTERM, and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancel.Cleanup()

	start := time.Now()
	a.Logger.Debug("run started", logging.String("mode", a.Config.Mode))

	var code int
	switch a.Config.Mode {
	case config.ModePaths:
		code = a.runPaths(ctx, out)
	case config.ModeReachability:
		code = a.runReachability(ctx, out)
	case config.ModePower:
		code = a.runPower(ctx, out)
	default:
		code = a.runFibonacci(ctx, out)
	}

	a.Logger.Debug("run finished",
		logging.String("mode", a.Config.Mode),
		logging.Int("exit_code", code),
		logging.Duration("duration", time.Since(start)))

	if a.Config.Metrics {
		if err := cli.DumpMetrics(out, a.Gatherer); err != nil {
			a.Logger.Error("metrics dump failed", err)
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

// showBanner reports whether human-oriented headers should be printed.
func (a *Application) showBanner() bool {
	return !a.Config.JSONOutput && !a.Config.Quiet
}

// fail reports err through the error handler and logs it.
func (a *Application) fail(err error, duration time.Duration, out io.Writer) int {
	a.Logger.Error("run failed", err, logging.String("mode", a.Config.Mode))
	return apperrors.HandleCalculationError(err, duration, out, cli.ColorProvider{})
}

func (a *Application) runFibonacci(ctx context.Context, out io.Writer) int {
	calculators := cli.GetCalculatorsToRun(a.Config, a.Factory)
	if len(calculators) == 0 {
		fmt.Fprintf(a.ErrWriter, "No calculator matches '%s'.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}
	if a.showBanner() {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculators, out)
	}

	progressOut := out
	if !a.showBanner() {
		progressOut = io.Discard
	}
	results := orchestration.ExecuteCalculations(ctx, calculators, a.Config, progressOut, a.progressObservers()...)

	switch {
	case a.Config.JSONOutput:
		return writeFibonacciJSON(results, out)
	case a.Config.Quiet:
		summary := orchestration.Summarize(results)
		if summary.Successes == 0 {
			return a.fail(summary.FirstError, 0, a.ErrWriter)
		}
		if summary.Mismatch {
			fmt.Fprintln(a.ErrWriter, "Results differ between calculators.")
			return apperrors.ExitErrorMismatch
		}
		fmt.Fprintln(out, summary.Fastest.Result.String())
		return apperrors.ExitSuccess
	}
	return orchestration.AnalyzeComparisonResults(results, a.Config, out)
}

// progressObservers returns the observers attached to each Fibonacci
// calculation besides the progress display: a logging observer at debug
// level and the progress gauge when -metrics is set.
func (a *Application) progressObservers() []fibonacci.ProgressObserver {
	var observers []fibonacci.ProgressObserver
	if a.logLevel <= zerolog.DebugLevel {
		logger := logging.NewLogger(a.ErrWriter, "progress", a.logLevel).Zerolog()
		observers = append(observers, fibonacci.NewLoggingObserver(logger, 0.1))
	}
	if a.Config.Metrics {
		m := fibonacci.NewMetricsObserver()
		m.ResetMetrics()
		observers = append(observers, m)
	}
	return observers
}

type fibonacciJSON struct {
	Algorithm string `json:"algorithm"`
	Duration  string `json:"duration"`
	Result    string `json:"result,omitempty"`
	Error     string `json:"error,omitempty"`
}

func writeFibonacciJSON(results []orchestration.CalculationResult, out io.Writer) int {
	summary := orchestration.Summarize(results)
	entries := make([]fibonacciJSON, len(results))
	for i, res := range results {
		entries[i] = fibonacciJSON{Algorithm: res.Name, Duration: res.Duration.String()}
		if res.Err != nil {
			entries[i].Error = res.Err.Error()
		} else {
			entries[i].Result = res.Result.String()
		}
	}
	if err := cli.WriteJSON(out, entries); err != nil {
		return apperrors.ExitErrorGeneric
	}
	switch {
	case summary.Successes == 0:
		return apperrors.HandleCalculationError(summary.FirstError, 0, io.Discard, nil)
	case summary.Mismatch:
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

type pathsJSON struct {
	Nodes         int          `json:"nodes"`
	Distances     [][]*float64 `json:"distances"`
	Agree         bool         `json:"engines_agree"`
	NegativeCycle bool         `json:"negative_cycle"`
}

func (a *Application) runPaths(ctx context.Context, out io.Writer) int {
	graph := a.Graph
	if a.showBanner() {
		cli.PrintExecutionConfig(a.Config, out)
		if err := cli.DisplayMatrix(out, "\nGraph", graph, cli.FormatWeight); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}

	start := time.Now()
	cmp, err := orchestration.ComparePathEngines(ctx, graph)
	if err != nil {
		return a.fail(err, time.Since(start), out)
	}
	mismatch := !cmp.Agree && !cmp.NegativeCycle

	if a.Config.JSONOutput {
		doc := pathsJSON{
			Nodes:         len(graph),
			Distances:     cli.WeightMatrixJSON(cmp.Tropical),
			Agree:         cmp.Agree,
			NegativeCycle: cmp.NegativeCycle,
		}
		if err := cli.WriteJSON(out, doc); err != nil {
			return apperrors.ExitErrorGeneric
		}
	} else {
		title := ""
		if a.showBanner() {
			title = "\nShortest distances"
		}
		if err := cli.DisplayMatrix(out, title, cmp.Tropical, cli.FormatWeight); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if a.showBanner() {
			a.printPathStatus(cmp, out)
		}
	}

	if mismatch {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

func (a *Application) printPathStatus(cmp orchestration.PathComparison, out io.Writer) {
	t := ui.CurrentTheme()
	switch {
	case cmp.NegativeCycle:
		fmt.Fprintln(out, t.Paint(t.Warning, "\nThe graph has a negative cycle: distances are not well defined."))
	case cmp.Agree:
		fmt.Fprintln(out, t.Paint(t.Success, "\nTropical power and relaxation agree."))
	default:
		fmt.Fprintln(out, t.Paint(t.Error, "\nCRITICAL ERROR! Tropical power and relaxation disagree."))
	}
	if a.Config.Details {
		fmt.Fprintf(out, "Tropical power : %s\n", cli.FormatExecutionDuration(cmp.TropicalDuration))
		fmt.Fprintf(out, "Relaxation     : %s\n", cli.FormatExecutionDuration(cmp.RelaxationDuration))
	}
}

func (a *Application) runReachability(ctx context.Context, out io.Writer) int {
	if err := ctx.Err(); err != nil {
		return a.fail(err, 0, out)
	}
	graph := a.Graph
	start := time.Now()
	reach, err := paths.Reachability(graph)
	if err != nil {
		return a.fail(err, time.Since(start), out)
	}
	if a.Config.JSONOutput {
		if err := cli.WriteJSON(out, map[string]any{"nodes": len(graph), "reachable": reach}); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}
	title := ""
	if a.showBanner() {
		cli.PrintExecutionConfig(a.Config, out)
		title = "\nReachability (reflexive transitive closure)"
	}
	if err := cli.DisplayMatrix(out, title, reach, cli.FormatReachable); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// powerOutcome is the result of the power mode.
type powerOutcome struct {
	Op           string `json:"op"`
	Operand      string `json:"operand"`
	Exponent     int    `json:"exponent"`
	Result       string `json:"result"`
	Value        string `json:"value,omitempty"`
	Applications int    `json:"applications"`
}

// countingOp wraps op so that every application calls onCombine.
func countingOp(op algebra.BinaryOp[*big.Int], onCombine func()) algebra.BinaryOp[*big.Int] {
	return func(x, y *big.Int) *big.Int {
		onCombine()
		return op(x, y)
	}
}

// integerAddition is the additive group of the integers.
func integerAddition(onCombine func()) algebra.Group[*big.Int] {
	add := func(x, y *big.Int) *big.Int { return new(big.Int).Add(x, y) }
	neg := func(x *big.Int) *big.Int { return new(big.Int).Neg(x) }
	return algebra.NewGroup(countingOp(add, onCombine), new(big.Int), neg)
}

// integerMultiplication is the multiplicative monoid of the integers.
func integerMultiplication(onCombine func()) algebra.Monoid[*big.Int] {
	mul := func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }
	return algebra.NewMonoid(countingOp(mul, onCombine), big.NewInt(1))
}

// computePower raises the configured operand under the configured
// structure: the integers under addition form a group, under
// multiplication a monoid, and the additive Roman numerals a semigroup.
func computePower(cfg config.AppConfig) (powerOutcome, error) {
	outcome := powerOutcome{Op: cfg.Op, Exponent: cfg.Exp, Operand: fmt.Sprint(cfg.Base)}
	count := func() { outcome.Applications++ }
	base := big.NewInt(cfg.Base)

	var (
		result fmt.Stringer
		err    error
	)
	switch cfg.Op {
	case config.OpAdd:
		result, err = algebra.PowerGroup(base, cfg.Exp, integerAddition(count))
	case config.OpMul:
		result, err = algebra.PowerMonoid(base, cfg.Exp, integerMultiplication(count))
	case config.OpRoman:
		numeral, perr := algebra.ParseRoman(cfg.Roman)
		if perr != nil {
			return powerOutcome{}, perr
		}
		outcome.Operand = numeral.String()
		s := algebra.Instrumented[algebra.Roman]{Semigroup: algebra.RomanAddition, OnCombine: count}
		r, rerr := algebra.PowerSemigroup(numeral, cfg.Exp, s)
		if rerr != nil {
			return powerOutcome{}, rerr
		}
		outcome.Value = fmt.Sprint(r.Value())
		result = r
	default:
		return powerOutcome{}, apperrors.NewConfigError("unknown operator: '%s'", cfg.Op)
	}
	if err != nil {
		return powerOutcome{}, err
	}
	outcome.Result = result.String()
	return outcome, nil
}

func (a *Application) runPower(ctx context.Context, out io.Writer) int {
	if err := ctx.Err(); err != nil {
		return a.fail(err, 0, out)
	}
	if a.showBanner() {
		cli.PrintExecutionConfig(a.Config, out)
	}
	start := time.Now()
	outcome, err := computePower(a.Config)
	duration := time.Since(start)
	if err != nil {
		return a.fail(err, duration, out)
	}

	switch {
	case a.Config.JSONOutput:
		if err := cli.WriteJSON(out, outcome); err != nil {
			return apperrors.ExitErrorGeneric
		}
	case a.Config.Quiet:
		fmt.Fprintln(out, outcome.Result)
	default:
		t := ui.CurrentTheme()
		label := fmt.Sprintf("power(%s, %d, %s)", outcome.Operand, outcome.Exponent, outcome.Op)
		if result, ok := new(big.Int).SetString(outcome.Result, 10); ok {
			cli.DisplayResult(out, label, result, duration, a.Config.Verbose, a.Config.Details)
		} else {
			fmt.Fprintf(out, "%s = %s (%s)\n", t.Paint(t.Bold, label), t.Paint(t.Value, outcome.Result), outcome.Value)
		}
		if a.Config.Details {
			n := outcome.Exponent
			if n < 0 {
				n = -n
			}
			fmt.Fprintf(out, "Applications     : %d (minimum for |n| = %d is %d)\n",
				outcome.Applications, n, algebra.MinOperations(n))
		}
	}
	return apperrors.ExitSuccess
}
