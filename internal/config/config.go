// Package config parses and validates the powkit command line. Flags take
// precedence over POWKIT_* environment variables, which take precedence over
// the defaults below.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/powkit/internal/algebra"
	apperrors "github.com/agbru/powkit/internal/errors"
	"github.com/agbru/powkit/internal/fibonacci"
	"github.com/agbru/powkit/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by powkit.
const EnvPrefix = "POWKIT_"

// Modes.
const (
	ModeFibonacci    = "fib"
	ModePaths        = "paths"
	ModePower        = "power"
	ModeReachability = "reach"
)

// Operators for the power mode.
const (
	OpAdd   = "add"
	OpMul   = "mul"
	OpRoman = "roman"
)

// Default configuration values.
const (
	DefaultMode     = ModeFibonacci
	DefaultN uint64 = 100
	DefaultAlgo     = "all"
	DefaultBase     = 41
	DefaultExp      = 59
	DefaultOp       = OpAdd
	DefaultRoman    = "LVIIII"
	DefaultTimeout  = time.Minute
	DefaultLogLevel = "warn"
)

var (
	validModes = []string{ModeFibonacci, ModePaths, ModePower, ModeReachability}
	validOps   = []string{OpAdd, OpMul, OpRoman}
)

// AppConfig holds the parsed command line.
type AppConfig struct {
	// Mode selects what to compute: fib, paths, power or reach.
	Mode string
	// N is the Fibonacci index for the fib mode.
	N uint64
	// Algo is "all" or the name of one Fibonacci calculator.
	Algo string
	// Base is the operand of the power mode for the add and mul operators.
	Base int64
	// Exp is the exponent of the power mode.
	Exp int
	// Op selects the structure of the power mode: add (group), mul (monoid)
	// or roman (semigroup).
	Op string
	// Roman is the operand of the power mode for the roman operator.
	Roman string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// JSONOutput prints results as JSON.
	JSONOutput bool
	// Quiet prints only the result.
	Quiet bool
	// Verbose prints big numbers in full.
	Verbose bool
	// Details adds timing and structure information to the report.
	Details bool
	// NoColor disables ANSI colors. NO_COLOR is honoured as well.
	NoColor bool
	// Metrics dumps the Prometheus registry after the run.
	Metrics bool
	// LogLevel is the zerolog level for diagnostics on stderr.
	LogLevel string
	// ProgressStep is the minimum progress change between two updates.
	ProgressStep float64
}

// ToCalculationOptions converts the configuration into fibonacci.Options.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	return fibonacci.Options{ProgressStep: c.ProgressStep}
}

// Validate checks the configuration for consistency.
//
// Parameters:
//   - availableAlgos: The registered Fibonacci calculator names.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate(availableAlgos []string) error {
	if !slices.Contains(validModes, c.Mode) {
		return apperrors.NewConfigError("unknown mode: '%s'. Valid modes are: [%s]", c.Mode, strings.Join(validModes, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Algo != DefaultAlgo && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.ProgressStep < 0 || c.ProgressStep > 1 {
		return apperrors.NewConfigError("progress step must be within [0, 1]: %g", c.ProgressStep)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Mode == ModePower {
		return c.validatePower()
	}
	return nil
}

// validatePower rejects exponents the chosen structure cannot take: a
// monoid has no inverses and the Roman numerals have no identity.
func (c AppConfig) validatePower() error {
	switch c.Op {
	case OpAdd:
	case OpMul:
		if c.Exp < 0 {
			return apperrors.NewConfigError("operator 'mul' is a monoid: exponent must be >= 0, got %d", c.Exp)
		}
	case OpRoman:
		if c.Exp < 1 {
			return apperrors.NewConfigError("operator 'roman' is a semigroup: exponent must be >= 1, got %d", c.Exp)
		}
		if _, err := algebra.ParseRoman(c.Roman); err != nil {
			return apperrors.NewConfigError("invalid roman operand: %v", err)
		}
	default:
		return apperrors.NewConfigError("unknown operator: '%s'. Valid operators are: [%s]", c.Op, strings.Join(validOps, ", "))
	}
	return nil
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// and validates the result. Usage and errors are written to errorWriter.
//
// Parameters:
//   - programName: The program name shown in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Destination for parse errors and usage.
//   - availableAlgos: The registered Fibonacci calculator names.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: flag.ErrHelp, a parse error, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Mode, "mode", DefaultMode, "What to compute: fib, paths, power or reach.")
	fs.Uint64Var(&config.N, "n", DefaultN, "Index n of the Fibonacci number (fib mode).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo,
		fmt.Sprintf("Fibonacci calculator: 'all' or one of [%s].", strings.Join(availableAlgos, ", ")))
	fs.Int64Var(&config.Base, "base", DefaultBase, "Operand for the add and mul operators (power mode).")
	fs.IntVar(&config.Exp, "exp", DefaultExp, "Exponent (power mode).")
	fs.StringVar(&config.Op, "op", DefaultOp, "Operator: add (group), mul (monoid) or roman (semigroup).")
	fs.StringVar(&config.Roman, "roman", DefaultRoman, "Additive Roman numeral operand for -op roman.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display big results in full.")
	fs.BoolVar(&config.Details, "d", false, "Display timing and structure details.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print Prometheus metrics after the run.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level: debug, info, warn, error or disabled.")
	fs.Float64Var(&config.ProgressStep, "progress-step", fibonacci.DefaultProgressStep, "Minimum progress change between updates.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errorWriter, "Unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments")
	}

	applyEnvOverrides(&config, fs)

	config.Mode = strings.ToLower(config.Mode)
	config.Algo = strings.ToLower(config.Algo)
	config.Op = strings.ToLower(config.Op)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// setCustomUsage prints the flag list followed by the environment variables.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", fs.Name())
		fmt.Fprintln(out, "Computes powers in semigroups, monoids, groups and matrix semirings.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEvery flag can also be set through %s<NAME>, e.g. %sMODE=paths.\n", EnvPrefix, EnvPrefix)
	}
}
