// Package fibonacci computes Fibonacci numbers as powers of the matrix
// [[1, 1], [1, 0]]. The engine, Fibonacci, raises a two-number vector
// representation with algebra.PowerSemigroup; the other calculators compute
// the same power with the generic semiring matrix code, the unrolled 2×2
// product, or the linear recurrence, and serve as cross-checks.
//
// Calculators are wrapped by FibCalculator, which adds progress observers,
// Prometheus metrics and an OpenTelemetry span around every run.
package fibonacci

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/powkit/internal/errors"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "powkit_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "powkit_calculation_duration_seconds",
			Help: "The duration of Fibonacci calculations in seconds",
		},
		[]string{"algorithm"},
	)
	operatorApplications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "powkit_operator_applications_total",
			Help: "Binary operator applications performed by power computations",
		},
		[]string{"algorithm"},
	)
)

// Calculator is the interface the orchestration layer drives.
type Calculator interface {
	// Calculate computes F(n). It is safe for concurrent use and honours
	// cancellation of ctx. Progress updates are sent to progressChan without
	// blocking; a nil channel disables them.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates.
	//   - calcIndex: A unique index for the calculator instance.
	//   - n: The index of the Fibonacci number to calculate.
	//   - opts: Configuration options for the calculation.
	//
	// Returns:
	//   - *big.Int: The calculated Fibonacci number.
	//   - error: An error if one occurred (e.g., context cancellation).
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64, opts Options) (*big.Int, error)

	// Name returns the registry name of the algorithm (e.g. "vector").
	Name() string

	// Description returns a human-readable summary of the algorithm.
	Description() string
}

// ObservableCalculator is a Calculator whose progress can be delivered to
// an arbitrary set of observers instead of a single channel.
type ObservableCalculator interface {
	Calculator
	CalculateWithObservers(ctx context.Context, subject *ProgressSubject, calcIndex int, n uint64, opts Options) (*big.Int, error)
}

// coreCalculator is a bare algorithm without the cross-cutting concerns.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error)
	Name() string
	Description() string
}

// FibCalculator decorates a coreCalculator with observers, metrics, tracing
// and logging.
type FibCalculator struct {
	core coreCalculator
}

var _ ObservableCalculator = (*FibCalculator)(nil)

// NewCalculator wraps core. It panics if core is nil.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the `coreCalculator` implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name implements Calculator.
func (c *FibCalculator) Name() string { return c.core.Name() }

// Description implements Calculator.
func (c *FibCalculator) Description() string { return c.core.Description() }

// Calculate implements Calculator by registering a ChannelObserver and
// delegating to CalculateWithObservers.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64, opts Options) (*big.Int, error) {
	subject := NewProgressSubject()
	if progressChan != nil {
		subject.Register(NewChannelObserver(progressChan))
	}
	return c.CalculateWithObservers(ctx, subject, calcIndex, n, opts)
}

// CalculateWithObservers runs the wrapped algorithm and notifies every
// observer of subject. A nil subject disables progress reporting.
//
// The context is checked before the computation starts and again once it
// returns; a calculation that finishes after its deadline is reported as
// canceled.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - subject: The progress subject with registered observers.
//   - calcIndex: A unique index for the calculator instance.
//   - n: The index of the Fibonacci number to calculate.
//   - opts: Configuration options for the calculation.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: An error if one occurred.
func (c *FibCalculator) CalculateWithObservers(ctx context.Context, subject *ProgressSubject, calcIndex int, n uint64, opts Options) (result *big.Int, err error) {
	name := c.core.Name()
	ctx, span := otel.Tracer("fibonacci").Start(ctx, "Calculate")
	span.SetAttributes(
		attribute.String("algorithm", name),
		attribute.Int64("n", int64(n)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		calculationsTotal.WithLabelValues(name, status).Inc()
		calculationDuration.WithLabelValues(name).Observe(duration)

		log.Debug().
			Str("algo", name).
			Uint64("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	reporter := ProgressReporter(func(float64) {})
	if subject != nil {
		reporter = subject.AsProgressReporter(calcIndex)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err = c.core.CalculateCore(ctx, reporter, n, normalizeOptions(opts))
	if err != nil {
		return nil, apperrors.CalculationError{Engine: name, Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reporter(1.0)
	return result, nil
}

// recordApplications adds a finished run's operator count to the metrics.
func recordApplications(algorithm string, count int) {
	operatorApplications.WithLabelValues(algorithm).Add(float64(count))
}
