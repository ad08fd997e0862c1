package fibonacci

// ProgressUpdate is a data transfer object (DTO) that encapsulates the
// progress state of a calculation. It is sent over a channel from the
// calculator to the user interface to provide asynchronous progress updates.
type ProgressUpdate struct {
	// CalculatorIndex is a unique identifier for the calculator instance, allowing
	// the UI to distinguish between multiple concurrent calculations.
	CalculatorIndex int
	// Value represents the normalized progress of the calculation, ranging from 0.0 to 1.0.
	Value float64
}

// ProgressReporter is the callback core algorithms use to publish progress
// without knowing who listens.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
type ProgressReporter func(progress float64)

// stepCounter turns a count of completed operator applications into
// throttled progress reports. It is driven from the single goroutine running
// the calculation and is not safe for concurrent use.
type stepCounter struct {
	reporter ProgressReporter
	total    int
	done     int
	step     float64
	last     float64
}

// newStepCounter returns a counter expecting total applications. A
// non-positive total means the work is trivial and nothing is reported.
func newStepCounter(reporter ProgressReporter, total int, step float64) *stepCounter {
	if reporter == nil {
		reporter = func(float64) {}
	}
	return &stepCounter{reporter: reporter, total: total, step: step}
}

// Tick records one application and reports when progress advanced by at
// least the configured step.
func (c *stepCounter) Tick() {
	c.done++
	if c.total <= 0 {
		return
	}
	p := float64(c.done) / float64(c.total)
	if p > 1 {
		p = 1
	}
	if p-c.last >= c.step || c.done == c.total {
		c.reporter(p)
		c.last = p
	}
}

// Done returns the number of recorded applications.
func (c *stepCounter) Done() int { return c.done }
