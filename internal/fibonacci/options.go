package fibonacci

// DefaultProgressStep is the smallest progress change worth reporting.
const DefaultProgressStep = 0.01

// Options configures a Fibonacci calculation.
type Options struct {
	// ProgressStep is the minimum progress change between two reports.
	// If 0, DefaultProgressStep is used.
	ProgressStep float64
}

// normalizeOptions returns a copy of opts with defaults filled in.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.ProgressStep <= 0 || normalized.ProgressStep > 1 {
		normalized.ProgressStep = DefaultProgressStep
	}
	return normalized
}
