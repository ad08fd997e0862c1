package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// Lifecycle releases what SetupLifecycle acquired.
type Lifecycle struct {
	cancelTimeout context.CancelFunc
	stopSignals   context.CancelFunc
}

// SetupLifecycle derives a context that ends after timeout or on SIGINT or
// SIGTERM, whichever comes first. A non-positive timeout means no deadline.
// Defer Cleanup on the returned Lifecycle.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *Lifecycle) {
	l := &Lifecycle{}
	if timeout > 0 {
		ctx, l.cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, l.stopSignals = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, l
}

// Cleanup stops signal delivery and cancels the timeout. It is safe to call
// more than once.
func (l *Lifecycle) Cleanup() {
	if l.stopSignals != nil {
		l.stopSignals()
	}
	if l.cancelTimeout != nil {
		l.cancelTimeout()
	}
}
