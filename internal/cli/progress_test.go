package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/stretchr/testify/assert"

	"github.com/agbru/powkit/internal/fibonacci"
)

type mockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *mockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *mockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *mockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func useMockSpinner(t *testing.T) *mockSpinner {
	t.Helper()
	mock := &mockSpinner{}
	original := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return mock }
	t.Cleanup(func() { newSpinner = original })
	return mock
}

func TestProgressStateAverage(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(2)
	assert.Zero(t, ps.Average())
	ps.Update(0, 0.5)
	ps.Update(1, 1.0)
	ps.Update(5, 1.0)
	ps.Update(-1, 1.0)
	assert.InDelta(t, 0.75, ps.Average(), 1e-12)
	assert.Zero(t, NewProgressState(-3).Average())
}

func TestProgressStateETA(t *testing.T) {
	t.Parallel()
	ps := NewProgressState(1)
	now := ps.start
	ps.now = func() time.Time { return now }

	assert.Zero(t, ps.ETA(), "no progress yet")

	now = ps.start.Add(10 * time.Second)
	ps.Update(0, 0.25)
	assert.Equal(t, 30*time.Second, ps.ETA())

	ps.Update(0, 1.0)
	assert.Zero(t, ps.ETA(), "finished")

	ps.Update(0, 0.002)
	now = ps.start.Add(time.Hour)
	assert.Equal(t, 24*time.Hour, ps.ETA(), "capped")
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "calculating...", FormatETA(0))
	assert.Equal(t, "< 1s", FormatETA(300*time.Millisecond))
	assert.Equal(t, "1m5s", FormatETA(65*time.Second+200*time.Millisecond))
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "██░░", progressBar(0.5, 4))
	assert.Equal(t, "░░░░", progressBar(-1, 4))
	assert.Equal(t, "████", progressBar(2, 4))
}

func TestProgressLineLabel(t *testing.T) {
	t.Parallel()
	assert.True(t, strings.HasPrefix(progressLine(NewProgressState(1), 0.5, "1s"), "Progress:  50.00%"))
	assert.True(t, strings.HasPrefix(progressLine(NewProgressState(3), 0.5, "1s"), "Avg progress:"))
}

func TestDisplayProgress(t *testing.T) {
	mock := useMockSpinner(t)
	var buf bytes.Buffer
	var wg sync.WaitGroup
	ch := make(chan fibonacci.ProgressUpdate, 4)

	wg.Add(1)
	go DisplayProgress(&wg, ch, 2, &buf)
	ch <- fibonacci.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
	ch <- fibonacci.ProgressUpdate{CalculatorIndex: 1, Value: 1.0}
	close(ch)
	wg.Wait()

	assert.True(t, mock.started)
	assert.True(t, mock.stopped)
	assert.Contains(t, buf.String(), "100.00%")
}

func TestDisplayProgressWithoutCalculatorsDrains(t *testing.T) {
	mock := useMockSpinner(t)
	var buf bytes.Buffer
	var wg sync.WaitGroup
	ch := make(chan fibonacci.ProgressUpdate, 1)
	ch <- fibonacci.ProgressUpdate{Value: 0.3}
	close(ch)

	wg.Add(1)
	DisplayProgress(&wg, ch, 0, &buf)
	wg.Wait()

	assert.False(t, mock.started)
	assert.Empty(t, buf.String())
}
