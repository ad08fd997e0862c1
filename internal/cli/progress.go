// Package cli renders powkit results: big integers, semiring matrices,
// progress, the environment banner and the metrics dump.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/powkit/internal/fibonacci"
)

// ProgressRefreshRate is the spinner and progress bar refresh period.
const ProgressRefreshRate = 200 * time.Millisecond

// ProgressBarWidth is the width of the progress bar in characters.
const ProgressBarWidth = 40

// Spinner abstracts the terminal spinner so tests can observe it.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)}
}

// ProgressState aggregates the progress of concurrent calculators and
// estimates the time remaining from the average rate so far.
type ProgressState struct {
	progresses []float64
	start      time.Time
	now        func() time.Time
}

// NewProgressState tracks numCalculators calculators.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{progresses: make([]float64, numCalculators), start: time.Now(), now: time.Now}
}

// Update records value for calculator index. Out-of-range indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// Average returns the mean progress over all calculators.
func (ps *ProgressState) Average() float64 {
	if len(ps.progresses) == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(len(ps.progresses))
}

// ETA extrapolates the remaining time linearly. It returns 0 while there is
// not enough progress to extrapolate from.
func (ps *ProgressState) ETA() time.Duration {
	avg := ps.Average()
	if avg <= 0.001 || avg >= 1 {
		return 0
	}
	elapsed := ps.now().Sub(ps.start)
	eta := time.Duration(float64(elapsed) * (1 - avg) / avg)
	if eta > 24*time.Hour {
		eta = 24 * time.Hour
	}
	return eta
}

// FormatETA renders an ETA for the progress line.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	default:
		return eta.Round(time.Second).String()
	}
}

// progressBar renders progress (clamped to [0, 1]) as a bar of length cells.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

func progressLine(ps *ProgressState, progress float64, eta string) string {
	label := "Progress"
	if len(ps.progresses) > 1 {
		label = "Avg progress"
	}
	return fmt.Sprintf("%s: %6.2f%% [%s] ETA: %s", label, progress*100, progressBar(progress, ProgressBarWidth), eta)
}

// DisplayProgress drives the spinner from progressChan until it is closed,
// then prints a final 100% line. It is meant to run in its own goroutine.
//
// Parameters:
//   - wg: Signalled when the display routine returns.
//   - progressChan: The channel receiving progress updates.
//   - numCalculators: The number of calculators reporting on progressChan.
//   - out: Where the spinner and the final line are written.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	if numCalculators <= 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(numCalculators)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				fmt.Fprintln(out, progressLine(state, 1.0, "< 1s"))
				return
			}
			state.Update(update.CalculatorIndex, update.Value)
		case <-ticker.C:
			s.UpdateSuffix(" " + progressLine(state, state.Average(), FormatETA(state.ETA())))
		}
	}
}
