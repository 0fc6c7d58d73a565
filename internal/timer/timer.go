// Package timer implements the start/stop stopwatch that records time entries.
package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ganot/freelanceflow/internal/domain/timeentry"
)

// State is the stopwatch state.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

var (
	// ErrAlreadyRunning is returned by Start while the timer runs.
	ErrAlreadyRunning = errors.New("timer already running")
	// ErrNotRunning is returned by Stop while the timer is idle.
	ErrNotRunning = errors.New("timer not running")
)

// Recorder persists finished sessions. *timeentry.Service implements it.
type Recorder interface {
	Record(ctx context.Context, req timeentry.RecordRequest) (*timeentry.TimeEntry, error)
}

// TickSource returns a channel delivering one value per elapsed second and a
// function releasing it.
type TickSource func() (<-chan time.Time, func())

// SecondTicker is the production tick source.
func SecondTicker() (<-chan time.Time, func()) {
	t := time.NewTicker(time.Second)
	return t.C, t.Stop
}

// Snapshot is a point-in-time view of the timer.
type Snapshot struct {
	State   State  `json:"state"`
	Seconds int64  `json:"seconds"`
	Display string `json:"display"`
}

// Timer counts whole seconds while running. The count lives in memory only.
type Timer struct {
	mu       sync.Mutex
	state    State
	seconds  int64
	cancel   context.CancelFunc
	done     chan struct{}
	ticks    TickSource
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an idle timer. A nil ticks uses SecondTicker.
func New(recorder Recorder, ticks TickSource, logger *slog.Logger) *Timer {
	if ticks == nil {
		ticks = SecondTicker
	}
	return &Timer{
		state:    StateIdle,
		ticks:    ticks,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Start begins counting from the current value.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, release := t.ticks()
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done
	t.state = StateRunning

	go t.run(ctx, ch, release, done)
	return nil
}

func (t *Timer) run(ctx context.Context, ch <-chan time.Time, release func(), done chan struct{}) {
	defer close(done)
	defer release()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			t.mu.Lock()
			t.seconds++
			t.mu.Unlock()
		}
	}
}

// Stop halts the timer, records a time entry when at least one second
// elapsed, and resets the counter. The returned entry is nil when nothing
// was recorded.
func (t *Timer) Stop(ctx context.Context, description string) (*timeentry.TimeEntry, error) {
	t.mu.Lock()
	if t.state != StateRunning {
		t.mu.Unlock()
		return nil, ErrNotRunning
	}
	cancel, done := t.cancel, t.done
	t.mu.Unlock()

	cancel()
	<-done

	t.mu.Lock()
	seconds := t.seconds
	t.seconds = 0
	t.state = StateIdle
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()

	if seconds <= 0 {
		return nil, nil
	}

	entry, err := t.recorder.Record(ctx, timeentry.RecordRequest{
		Project:     timeentry.DefaultProject,
		Description: description,
		Seconds:     seconds,
		At:          t.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("recording timer session: %w", err)
	}
	if t.logger != nil {
		t.logger.Info("timer stopped", "seconds", seconds, "entry_id", entry.ID)
	}
	return entry, nil
}

// Toggle starts an idle timer or stops a running one.
func (t *Timer) Toggle(ctx context.Context, description string) (*timeentry.TimeEntry, error) {
	if t.Snapshot().State == StateRunning {
		return t.Stop(ctx, description)
	}
	return nil, t.Start()
}

// Shutdown stops the ticking goroutine without recording anything.
func (t *Timer) Shutdown() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done

	t.mu.Lock()
	t.state = StateIdle
	t.seconds = 0
	t.cancel = nil
	t.done = nil
	t.mu.Unlock()
}

// Snapshot returns the current state and elapsed seconds.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{
		State:   t.state,
		Seconds: t.seconds,
		Display: timeentry.FormatDuration(t.seconds),
	}
}
