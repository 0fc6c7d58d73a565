package timer

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/stretchr/testify/require"
)

type manualTicks struct {
	ch chan time.Time
}

func newManualTicks() *manualTicks {
	return &manualTicks{ch: make(chan time.Time)}
}

func (m *manualTicks) source() (<-chan time.Time, func()) {
	return m.ch, func() {}
}

// advance blocks until the timer goroutine has received n ticks.
func (m *manualTicks) advance(n int) {
	for i := 0; i < n; i++ {
		m.ch <- time.Now()
	}
}

type recorderStub struct {
	requests []timeentry.RecordRequest
}

func (r *recorderStub) Record(_ context.Context, req timeentry.RecordRequest) (*timeentry.TimeEntry, error) {
	r.requests = append(r.requests, req)
	return &timeentry.TimeEntry{
		ID:              "t1",
		Project:         req.Project,
		Description:     req.Description,
		Duration:        timeentry.FormatDuration(req.Seconds),
		DurationSeconds: req.Seconds,
	}, nil
}

func TestTimer_StopRecordsElapsedSeconds(t *testing.T) {
	for _, seconds := range []int{1, 3, 75} {
		ticks := newManualTicks()
		rec := &recorderStub{}
		tm := New(rec, ticks.source, nil)

		require.NoError(t, tm.Start())
		ticks.advance(seconds)

		entry, err := tm.Stop(context.Background(), "Design review")
		require.NoError(t, err)
		require.NotNil(t, entry)
		require.Len(t, rec.requests, 1)
		require.Equal(t, int64(seconds), rec.requests[0].Seconds)
		require.Equal(t, timeentry.DefaultProject, rec.requests[0].Project)
		require.Equal(t, "Design review", rec.requests[0].Description)

		snap := tm.Snapshot()
		require.Equal(t, StateIdle, snap.State)
		require.Zero(t, snap.Seconds)
		require.Equal(t, "00:00:00", snap.Display)
	}
}

func TestTimer_StopAtZeroRecordsNothing(t *testing.T) {
	ticks := newManualTicks()
	rec := &recorderStub{}
	tm := New(rec, ticks.source, nil)

	require.NoError(t, tm.Start())
	entry, err := tm.Stop(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, entry)
	require.Empty(t, rec.requests)
}

func TestTimer_Toggle(t *testing.T) {
	ticks := newManualTicks()
	rec := &recorderStub{}
	tm := New(rec, ticks.source, nil)
	ctx := context.Background()

	entry, err := tm.Toggle(ctx, "")
	require.NoError(t, err)
	require.Nil(t, entry)
	require.Equal(t, StateRunning, tm.Snapshot().State)

	ticks.advance(2)
	entry, err = tm.Toggle(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Equal(t, int64(2), entry.DurationSeconds)
	require.Equal(t, StateIdle, tm.Snapshot().State)
}

func TestTimer_StateErrors(t *testing.T) {
	ticks := newManualTicks()
	tm := New(&recorderStub{}, ticks.source, nil)

	_, err := tm.Stop(context.Background(), "")
	require.ErrorIs(t, err, ErrNotRunning)

	require.NoError(t, tm.Start())
	require.ErrorIs(t, tm.Start(), ErrAlreadyRunning)

	ticks.advance(4)
	tm.Shutdown()
	snap := tm.Snapshot()
	require.Equal(t, StateIdle, snap.State)
	require.Zero(t, snap.Seconds)
}

func TestTimer_SnapshotDisplay(t *testing.T) {
	ticks := newManualTicks()
	tm := New(&recorderStub{}, ticks.source, nil)

	require.NoError(t, tm.Start())
	ticks.advance(61)

	require.Eventually(t, func() bool {
		return tm.Snapshot().Seconds == 61
	}, time.Second, time.Millisecond)
	require.Equal(t, "00:01:01", tm.Snapshot().Display)
	tm.Shutdown()
}
