package timeentry_test

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "00:00:00", timeentry.FormatDuration(0))
	require.Equal(t, "00:00:59", timeentry.FormatDuration(59))
	require.Equal(t, "01:01:01", timeentry.FormatDuration(3661))
	require.Equal(t, "100:00:00", timeentry.FormatDuration(360000))
	require.Equal(t, "00:00:00", timeentry.FormatDuration(-4))
}

func TestTimeEntryService_RecordDefaults(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	repo := &mocks.TimeEntryRepository{}
	notifier := &mocks.Notifier{}
	repo.On("Load", ctx).Return([]timeentry.TimeEntry{{ID: "t1", Project: "Website", DurationSeconds: 60}}, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(list []timeentry.TimeEntry) bool {
		return len(list) == 2 && list[0].DurationSeconds == 90 && list[1].ID == "t1"
	})).Return(nil)
	notifier.On("Notify", ctx, activity.EntityTimeEntry, mock.Anything, activity.TypeCreated, timeentry.MsgSaved, nil).Return()

	svc := timeentry.NewService(repo, notifier, nil)
	entry, err := svc.Record(ctx, timeentry.RecordRequest{Seconds: 90, At: at})
	require.NoError(t, err)
	require.Equal(t, timeentry.DefaultProject, entry.Project)
	require.Equal(t, timeentry.DefaultDescription, entry.Description)
	require.Equal(t, "00:01:30", entry.Duration)
	require.Equal(t, "2025-01-02T15:04:05Z", entry.Date)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTimeEntryService_RecordRejectsZero(t *testing.T) {
	svc := timeentry.NewService(&mocks.TimeEntryRepository{}, nil, nil)
	_, err := svc.Record(context.Background(), timeentry.RecordRequest{Seconds: 0})
	require.ErrorIs(t, err, timeentry.ErrInvalidInput)
}

func TestTimeEntryService_SearchAndDelete(t *testing.T) {
	ctx := context.Background()

	stored := []timeentry.TimeEntry{
		{ID: "t3", Project: "", Description: "Inbox"},
		{ID: "t2", Project: "Website", Description: "Hero section"},
		{ID: "t1", Project: "Audit", Description: "Kickoff call"},
	}
	repo := &mocks.TimeEntryRepository{}
	repo.On("Load", ctx).Return(stored, nil)
	repo.On("Save", ctx, []timeentry.TimeEntry{stored[0], stored[2]}).Return(nil)

	svc := timeentry.NewService(repo, nil, nil)

	got, err := svc.Search(ctx, "general")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "t3", got[0].ID)

	got, err = svc.Search(ctx, "CALL")
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, svc.Delete(ctx, "t2"))
	require.ErrorIs(t, svc.Delete(ctx, "t9"), timeentry.ErrTimeEntryNotFound)
	repo.AssertExpectations(t)
}
