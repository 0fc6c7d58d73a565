package project_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateDefaultsAndPrepends(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Load", ctx).Return([]project.Project{{ID: "p1", Name: "Old"}}, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(list []project.Project) bool {
		return len(list) == 2 && list[0].Name == "Website" && list[1].ID == "p1"
	})).Return(nil)

	svc := project.NewService(repo, nil, nil)
	p, err := svc.Create(ctx, project.Fields{Name: "Website", Client: "Acme Co", Deadline: "2025-06-30", Progress: 40})
	require.NoError(t, err)
	require.Equal(t, project.StatusPending, p.Status)
	require.Equal(t, project.Progress(40), p.Progress)
	repo.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := project.NewService(&mocks.ProjectRepository{}, nil, nil)

	_, err := svc.Create(ctx, project.Fields{Name: ""})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.Fields{Name: "x", Progress: 120})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.Fields{Name: "x", Deadline: "next week"})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, project.Fields{Name: "x", Status: "someday"})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	stored := []project.Project{
		{ID: "p2", Name: "App", Client: "Globex", Status: project.StatusActive},
		{ID: "p1", Name: "Site", Client: "Acme Co", Status: project.StatusPending},
	}
	repo := &mocks.ProjectRepository{}
	repo.On("Load", ctx).Return(stored, nil)
	repo.On("Save", ctx, mock.MatchedBy(func(list []project.Project) bool {
		return len(list) == 2 && list[1].Status == project.StatusReview && list[1].ID == "p1"
	})).Return(nil).Once()
	repo.On("Save", ctx, []project.Project{stored[1]}).Return(nil).Once()

	svc := project.NewService(repo, nil, nil)
	p, err := svc.Update(ctx, project.UpdateRequest{ID: "p1", Fields: project.Fields{Name: "Site", Client: "Acme Co", Status: project.StatusReview, Progress: 90}})
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)

	require.NoError(t, svc.Delete(ctx, "p2"))
	require.ErrorIs(t, svc.Delete(ctx, "p9"), project.ErrProjectNotFound)
	repo.AssertExpectations(t)
}

func TestProjectService_Search(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Load", ctx).Return([]project.Project{
		{ID: "p1", Name: "Website", Client: "Acme Co"},
		{ID: "p2", Name: "Mobile", Client: "Globex", Note: "acme referral"},
		{ID: "p3", Name: "Audit", Client: "Initech"},
	}, nil)

	svc := project.NewService(repo, nil, nil)
	got, err := svc.Search(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "p1", got[0].ID)
	require.Equal(t, "p2", got[1].ID)
}

func TestProgress_LenientDecode(t *testing.T) {
	var rows []project.Project
	require.NoError(t, json.Unmarshal([]byte(`[{"progress":"45"},{"progress":70},{"progress":"abc"},{"progress":250},{"progress":-5}]`), &rows))
	require.Equal(t, project.Progress(45), rows[0].Progress)
	require.Equal(t, project.Progress(70), rows[1].Progress)
	require.Equal(t, project.Progress(0), rows[2].Progress)
	require.Equal(t, project.Progress(100), rows[3].Progress)
	require.Equal(t, project.Progress(0), rows[4].Progress)

	require.NoError(t, json.Unmarshal([]byte(`[{"progress":1e300},{"progress":-1e300},{"progress":"1e300"},{"progress":99.6}]`), &rows))
	require.Equal(t, project.Progress(100), rows[0].Progress)
	require.Equal(t, project.Progress(0), rows[1].Progress)
	require.Equal(t, project.Progress(100), rows[2].Progress)
	require.Equal(t, project.Progress(100), rows[3].Progress)
}

func TestInitialsAndLabels(t *testing.T) {
	require.Equal(t, "AC", project.Initials("Acme Co"))
	require.Equal(t, "BW", project.Initials("big widget works"))
	require.Equal(t, "G", project.Initials("Globex"))
	require.Equal(t, "", project.Initials(""))

	require.Equal(t, "In Progress", project.StatusActive.Label())
	require.Equal(t, "Planning", project.StatusPending.Label())
	require.Equal(t, "Review", project.StatusReview.Label())
	require.Equal(t, "Completed", project.StatusCompleted.Label())
	require.Equal(t, "Completed", project.Status("").Label())
}
