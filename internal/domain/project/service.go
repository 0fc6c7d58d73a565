package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/search"
	"github.com/google/uuid"
)

// Notices shown after project mutations.
const (
	MsgSaved   = "Project saved successfully!"
	MsgDeleted = "Project deleted: %s"
)

// Service handles project operations.
type Service struct {
	mu         sync.Mutex
	repo       Repository
	activities activity.Notifier
	logger     *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, activities activity.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// Fields are the form-editable project attributes.
type Fields struct {
	Name     string   `json:"name"`
	Client   string   `json:"client"`
	Deadline string   `json:"deadline"`
	Status   Status   `json:"status"`
	Progress Progress `json:"progress"`
	Note     string   `json:"note"`
}

// UpdateRequest replaces the editable fields of the project with ID.
type UpdateRequest struct {
	ID string
	Fields
}

// List returns every stored project in insertion order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Search returns projects whose name, client or note contain query.
func (s *Service) Search(ctx context.Context, query string) ([]Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(projects, query, func(p Project) []string {
		return []string{p.Name, p.Client, p.Note}
	}), nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(projects, id)
	if i < 0 {
		return nil, ErrProjectNotFound
	}
	p := projects[i]
	return &p, nil
}

// Create inserts a new project at the front.
func (s *Service) Create(ctx context.Context, fields Fields) (*Project, error) {
	if err := normalize(&fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	p := Project{
		ID:       uuid.NewString(),
		Name:     fields.Name,
		Client:   fields.Client,
		Deadline: fields.Deadline,
		Status:   fields.Status,
		Progress: fields.Progress,
		Note:     fields.Note,
	}
	projects = append([]Project{p}, projects...)
	if err := s.repo.Save(ctx, projects); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.notify(ctx, p.ID, activity.TypeCreated, MsgSaved)
	return &p, nil
}

// Update replaces an existing project's editable fields in place.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Project, error) {
	if err := normalize(&req.Fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(projects, req.ID)
	if i < 0 {
		return nil, ErrProjectNotFound
	}

	p := projects[i]
	p.Name = req.Name
	p.Client = req.Client
	p.Deadline = req.Deadline
	p.Status = req.Status
	p.Progress = req.Progress
	p.Note = req.Note
	projects[i] = p

	if err := s.repo.Save(ctx, projects); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	s.notify(ctx, p.ID, activity.TypeUpdated, MsgSaved)
	return &p, nil
}

// Delete removes the project with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(projects, id)
	if i < 0 {
		return ErrProjectNotFound
	}
	name := projects[i].Name
	projects = append(projects[:i:i], projects[i+1:]...)

	if err := s.repo.Save(ctx, projects); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	s.notify(ctx, id, activity.TypeDeleted, fmt.Sprintf(MsgDeleted, name))
	return nil
}

func (s *Service) load(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	changed := false
	for i := range projects {
		if strings.TrimSpace(projects[i].ID) == "" {
			projects[i].ID = uuid.NewString()
			changed = true
		}
	}
	if changed {
		if err := s.repo.Save(ctx, projects); err != nil {
			return nil, fmt.Errorf("assigning project ids: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("assigned ids to legacy projects", "count", len(projects))
		}
	}
	return projects, nil
}

func (s *Service) notify(ctx context.Context, id string, typ activity.ActivityType, summary string) {
	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntityProject, id, typ, summary, nil)
	}
}

func indexOf(projects []Project, id string) int {
	if id == "" {
		return -1
	}
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
