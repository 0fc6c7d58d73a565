package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/search"
	"github.com/google/uuid"
)

// Notices shown after time entry mutations.
const (
	MsgSaved   = "Time entry saved!"
	MsgDeleted = "Time entry deleted."
)

// Service handles time entry operations.
type Service struct {
	mu         sync.Mutex
	repo       Repository
	activities activity.Notifier
	logger     *slog.Logger
}

// NewService creates a new time entry service.
func NewService(repo Repository, activities activity.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// RecordRequest describes a finished timing session.
type RecordRequest struct {
	Project     string
	Description string
	Seconds     int64
	At          time.Time
}

// List returns every stored entry, newest first.
func (s *Service) List(ctx context.Context) ([]TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Search returns entries whose project or description contain query.
func (s *Service) Search(ctx context.Context, query string) ([]TimeEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(entries, query, func(e TimeEntry) []string {
		return []string{e.ProjectName(), e.Description}
	}), nil
}

// Record inserts a new entry at the front. Seconds must be positive.
func (s *Service) Record(ctx context.Context, req RecordRequest) (*TimeEntry, error) {
	if req.Seconds <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	project := strings.TrimSpace(req.Project)
	if project == "" {
		project = DefaultProject
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = DefaultDescription
	}
	at := req.At
	if at.IsZero() {
		at = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entry := TimeEntry{
		ID:              uuid.NewString(),
		Project:         project,
		Description:     description,
		Date:            at.UTC().Format(time.RFC3339),
		Duration:        FormatDuration(req.Seconds),
		DurationSeconds: req.Seconds,
	}
	entries = append([]TimeEntry{entry}, entries...)
	if err := s.repo.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("recording time entry: %w", err)
	}

	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntityTimeEntry, entry.ID, activity.TypeCreated, MsgSaved, nil)
	}
	return &entry, nil
}

// Delete removes the entry with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := -1
	for j, e := range entries {
		if id != "" && e.ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return ErrTimeEntryNotFound
	}
	entries = append(entries[:i:i], entries[i+1:]...)

	if err := s.repo.Save(ctx, entries); err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}

	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntityTimeEntry, id, activity.TypeDeleted, MsgDeleted, nil)
	}
	return nil
}

func (s *Service) load(ctx context.Context) ([]TimeEntry, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time entries: %w", err)
	}
	changed := false
	for i := range entries {
		if strings.TrimSpace(entries[i].ID) == "" {
			entries[i].ID = uuid.NewString()
			changed = true
		}
	}
	if changed {
		if err := s.repo.Save(ctx, entries); err != nil {
			return nil, fmt.Errorf("assigning time entry ids: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("assigned ids to legacy time entries", "count", len(entries))
		}
	}
	return entries, nil
}
