package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/search"
	"github.com/google/uuid"
)

// Notices shown after client mutations.
const (
	MsgCreated = "Client saved successfully!"
	MsgUpdated = "Client updated successfully!"
	MsgDeleted = "Client removed: %s"
)

// Service handles client operations.
type Service struct {
	mu         sync.Mutex
	repo       Repository
	activities activity.Notifier
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new client service. activities may be nil.
func NewService(repo Repository, activities activity.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger, now: time.Now}
}

// Fields are the form-editable client attributes.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	Status  Status `json:"status"`
	Note    string `json:"note"`
}

// UpdateRequest replaces the editable fields of the client with ID.
type UpdateRequest struct {
	ID string
	Fields
}

// List returns every stored client, newest first. Records saved without an
// id get one and the array is written back.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Search returns the named clients whose name, email or note contain query.
func (s *Service) Search(ctx context.Context, query string) ([]Client, error) {
	clients, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	named := make([]Client, 0, len(clients))
	for _, c := range clients {
		if c.Named() {
			named = append(named, c)
		}
	}
	return search.Filter(named, query, func(c Client) []string {
		return []string{c.Name, c.Email, c.Note}
	}), nil
}

// Get fetches a client by ID.
func (s *Service) Get(ctx context.Context, id string) (*Client, error) {
	clients, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(clients, id)
	if i < 0 {
		return nil, ErrClientNotFound
	}
	c := clients[i]
	return &c, nil
}

// Create validates the fields and inserts a new client at the front.
func (s *Service) Create(ctx context.Context, fields Fields) (*Client, error) {
	if err := normalize(&fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	c := Client{
		ID:        uuid.NewString(),
		Name:      fields.Name,
		Email:     fields.Email,
		Country:   fields.Country,
		Status:    fields.Status,
		Note:      fields.Note,
		DateAdded: s.now().UTC().Format(time.RFC3339),
	}
	clients = append([]Client{c}, clients...)
	if err := s.repo.Save(ctx, clients); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.notify(ctx, c.ID, activity.TypeCreated, MsgCreated)
	return &c, nil
}

// Update replaces the editable fields of an existing client in place,
// keeping its id and DateAdded.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Client, error) {
	if err := normalize(&req.Fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(clients, req.ID)
	if i < 0 {
		return nil, ErrClientNotFound
	}

	c := clients[i]
	c.Name = req.Name
	c.Email = req.Email
	c.Country = req.Country
	c.Status = req.Status
	c.Note = req.Note
	clients[i] = c

	if err := s.repo.Save(ctx, clients); err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}

	s.notify(ctx, c.ID, activity.TypeUpdated, MsgUpdated)
	return &c, nil
}

// Delete removes the client with id, preserving the order of the rest.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(clients, id)
	if i < 0 {
		return ErrClientNotFound
	}
	name := clients[i].Name
	clients = append(clients[:i:i], clients[i+1:]...)

	if err := s.repo.Save(ctx, clients); err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	s.notify(ctx, id, activity.TypeDeleted, fmt.Sprintf(MsgDeleted, name))
	return nil
}

// ComposeURL returns the Gmail compose link for the client.
func ComposeURL(c Client) (string, error) {
	email := strings.TrimSpace(c.Email)
	if email == "" || email == "-" || !strings.Contains(email, "@") {
		return "", ErrNoEmail
	}
	return "https://mail.google.com/mail/?view=cm&fs=1&to=" + url.QueryEscape(email), nil
}

// AvatarURL returns the generated avatar image for name.
func AvatarURL(name string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return "https://ui-avatars.com/api/?name=" + escaped + "&background=random"
}

func (s *Service) load(ctx context.Context) ([]Client, error) {
	clients, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading clients: %w", err)
	}
	if assignIDs(clients) {
		if err := s.repo.Save(ctx, clients); err != nil {
			return nil, fmt.Errorf("assigning client ids: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("assigned ids to legacy clients", "count", len(clients))
		}
	}
	return clients, nil
}

func (s *Service) notify(ctx context.Context, id string, typ activity.ActivityType, summary string) {
	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntityClient, id, typ, summary, nil)
	}
}

func assignIDs(clients []Client) bool {
	changed := false
	for i := range clients {
		if strings.TrimSpace(clients[i].ID) == "" {
			clients[i].ID = uuid.NewString()
			changed = true
		}
	}
	return changed
}

func indexOf(clients []Client, id string) int {
	if id == "" {
		return -1
	}
	for i, c := range clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}
