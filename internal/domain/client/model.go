package client

import (
	"strings"
	"time"
)

// Status is the relationship stage of a client.
type Status string

const (
	StatusActive     Status = "active"
	StatusOnboarding Status = "onboarding"
	StatusInactive   Status = "inactive"
)

// Label returns the badge text for the status. Unknown values read as Inactive.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusOnboarding:
		return "Onboarding"
	default:
		return "Inactive"
	}
}

// Client is a customer of the freelancer. Name is the join key used by
// projects and invoices.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	Status    Status `json:"status"`
	Note      string `json:"note"`
	DateAdded string `json:"dateAdded"`
}

// Named reports whether the client has a usable name. Nameless records are
// kept in storage but never rendered.
func (c Client) Named() bool {
	return strings.TrimSpace(c.Name) != ""
}

// Added parses DateAdded.
func (c Client) Added() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, c.DateAdded)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
