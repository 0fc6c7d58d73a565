package project

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/ganot/freelanceflow/internal/currency"
)

// Status is the delivery stage of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusReview    Status = "review"
	StatusCompleted Status = "completed"
)

// Label returns the badge text. Unknown values read as Completed.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "In Progress"
	case StatusPending:
		return "Planning"
	case StatusReview:
		return "Review"
	default:
		return "Completed"
	}
}

// Progress is a completion percentage in [0, 100].
type Progress int

// Clamp bounds p to [0, 100].
func (p Progress) Clamp() Progress {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// UnmarshalJSON accepts numbers and numeric strings; anything else reads as 0.
func (p *Progress) UnmarshalJSON(data []byte) error {
	*p = 0
	data = bytes.TrimSpace(data)
	var f float64
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		d, ok := currency.Parse(s)
		if !ok {
			return nil
		}
		f = d.InexactFloat64()
	} else if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if math.IsNaN(f) {
		return nil
	}
	*p = Progress(math.Round(math.Max(0, math.Min(100, f))))
	return nil
}

// Project is a piece of work delivered to a client, referenced by name.
type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Client   string   `json:"client"`
	Deadline string   `json:"deadline"`
	Status   Status   `json:"status"`
	Progress Progress `json:"progress"`
	Note     string   `json:"note"`
}

// Initials returns up to two upper-cased initials of the client name.
func Initials(clientName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(clientName) {
		r := []rune(word)
		b.WriteRune(r[0])
	}
	initials := []rune(strings.ToUpper(b.String()))
	if len(initials) > 2 {
		initials = initials[:2]
	}
	return string(initials)
}
