package timeentry

import (
	"fmt"
	"time"
)

// Defaults applied to entries recorded by the timer.
const (
	DefaultProject     = "General"
	DefaultDescription = "Unnamed Task"
)

// TimeEntry is a completed, timed work session.
type TimeEntry struct {
	ID              string `json:"id"`
	Project         string `json:"project"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Duration        string `json:"duration"`
	DurationSeconds int64  `json:"durationSeconds"`
}

// ProjectName returns the project, falling back to General.
func (e TimeEntry) ProjectName() string {
	if e.Project == "" {
		return DefaultProject
	}
	return e.Project
}

// Recorded parses Date.
func (e TimeEntry) Recorded() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDuration renders seconds as zero-padded HH:MM:SS.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
