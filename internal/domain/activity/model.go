package activity

import "time"

// ActivityType represents the kind of mutation that was recorded
type ActivityType string

const (
	TypeCreated  ActivityType = "created"
	TypeUpdated  ActivityType = "updated"
	TypeDeleted  ActivityType = "deleted"
	TypeExported ActivityType = "exported"
	TypeSaved    ActivityType = "saved"
)

// Entity names the collection an activity entry belongs to.
const (
	EntityClient    = "client"
	EntityProject   = "project"
	EntityInvoice   = "invoice"
	EntityTimeEntry = "time_entry"
	EntitySettings  = "settings"
)

// ActivityEntry represents an event in the activity log. Summary carries the
// notice shown to the user.
type ActivityEntry struct {
	ID           int64        `json:"id"`
	Entity       string       `json:"entity"`
	RecordID     string       `json:"record_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
