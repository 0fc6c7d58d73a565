package invoice

// Filter selects invoices for the list view.
type Filter struct {
	// Status is "all", empty, or a stored status matched exactly.
	Status string
	// Query matches client, id and note.
	Query string
}

// StatusAll selects every invoice regardless of status.
const StatusAll = "all"
