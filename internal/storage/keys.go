package storage

// Keys under which the dashboard state is persisted. Values are JSON text,
// except Theme, UserAvatar and DataInitialized which hold plain strings.
const (
	KeyClients         = "clients"
	KeyProjects        = "projects"
	KeyInvoices        = "invoices"
	KeyTimeEntries     = "timeEntries"
	KeyUserSettings    = "userSettings"
	KeyUserAvatar      = "userAvatar"
	KeyTheme           = "theme"
	KeyDataInitialized = "dataInitialized"
)
