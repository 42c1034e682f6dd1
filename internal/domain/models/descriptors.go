// internal/domain/models/descriptors.go
package models

// SectionCard is a navigation card rendered on the dashboard grid.
// Route must match a path registered in the route table.
type SectionCard struct {
	Title       string
	Description string
	Route       string
	Icon        string // Material icon ligature (e.g., "dashboard")
}

// NavItem is a single entry in the header navigation bar.
// A Link of "#" renders as an inert placeholder.
type NavItem struct {
	Name string
	Link string
}

// Feature describes one capability listed on a feature page.
type Feature struct {
	Title       string
	Description string
	Icon        string
}

// ReleaseNote is one entry on the release notes page.
type ReleaseNote struct {
	Version string
	Date    string // YYYY-MM-DD
	Items   []string
}

// ContactEntry is one support contact shown on the contact page.
type ContactEntry struct {
	Team  string
	Email string
	Phone string
	Hours string
}

// DefaultAppTitle is the header title used when app_title is not configured.
const DefaultAppTitle = "USBank - Campaign Generator - UAT"
