// Package navigation holds the header navigation entries of the shell.
package navigation

import (
	"strings"

	"github.com/dalemusser/campaigngen/internal/domain/models"
)

// Placeholder is the link of an entry that is shown but not yet routed.
const Placeholder = "#"

var items = []models.NavItem{
	{Name: "Home", Link: "/dashboard"},
	{Name: "Dashboard", Link: "/dashboard"},
	{Name: "Campaign", Link: "/campaign-segmentation"},
	{Name: "Exclusion", Link: "/loan-exclusion"},
	{Name: "Admin", Link: Placeholder},
	{Name: "Contact TOS", Link: "/contact-us"},
}

// Items returns the header entries in display order.
func Items() []models.NavItem {
	out := make([]models.NavItem, len(items))
	copy(out, items)
	return out
}

// RenderedItem is a nav entry prepared for the header template.
type RenderedItem struct {
	models.NavItem
	Active bool
	Inert  bool
}

// Render marks the entries whose link matches currentPath. When several
// entries share a link, only the first one is marked active.
func Render(currentPath string) []RenderedItem {
	current := strings.TrimSuffix(currentPath, "/")
	out := make([]RenderedItem, 0, len(items))
	marked := false
	for _, it := range items {
		ri := RenderedItem{NavItem: it, Inert: it.Link == Placeholder}
		if !marked && !ri.Inert && it.Link == current {
			ri.Active = true
			marked = true
		}
		out = append(out, ri)
	}
	return out
}
