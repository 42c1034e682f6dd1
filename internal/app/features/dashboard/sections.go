package dashboard

import "github.com/dalemusser/campaigngen/internal/domain/models"

// sections are the cards on the dashboard grid, in display order.
var sections = []models.SectionCard{
	{
		Title:       "Dashboard",
		Description: "View Segmentation Execution Status and Report",
		Route:       "/dashboard",
		Icon:        "dashboard",
	},
	{
		Title:       "Web1 Query Builder",
		Description: "Redirect to Web1 Report Query Builder",
		Route:       "/web1-query-builder",
		Icon:        "build",
	},
	{
		Title:       "Campaign Segmentation Management",
		Description: "Validate Queries, Edit Segmentation and Treatment, and Schedule Campaign",
		Route:       "/campaign-segmentation",
		Icon:        "campaign",
	},
	{
		Title:       "Loan Exclusion",
		Description: "Exclude Individual Loans by Loan Number and Telephone Number or Upload Loan Exclusion File",
		Route:       "/loan-exclusion",
		Icon:        "block",
	},
	{
		Title:       "Release Notes",
		Description: "Release Notes lists application adjustments in each release.",
		Route:       "/release-notes",
		Icon:        "notes",
	},
	{
		Title:       "Contact Us",
		Description: "Contact Information",
		Route:       "/contact-us",
		Icon:        "contact_support",
	},
}

// Sections returns a copy of the dashboard cards.
func Sections() []models.SectionCard {
	out := make([]models.SectionCard, len(sections))
	copy(out, sections)
	return out
}
