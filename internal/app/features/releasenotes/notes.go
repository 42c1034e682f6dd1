package releasenotes

import "github.com/dalemusser/campaigngen/internal/domain/models"

// notes lists application changes per release, newest first.
var notes = []models.ReleaseNote{
	{
		Version: "1.3.0",
		Date:    "2025-03-14",
		Items: []string{
			"Loan exclusion accepts telephone numbers in addition to loan numbers.",
			"Dashboard cards link directly to each management page.",
		},
	},
	{
		Version: "1.2.0",
		Date:    "2025-01-22",
		Items: []string{
			"Campaign scheduling added to segmentation management.",
			"Web1 query builder link is read from environment settings.",
		},
	},
	{
		Version: "1.1.0",
		Date:    "2024-11-05",
		Items: []string{
			"Loan exclusion file upload.",
		},
	},
	{
		Version: "1.0.0",
		Date:    "2024-09-30",
		Items: []string{
			"Initial release: dashboard, segmentation management and contact page.",
		},
	},
}

// Notes returns a copy of the release notes, newest first.
func Notes() []models.ReleaseNote {
	out := make([]models.ReleaseNote, len(notes))
	for i, n := range notes {
		n.Items = append([]string(nil), n.Items...)
		out[i] = n
	}
	return out
}
