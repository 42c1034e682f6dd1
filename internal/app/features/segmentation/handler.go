// internal/app/features/segmentation/handler.go
package segmentation

import (
	"net/http"

	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/campaigngen/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// steps are the stages of preparing a campaign, in the order they are done.
var steps = []models.Feature{
	{
		Title:       "Validate Queries",
		Description: "Check that each segment query runs and returns the expected population.",
		Icon:        "fact_check",
	},
	{
		Title:       "Edit Segmentation and Treatment",
		Description: "Adjust segment definitions and the treatment assigned to each segment.",
		Icon:        "edit_note",
	},
	{
		Title:       "Schedule Campaign",
		Description: "Pick the execution window and queue the campaign for generation.",
		Icon:        "schedule",
	},
}

// Steps returns a copy of the segmentation workflow steps.
func Steps() []models.Feature {
	out := make([]models.Feature, len(steps))
	copy(out, steps)
	return out
}

type Handler struct {
	Shell *viewdata.Shell
	Log   *zap.Logger
}

func NewHandler(shell *viewdata.Shell, logger *zap.Logger) *Handler {
	return &Handler{
		Shell: shell,
		Log:   logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Steps []models.Feature
}

func (h *Handler) pageData(r *http.Request) pageData {
	return pageData{
		BaseVM: viewdata.NewBaseVM(r, h.Shell, "Campaign Segmentation Management"),
		Steps:  Steps(),
	}
}

// ServeIndex handles GET /campaign-segmentation.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "campaign_segmentation", h.pageData(r))
}
