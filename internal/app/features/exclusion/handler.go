// internal/app/features/exclusion/handler.go
package exclusion

import (
	"net/http"

	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/campaigngen/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var methods = []models.Feature{
	{
		Title:       "Exclude by Loan Number",
		Description: "Remove an individual loan from every scheduled campaign.",
		Icon:        "numbers",
	},
	{
		Title:       "Exclude by Telephone Number",
		Description: "Suppress outreach to a telephone number across all loans.",
		Icon:        "phone_disabled",
	},
	{
		Title:       "Upload Loan Exclusion File",
		Description: "Submit a file of loan and telephone numbers to exclude in bulk.",
		Icon:        "upload_file",
	},
}

// Methods returns a copy of the exclusion methods shown on the page.
func Methods() []models.Feature {
	out := make([]models.Feature, len(methods))
	copy(out, methods)
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
	Methods []models.Feature
}

func (h *Handler) pageData(r *http.Request) pageData {
	return pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Shell, "Loan Exclusion"),
		Methods: Methods(),
	}
}

// ServeIndex handles GET /loan-exclusion.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "loan_exclusion", h.pageData(r))
}
