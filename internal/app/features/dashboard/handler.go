// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/campaigngen/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

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
	Sections []models.SectionCard
}

func (h *Handler) pageData(r *http.Request) pageData {
	return pageData{
		BaseVM:   viewdata.NewBaseVM(r, h.Shell, "Dashboard"),
		Sections: Sections(),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard – section grid                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "dashboard", h.pageData(r))
}
