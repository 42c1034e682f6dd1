// internal/app/features/releasenotes/handler.go
package releasenotes

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
	Notes []models.ReleaseNote
}

func (h *Handler) pageData(r *http.Request) pageData {
	return pageData{
		BaseVM: viewdata.NewBaseVM(r, h.Shell, "Release Notes"),
		Notes:  Notes(),
	}
}

// ServeIndex handles GET /release-notes.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "release_notes", h.pageData(r))
}
