// internal/app/features/querybuilder/handler.go
package querybuilder

import (
	"net/http"

	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/campaigngen/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// features describe what the external Web1 report query builder is used for.
var features = []models.Feature{
	{
		Title:       "Report Query Builder",
		Description: "Build Web1 report queries that feed campaign segmentation.",
		Icon:        "build",
	},
	{
		Title:       "Saved Queries",
		Description: "Reuse saved Web1 queries when validating segmentation.",
		Icon:        "bookmark",
	},
	{
		Title:       "Export Results",
		Description: "Export query output for review before a campaign is scheduled.",
		Icon:        "file_download",
	},
}

// Features returns a copy of the page's feature list.
func Features() []models.Feature {
	out := make([]models.Feature, len(features))
	copy(out, features)
	return out
}

// Handler serves the Web1 query builder landing page.
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
	Features   []models.Feature
	Web1URL    string
	Configured bool
}

// web1URL returns the configured builder URL, or "" when settings did not
// provide one.
func (h *Handler) web1URL() string {
	if h.Shell == nil || h.Shell.Settings == nil {
		return ""
	}
	return h.Shell.Settings.Runtime().Web1QueryBuilderURL
}

func (h *Handler) pageData(r *http.Request) pageData {
	u := h.web1URL()
	return pageData{
		BaseVM:     viewdata.NewBaseVM(r, h.Shell, "Web1 Query Builder"),
		Features:   Features(),
		Web1URL:    u,
		Configured: u != "",
	}
}

// ServeIndex handles GET /web1-query-builder.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "web1_query_builder", h.pageData(r))
}

// ServeOpen handles GET /web1-query-builder/open by redirecting to the
// external builder. Without a configured URL it sends the user back to the
// landing page, which explains that the link is unavailable.
func (h *Handler) ServeOpen(w http.ResponseWriter, r *http.Request) {
	u := h.web1URL()
	if u == "" {
		h.Log.Warn("web1 query builder requested but web1QueryBuilderUrl is not configured")
		http.Redirect(w, r, "/web1-query-builder", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, u, http.StatusFound)
}
