// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	Detail  string
}

// Handler is the errors feature handler.
// It needs no backend; it just renders templates.
type Handler struct {
	Shell *viewdata.Shell
	Log   *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(shell *viewdata.Shell, logger *zap.Logger) *Handler {
	return &Handler{
		Shell: shell,
		Log:   logger,
	}
}

func (h *Handler) unavailableData(r *http.Request) pageData {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.Shell, "Settings unavailable"),
		Message: "The application could not load its runtime settings and is not serving pages right now.",
	}
	if h.Shell != nil && h.Shell.Settings != nil {
		if snap := h.Shell.Settings.Snapshot(); snap.Source != "" {
			data.Detail = "Source: " + snap.Source
		}
	}
	return data
}

// SettingsUnavailable renders the 503 page shown under the block policy
// when the settings document failed to load.
func (h *Handler) SettingsUnavailable(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("serving settings-unavailable page", zap.String("path", r.URL.Path))
	w.Header().Set("Retry-After", "60")
	w.WriteHeader(http.StatusServiceUnavailable)
	templates.Render(w, r, "error_settings_unavailable", h.unavailableData(r))
}
