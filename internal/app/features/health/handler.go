package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"go.uber.org/zap"
)

// Handler reports process and settings status.
type Handler struct {
	Settings *settings.Holder
	Policy   settings.Policy
	Log      *zap.Logger
}

// NewHandler constructs a health Handler for the given settings holder.
func NewHandler(holder *settings.Holder, policy settings.Policy, logger *zap.Logger) *Handler {
	return &Handler{
		Settings: holder,
		Policy:   policy,
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Settings string `json:"settings"`
	Source   string `json:"source,omitempty"`
	LoadID   string `json:"load_id,omitempty"`
	LoadedAt string `json:"loaded_at,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// Loaded settings: 200 and
//
//	{ "status":"ok", "settings":"loaded", "source":"…", "load_id":"…", "loaded_at":"…" }
//
// Failed load: "degraded" with 200, or "error" with 503 under the block policy,
// since pages are then unavailable.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	snap := h.Settings.Snapshot()

	resp := healthResponse{
		Status:   "ok",
		Settings: string(snap.Status),
		Source:   snap.Source,
		LoadID:   snap.LoadID,
	}
	if !snap.LoadedAt.IsZero() {
		resp.LoadedAt = snap.LoadedAt.Format(time.RFC3339)
	}

	code := http.StatusOK
	if snap.Status == settings.StatusFailed {
		resp.Status = "degraded"
		if snap.Err != nil {
			resp.Error = snap.Err.Error()
		}
		if h.Policy == settings.PolicyBlock {
			resp.Status = "error"
			code = http.StatusServiceUnavailable
		}
		h.Log.Debug("health-check: settings not loaded",
			zap.String("status", resp.Status),
			zap.String("source", snap.Source))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
