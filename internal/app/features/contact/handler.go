// internal/app/features/contact/handler.go
package contact

import (
	"net/http"

	"github.com/dalemusser/campaigngen/internal/app/system/settings"
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
	Contacts []models.ContactEntry
}

func (h *Handler) pageData(r *http.Request) pageData {
	rt := settings.DefaultRuntime()
	if h.Shell != nil && h.Shell.Settings != nil {
		rt = h.Shell.Settings.Runtime()
	}
	return pageData{
		BaseVM:   viewdata.NewBaseVM(r, h.Shell, "Contact Us"),
		Contacts: Contacts(rt),
	}
}

// ServeContact handles GET /contact-us.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "contact", h.pageData(r))
}
