// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"time"

	"github.com/dalemusser/campaigngen/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campaigngen/internal/app/system/navigation"
	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/campaigngen/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// Shell holds what every page needs to render the header and footer.
// It is built once in bootstrap and shared by all feature handlers.
type Shell struct {
	AppTitle string
	Settings *settings.Holder
}

// NewShell returns a Shell, falling back to the default title.
func NewShell(appTitle string, holder *settings.Holder) *Shell {
	if appTitle == "" {
		appTitle = models.DefaultAppTitle
	}
	return &Shell{AppTitle: appTitle, Settings: holder}
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, h.Shell, "Page Title"),
//	}
type BaseVM struct {
	// Header
	AppTitle string
	Nav      []navigation.RenderedItem

	// Footer (from runtime settings)
	Environment  string
	SupportHours string
	FooterHTML   template.HTML
	Year         int

	// Page context
	Title       string
	CurrentPath string

	// SettingsDegraded is true when the settings document failed to load
	// and the page is rendered with defaults.
	SettingsDegraded bool
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, shell *Shell, title string) BaseVM {
	current := httpnav.CurrentPath(r)

	vm := BaseVM{
		AppTitle:    models.DefaultAppTitle,
		Nav:         navigation.Render(current),
		Year:        time.Now().Year(),
		Title:       title,
		CurrentPath: current,
	}
	if shell == nil {
		rt := settings.DefaultRuntime()
		vm.Environment = rt.Environment
		vm.SupportHours = rt.SupportHours
		return vm
	}

	vm.AppTitle = shell.AppTitle
	if shell.Settings != nil {
		rt := shell.Settings.Runtime()
		vm.Environment = rt.Environment
		vm.SupportHours = rt.SupportHours
		vm.FooterHTML = htmlsanitize.FooterHTML(rt.FooterHTML)
		vm.SettingsDegraded = shell.Settings.Degraded()
	} else {
		rt := settings.DefaultRuntime()
		vm.Environment = rt.Environment
		vm.SupportHours = rt.SupportHours
	}
	return vm
}
