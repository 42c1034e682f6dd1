// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
)

// Deps holds the back-end dependencies built once at startup and handed to
// every handler. The app has no database; its only backend is the settings
// document.
type Deps struct {
	Settings *settings.Holder
	Source   settings.Source
	Policy   settings.Policy
	Shell    *viewdata.Shell
}
