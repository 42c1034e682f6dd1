// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/campaigngen/internal/app/system/settings"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework side: ports, TLS, logging, CORS and body limits.
type AppConfig struct {
	// Title shown in the header and the browser tab.
	AppTitle string

	// Settings document source. When SettingsBaseURL is set the document is
	// fetched over HTTP from <base>/assets/settings.config.json; otherwise it
	// is read from SettingsFile.
	SettingsBaseURL string
	SettingsFile    string

	SettingsTimeout        time.Duration // whole read, retries included
	SettingsAttemptTimeout time.Duration // one HTTP attempt
	SettingsRetries        int           // extra HTTP attempts after the first

	// What to do when the document cannot be loaded.
	SettingsPolicy settings.Policy
}
