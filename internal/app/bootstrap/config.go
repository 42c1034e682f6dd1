// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/campaigngen/internal/app/system/timeouts"
	"github.com/dalemusser/campaigngen/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the campaign generator.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: settings_base_url, settings_retries, etc.
//   - Environment variables: CAMPAIGNGEN_SETTINGS_BASE_URL, etc.
//   - Command-line flags: --settings_base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "app_title", Default: models.DefaultAppTitle, Desc: "Title shown in the header"},

	// Settings document
	{Name: "settings_base_url", Default: "", Desc: "Base URL serving /assets/settings.config.json (blank reads settings_file)"},
	{Name: "settings_file", Default: "public/assets/settings.config.json", Desc: "Local settings document used when settings_base_url is blank"},
	{Name: "settings_timeout", Default: "10s", Desc: "Overall timeout for reading the settings document"},
	{Name: "settings_attempt_timeout", Default: "3s", Desc: "Timeout for one HTTP attempt"},
	{Name: "settings_retries", Default: 2, Desc: "Extra HTTP attempts on transport errors and 5xx responses"},
	{Name: "settings_on_failure", Default: string(settings.PolicyDegrade), Desc: "Settings load failure policy: 'degrade', 'block' or 'abort'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig reads .env files, config files,
// CAMPAIGNGEN_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPAIGNGEN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		AppTitle: appValues.String("app_title"),

		SettingsBaseURL:        strings.TrimSpace(appValues.String("settings_base_url")),
		SettingsFile:           appValues.String("settings_file"),
		SettingsTimeout:        appValues.Duration("settings_timeout", timeouts.DefaultFetch),
		SettingsAttemptTimeout: appValues.Duration("settings_attempt_timeout", timeouts.DefaultAttempt),
		SettingsRetries:        appValues.Int("settings_retries"),
		SettingsPolicy:         settings.Policy(appValues.String("settings_on_failure")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// All problems are reported together.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	var errs []error

	if _, err := settings.ParsePolicy(string(appCfg.SettingsPolicy)); err != nil {
		errs = append(errs, fmt.Errorf("settings_on_failure: %w", err))
	}

	if appCfg.SettingsRetries < 0 {
		errs = append(errs, fmt.Errorf("settings_retries must be >= 0, got %d", appCfg.SettingsRetries))
	}
	if appCfg.SettingsTimeout < 0 || appCfg.SettingsAttemptTimeout < 0 {
		errs = append(errs, errors.New("settings timeouts must not be negative"))
	}

	if appCfg.SettingsBaseURL != "" {
		u, err := url.Parse(appCfg.SettingsBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("settings_base_url must be an absolute http(s) URL, got %q", appCfg.SettingsBaseURL))
		}
	} else if strings.TrimSpace(appCfg.SettingsFile) == "" {
		errs = append(errs, errors.New("one of settings_base_url or settings_file must be set"))
	}

	if err := errors.Join(errs...); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return err
	}
	return nil
}
