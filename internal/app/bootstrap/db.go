// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/campaigngen/internal/app/system/timeouts"
	"github.com/dalemusser/campaigngen/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the dependency bundle: an empty settings holder, the
// source the document will be read from, and the page shell. Nothing is
// fetched here; the one read happens in Startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	policy, err := settings.ParsePolicy(string(appCfg.SettingsPolicy))
	if err != nil {
		return Deps{}, fmt.Errorf("settings policy: %w", err)
	}

	timeouts.Configure(timeouts.Config{
		Fetch:   appCfg.SettingsTimeout,
		Attempt: appCfg.SettingsAttemptTimeout,
	})

	holder := settings.NewHolder()
	src := newSettingsSource(appCfg, logger)
	logger.Info("settings source configured",
		zap.String("source", src.String()),
		zap.String("policy", string(policy)),
		zap.Int("retries", appCfg.SettingsRetries))

	return Deps{
		Settings: holder,
		Source:   src,
		Policy:   policy,
		Shell:    viewdata.NewShell(appCfg.AppTitle, holder),
	}, nil
}

// newSettingsSource picks the HTTP source when a base URL is configured and
// the local asset file otherwise.
func newSettingsSource(appCfg AppConfig, logger *zap.Logger) settings.Source {
	if appCfg.SettingsBaseURL != "" {
		return settings.NewHTTPSource(settings.HTTPSourceConfig{
			BaseURL:        appCfg.SettingsBaseURL,
			Retries:        appCfg.SettingsRetries,
			AttemptTimeout: timeouts.Attempt(),
		}, logger)
	}
	return settings.NewFileSource(appCfg.SettingsFile)
}
