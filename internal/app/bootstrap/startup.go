// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/campaigngen/internal/app/resources"
	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization before the HTTP handler is built:
// it registers the shared templates and performs the single settings read.
// It returns an error only when the read fails under the abort policy.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	_, err := settings.Bootstrap(ctx, deps.Source, deps.Settings, deps.Policy, logger)
	return err
}
