// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown runs after the HTTP server has stopped. Nothing holds external
// resources, so it only records the final settings status.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.Settings != nil {
		logger.Info("shutting down",
			zap.String("settings_status", string(deps.Settings.Status())))
	}
	return nil
}
