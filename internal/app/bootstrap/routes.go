// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	contactfeature "github.com/dalemusser/campaigngen/internal/app/features/contact"
	dashboardfeature "github.com/dalemusser/campaigngen/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/campaigngen/internal/app/features/errors"
	exclusionfeature "github.com/dalemusser/campaigngen/internal/app/features/exclusion"
	healthfeature "github.com/dalemusser/campaigngen/internal/app/features/health"
	querybuilderfeature "github.com/dalemusser/campaigngen/internal/app/features/querybuilder"
	releasenotesfeature "github.com/dalemusser/campaigngen/internal/app/features/releasenotes"
	segmentationfeature "github.com/dalemusser/campaigngen/internal/app/features/segmentation"
	"github.com/dalemusser/campaigngen/internal/app/system/routetable"
	"github.com/dalemusser/campaigngen/internal/app/system/settings"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, dependency setup and Startup have
// completed, so the settings holder is already populated (or marked failed).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return buildRouter(deps, featurePages(deps, logger), logger)
}

// featurePages builds one handler per route table page.
func featurePages(deps Deps, logger *zap.Logger) routetable.Pages {
	return routetable.Pages{
		routetable.PageDashboard:            dashboardfeature.Routes(dashboardfeature.NewHandler(deps.Shell, logger)),
		routetable.PageWeb1QueryBuilder:     querybuilderfeature.Routes(querybuilderfeature.NewHandler(deps.Shell, logger)),
		routetable.PageCampaignSegmentation: segmentationfeature.Routes(segmentationfeature.NewHandler(deps.Shell, logger)),
		routetable.PageLoanExclusion:        exclusionfeature.Routes(exclusionfeature.NewHandler(deps.Shell, logger)),
		routetable.PageReleaseNotes:         releasenotesfeature.Routes(releasenotesfeature.NewHandler(deps.Shell, logger)),
		routetable.PageContactUs:            contactfeature.Routes(contactfeature.NewHandler(deps.Shell, logger)),
	}
}

// buildRouter assembles the router around the given page handlers.
// Health and static files sit outside the settings gate so they stay
// reachable when the block policy is refusing pages.
func buildRouter(deps Deps, pages routetable.Pages, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Settings, deps.Policy, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	// /assets also serves the local copy of the settings document.
	r.Handle("/static/*", fileserver.Handler("/static", "public/static"))
	r.Handle("/assets/*", fileserver.Handler("/assets", "public/assets"))

	errorsHandler := errorsfeature.NewHandler(deps.Shell, logger)
	unavailable := http.HandlerFunc(errorsHandler.SettingsUnavailable)

	var mountErr error
	r.Group(func(r chi.Router) {
		r.Use(settings.RequireLoaded(deps.Settings, deps.Policy, unavailable))
		mountErr = routetable.Mount(r, pages)
	})
	if mountErr != nil {
		logger.Error("route table mount failed", zap.Error(mountErr))
		return nil, mountErr
	}

	return r, nil
}
