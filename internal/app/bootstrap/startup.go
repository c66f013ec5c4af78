// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/fedl/labsite/internal/app/resources"
	"github.com/fedl/labsite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the content is
// loaded, but before the HTTP handler is built. Shared templates must be
// registered here so the engine booted in BuildHandler can see them.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(viewdata.ClientSettings{
		HeaderOffset: appCfg.HeaderOffset,
		ScrollSettle: appCfg.ScrollSettle,
	})

	logContentSummary(deps, logger)
	return nil
}

func logContentSummary(deps DBDeps, logger *zap.Logger) {
	c := deps.Content.Counts()
	logger.Info("content loaded",
		zap.String("source", deps.ContentSource),
		zap.Int("research", c.Research),
		zap.Int("periods", c.Periods),
		zap.Int("publications", c.Publications),
		zap.Int("members", c.Members),
		zap.Int("notice", c.Notice),
		zap.Int("news", c.News),
		zap.Int("gallery", c.Gallery),
	)
}
