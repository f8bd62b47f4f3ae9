package app

import (
	"log/slog"

	"github.com/soocke/collage-go/config"
	"github.com/soocke/collage-go/domain/export"
	"github.com/soocke/collage-go/domain/platform"
	"github.com/soocke/collage-go/domain/render"
	"github.com/soocke/collage-go/ui/model"
	"github.com/soocke/collage-go/ui/presenter"
	"github.com/soocke/collage-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Slots    *model.SlotModel
	Surface  *render.Surface
	Renderer *render.Renderer
	Pipeline *export.Pipeline
	RootView *view.RootView

	// Presenters
	CollagePresenter *presenter.CollagePresenter
	ExportPresenter  *presenter.ExportPresenter
}

// BuildContainer constructs all components. Nothing touches Tk until the
// root view is built.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Slots = model.NewSlotModel()
	c.Surface = &render.Surface{}
	c.Renderer = NewRenderer(cfg, logger)
	c.Pipeline = platform.NewPipeline(PipelineOptions(cfg), logger)
	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	// Presenters
	c.CollagePresenter = presenter.NewCollagePresenter(c.Slots, c.Renderer, c.Surface, c.RootView, logger)
	c.ExportPresenter = presenter.NewExportPresenter(c.Pipeline, c.Surface, c.RootView, logger)
	return c
}

// NewRenderer returns the render pass for cfg's surface size and palette.
func NewRenderer(cfg *config.Config, logger *slog.Logger) *render.Renderer {
	w, h := cfg.SurfaceSize()
	return render.NewRenderer(w, h, render.Palette{
		Background: cfg.Background,
		ZoneA:      cfg.ZoneAFill,
		ZoneB:      cfg.ZoneBFill,
	}, logger)
}

// PipelineOptions maps the export settings of cfg.
func PipelineOptions(cfg *config.Config) platform.Options {
	return platform.Options{
		OutputDir:    cfg.OutputDir,
		ShareCommand: cfg.ShareCommand,
		ShareTitle:   cfg.ShareTitle,
		ShareText:    cfg.ShareText,
		ForceMobile:  cfg.ForceMobile,
	}
}
