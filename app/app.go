package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gg"

	"github.com/soocke/collage-go/config"
	"github.com/soocke/collage-go/debug"
	"github.com/soocke/collage-go/domain/platform"
	"github.com/soocke/collage-go/ui/theme"
	"github.com/soocke/collage-go/ui/view"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// statsInterval is how often debug mode logs runtime stats.
const statsInterval = 5 * time.Second

type app struct {
	title   string
	width   int
	height  int
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	c      *AppContainer
}

// NewApp prepares the main window. The window is shown by Start.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{title: title, width: width, height: height, cfg: cfg, cfgPath: cfgPath, logger: logger}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	gg.SetLogger(logger)
	a.c = BuildContainer(cfg, logger, cfgPath)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI and blocks in the Tk event loop.
func (a *app) Start() {
	theme.SetDark(a.cfg.Dark)
	if a.cfg.Debug {
		debug.StartStatsLogger(a.ctx, statsInterval, a.logger)
	}

	cp, ep := a.c.CollagePresenter, a.c.ExportPresenter
	a.c.RootView.Build(view.Handlers{
		Upload:   cp.Upload,
		Capture:  cp.Capture,
		Download: func() { ep.Export(a.ctx) },
		Reset:    cp.Reset,
		Apply:    a.applyConfig,
		Exit:     a.exitHandler,
	})
	a.logger.Info("collage ready",
		"surface_width", a.c.Renderer.Width,
		"surface_height", a.c.Renderer.Height,
		"mobile", a.c.Pipeline.Runtime.Mobile(),
	)

	App.Wait()
}

// applyConfig picks up export settings and the theme. Surface size and
// palette stay as they were at startup.
func (a *app) applyConfig(cfg *config.Config) {
	platform.Configure(a.c.Pipeline, PipelineOptions(cfg), a.logger)
	if theme.IsDark() != cfg.Dark {
		theme.SetDark(cfg.Dark)
	}
}

func (a *app) exitHandler() {
	a.cancel()
	a.c.Surface.Clear()
	Destroy(App)
}
