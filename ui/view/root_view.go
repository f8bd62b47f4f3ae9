package view

import (
	"image"
	"log/slog"

	"github.com/soocke/collage-go/config"
	"github.com/soocke/collage-go/ui/model"
	"github.com/soocke/collage-go/ui/presenter"
	"github.com/soocke/collage-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the root view forwards to presenters.
type Handlers struct {
	Upload   func(slot model.Slot, path string)
	Capture  func(slot model.Slot)
	Download func()
	Reset    func()
	Apply    func(cfg *config.Config) // settings applied
	Exit     func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It implements presenter.CollageView and presenter.ExportView.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	slots    [2]*slotPanel
	preview  *photoLabel
	status   *TLabelWidget
	settings *ToplevelWidget
	handlers Handlers
}

var (
	_ presenter.CollageView = (*RootView)(nil)
	_ presenter.ExportView  = (*RootView)(nil)
)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and binds h.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	rv.handlers = h

	// Row 0: title
	Grid(TLabel(Txt("Photo collage"), Style(theme.StyleTitleLabel)), Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("1m"), Pady("0.5m"))

	// Row 1: slot panels
	rv.slots[model.SlotA] = newSlotPanel(model.SlotA, "Main photo", 1, 0, h.Upload, h.Capture)
	rv.slots[model.SlotB] = newSlotPanel(model.SlotB, "Second photo", 1, 1, h.Upload, h.Capture)

	// Row 2: collage preview, empty until something is rendered
	rv.preview = newPhotoLabel(presenter.PreviewWidth/2, presenter.PreviewHeight/2, theme.CurrentPalette().Surface)
	Grid(rv.preview.label, Row(2), Column(0), Columnspan(2), Padx("1m"), Pady("1m"))

	// Row 3: actions
	btnFrame := Frame()
	Grid(btnFrame, Row(3), Column(0), Columnspan(2), Sticky("we"), Padx("1m"), Pady("0.5m"))
	download := TButton(Txt("Download collage"), Style(theme.StylePrimaryButton), Command(rv.guard("download", h.Download)))
	Grid(download, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	reset := TButton(Txt("Reset"), Style(theme.StyleDangerButton), Command(rv.guard("reset", h.Reset)))
	Grid(reset, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	settings := Button(Txt("Settings"), Command(rv.openSettings))
	Grid(settings, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"))
	exit := Button(Txt("Exit"), Command(rv.guard("exit", h.Exit)))
	Grid(exit, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("0.2m"))

	// Row 4: status line
	rv.status = TLabel(Txt(""), Style(theme.StyleStatusLabel))
	Grid(rv.status, Row(4), Column(0), Columnspan(2), Sticky("w"), Padx("1m"), Pady("0.3m"))
}

// guard wraps a handler so a panic in it is logged instead of tearing down
// the Tk event loop.
func (rv *RootView) guard(name string, fn func()) func() {
	return func() {
		if fn == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil && rv.logger != nil {
				rv.logger.Error("ui handler panic", "handler", name, "panic", r)
			}
		}()
		fn()
	}
}

func (rv *RootView) openSettings() {
	if rv.settings != nil {
		WmGeometry(rv.settings.Window)
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Settings")
	rv.settings = win
	panel := NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, func(cfg *config.Config) {
		if rv.handlers.Apply != nil {
			rv.handlers.Apply(cfg)
		}
		rv.closeSettings()
	})
	panel.Build(win.Window, 0)
	WmProtocol(win.Window, "WM_DELETE_WINDOW", rv.closeSettings)
}

func (rv *RootView) closeSettings() {
	if rv.settings != nil {
		Destroy(rv.settings)
		rv.settings = nil
	}
}

// SetSlotImage shows a slot thumbnail; nil shows the empty placeholder.
func (rv *RootView) SetSlotImage(slot model.Slot, img image.Image) {
	if rv == nil || !slot.Valid() {
		return
	}
	rv.slots[slot].SetImage(img)
}

// SetPreview shows the scaled collage; nil shows the empty placeholder.
func (rv *RootView) SetPreview(img image.Image) {
	if rv != nil {
		rv.preview.Set(img)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.status != nil {
		rv.status.Configure(Txt(text))
	}
}

// Notify shows msg in a modal message box.
func (rv *RootView) Notify(msg string) {
	if rv == nil || msg == "" {
		return
	}
	MessageBox(Title("Photo collage"), Msg(msg), Icon("warning"), Type("ok"))
}
