package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/soocke/collage-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel edits the export settings and persists them.
type ConfigPanel interface {
	Build(parent *Window, startRow int) (endRow int) // constructs widgets in parent starting at startRow, returns next free row
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApply runs after a
// successful apply with the updated config.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(parent *Window, startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := parent.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := parent.Text(Height(1), Width(32))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("outputDir", "Save to folder", c.OutputDir)
	makeRow("shareTitle", "Share title", c.ShareTitle)
	makeRow("shareText", "Share text", c.ShareText)
	makeRow("shareCommand", "Share command", joinCommand(c.ShareCommand))
	makeRow("forceMobile", "Phone mode (true/false)", fmt.Sprintf("%t", c.ForceMobile))
	makeRow("dark", "Dark theme (true/false)", fmt.Sprintf("%t", c.Dark))
	v.applyBtn = parent.Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) text(id string) (string, bool) {
	w := v.widgets[id]
	if w == nil {
		return "", false
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), "")), true
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	if s, ok := v.text("outputDir"); ok {
		cfg.OutputDir = s
	}
	if s, ok := v.text("shareTitle"); ok && s != "" {
		cfg.ShareTitle = s
	}
	if s, ok := v.text("shareText"); ok && s != "" {
		cfg.ShareText = s
	}
	if s, ok := v.text("shareCommand"); ok {
		args, err := shellwords.Parse(s)
		if err != nil {
			if v.logger != nil {
				v.logger.Warn("share command not applied", "error", err)
			}
		} else {
			cfg.ShareCommand = args
		}
	}
	if s, ok := v.text("forceMobile"); ok {
		if b, ok := parseBoolLoose(s); ok {
			cfg.ForceMobile = b
		}
	}
	if s, ok := v.text("dark"); ok {
		if b, ok := parseBoolLoose(s); ok {
			cfg.Dark = b
		}
	}
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
	if v.cfgPath == "" {
		return
	}
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}

// joinCommand formats args so that shellwords.Parse reads them back.
func joinCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'\\") {
			quoted[i] = strconv.Quote(a)
			continue
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
