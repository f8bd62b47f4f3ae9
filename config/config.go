package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface variants. Both share the same height; the wide one gives zone B
// more room.
const (
	VariantPhone = "phone"
	VariantWide  = "wide"
)

var variants = map[string][2]int{
	VariantPhone: {1179, 2556},
	VariantWide:  {1700, 2556},
}

const (
	defaultBackground = "#FFFFFF"
	defaultZoneA      = "#ADD8E6"
	defaultZoneB      = "#000000"

	maxSurfaceSide = 8192
)

// Config holds runtime configuration for rendering and export.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	Dark  bool `json:"dark"`

	// Surface size. Variant picks a preset; explicit width and height win
	// when both are set.
	Variant       string `json:"variant"`
	SurfaceWidth  int    `json:"surface_width"`
	SurfaceHeight int    `json:"surface_height"`

	// Palette as hex colors.
	Background string `json:"background"`
	ZoneAFill  string `json:"zone_a_fill"`
	ZoneBFill  string `json:"zone_b_fill"`

	// Export
	OutputDir    string   `json:"output_dir"`
	ShareTitle   string   `json:"share_title"`
	ShareText    string   `json:"share_text"`
	ShareCommand []string `json:"share_command"`
	ForceMobile  bool     `json:"force_mobile"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:      false,
		Variant:    VariantPhone,
		Background: defaultBackground,
		ZoneAFill:  defaultZoneA,
		ZoneBFill:  defaultZoneB,
		ShareTitle: "Photo collage",
		ShareText:  "Save the collage to your photos",
	}
}

// DefaultPath is the per-user config file location. It falls back to a
// file in the working directory when the XDG config dir is unavailable.
func DefaultPath() string {
	p, err := xdg.ConfigFile(filepath.Join("collage", "config.json"))
	if err != nil {
		return "collage.json"
	}
	return p
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.Variant = strings.ToLower(strings.TrimSpace(c.Variant))
	if _, ok := variants[c.Variant]; !ok {
		c.Variant = VariantPhone
	}
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 ||
		c.SurfaceWidth > maxSurfaceSide || c.SurfaceHeight > maxSurfaceSide {
		c.SurfaceWidth, c.SurfaceHeight = 0, 0
	}
	c.Background = normalizeHex(c.Background, defaultBackground)
	c.ZoneAFill = normalizeHex(c.ZoneAFill, defaultZoneA)
	c.ZoneBFill = normalizeHex(c.ZoneBFill, defaultZoneB)
	if len(c.ShareCommand) > 0 && strings.TrimSpace(c.ShareCommand[0]) == "" {
		c.ShareCommand = nil
	}
	return nil
}

// SurfaceSize resolves the output size: explicit dimensions when both are
// set, otherwise the variant preset.
func (c *Config) SurfaceSize() (width, height int) {
	if c.SurfaceWidth > 0 && c.SurfaceHeight > 0 {
		return c.SurfaceWidth, c.SurfaceHeight
	}
	v, ok := variants[c.Variant]
	if !ok {
		v = variants[VariantPhone]
	}
	return v[0], v[1]
}

// UseVariant switches to a preset and drops explicit dimensions.
func (c *Config) UseVariant(name string) {
	c.Variant = name
	c.SurfaceWidth, c.SurfaceHeight = 0, 0
	_ = c.Validate()
}

// normalizeHex returns s as an upper-case #RRGGBB string, or def when s is
// not a valid hex color.
func normalizeHex(s, def string) string {
	col, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return strings.ToUpper(col.Hex())
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
