package canvas

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/stroke"
	"github.com/pelletier/go-toml/v2"
)

// ErrNoStrokes is returned when an operation needs strokes, but the surface
// has none.
var ErrNoStrokes = errors.New("surface has no strokes")

// Radius limits, see ClampRadius.
const (
	MaxRadius = 5.0
	MinRadius = 0.01
)

// Config holds the settings of a surface. It may be read from a TOML file.
//
//	radius = 2.0
//	pen_color = "#1e3a8a"
//	throttle = 16
type Config struct {
	Radius          float64 `toml:"radius"`           // pen radius
	DotSize         float64 `toml:"dot_size"`         // size of taps; 0 means pen radius
	PenColor        string  `toml:"pen_color"`        // color of new strokes
	Background      string  `toml:"background"`       // background color for exports
	SelectionColor  string  `toml:"selection_color"`  // color of selection box and lasso ring
	Throttle        int64   `toml:"throttle"`         // minimum interval of pointer moves, ms; 0 disables
	OriginX         float64 `toml:"origin_x"`         // subtracted from device x coordinates
	OriginY         float64 `toml:"origin_y"`         // subtracted from device y coordinates
	EdgeTolerance   float64 `toml:"edge_tolerance"`   // tolerance of selection box edges
	DefaultPressure float64 `toml:"default_pressure"` // pressure of devices without pressure
	Mode            string  `toml:"mode"`             // initial mode: pen, eraser or select
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Radius:          stroke.DefaultRadius,
		PenColor:        "black",
		Background:      "transparent",
		SelectionColor:  "gray",
		Throttle:        16,
		EdgeTolerance:   ink.EdgeTolerance,
		DefaultPressure: ink.DefaultPressure,
		Mode:            Pen.String(),
	}
}

// LoadConfig reads settings in TOML format. Settings missing from the input
// keep their default values; unknown settings are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("reading surface config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	cfg.Radius = ClampRadius(cfg.Radius)
	return cfg, nil
}

// Validate checks colors and mode of cfg.
func (cfg Config) Validate() error {
	for _, c := range []string{cfg.PenColor, cfg.Background, cfg.SelectionColor} {
		if _, err := ink.ParseColor(c); err != nil {
			return fmt.Errorf("surface config: %w", err)
		}
	}
	if _, err := ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("surface config: %w", err)
	}
	return nil
}

// ClampRadius limits a pen radius to at most MaxRadius. Radii below
// MinRadius are reset to 1.
func ClampRadius(r float64) float64 {
	if r > MaxRadius {
		return MaxRadius
	}
	if r < MinRadius {
		return 1
	}
	return r
}

func (cfg Config) sampleConfig(clock ink.Clock) ink.Config {
	sc := ink.DefaultConfig()
	if cfg.DefaultPressure > 0 {
		sc.DefaultPressure = cfg.DefaultPressure
	}
	if clock != nil {
		sc.Clock = clock
	}
	return sc
}
