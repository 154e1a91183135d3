package ink

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor indicates a color string which is neither a known
// color name nor a hex color.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor interprets a color as used for pens: an SVG/CSS color name
// ("black", "steelblue") or a hex color "#rgb", "#rrggbb" or "#rrggbbaa".
// The empty string is black.
func ParseColor(name string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return colornames.Black, nil
	}
	if s == "transparent" {
		return color.RGBA{}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}

// ColorOrBlack is like ParseColor, but falls back to black for unknown
// colors. The failure is traced.
func ColorOrBlack(name string) color.RGBA {
	c, err := ParseColor(name)
	if err != nil {
		tracer().Errorf("%v, using black", err)
		return colornames.Black
	}
	return c
}
