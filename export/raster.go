package export

import (
	"image"
	"image/color"
	"math"

	"github.com/npillmayer/ink/stroke"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterSink draws onto an image with anti-aliasing.
type RasterSink struct {
	dst        draw.Image
	background color.Color
	ras        *vector.Rasterizer
	fill, line color.Color
	path       path
	LineWidth  float64 // width of outlines
}

var _ stroke.Sink = (*RasterSink)(nil)

// NewRasterSink creates a sink drawing onto dst. A nil background means
// transparent.
func NewRasterSink(dst draw.Image, background color.Color) *RasterSink {
	if background == nil {
		background = color.Transparent
	}
	b := dst.Bounds()
	return &RasterSink{
		dst:        dst,
		background: background,
		ras:        vector.NewRasterizer(b.Dx(), b.Dy()),
		fill:       color.Black,
		line:       color.Black,
		LineWidth:  1,
	}
}

// Image returns the destination image.
func (rs *RasterSink) Image() draw.Image {
	return rs.dst
}

// Clear overwrites the whole image with the background color.
func (rs *RasterSink) Clear() {
	rs.path.reset()
	draw.Draw(rs.dst, rs.dst.Bounds(), image.NewUniform(rs.background), image.Point{}, draw.Src)
}

func (rs *RasterSink) SetFillColor(c color.Color)   { rs.fill = c }
func (rs *RasterSink) SetStrokeColor(c color.Color) { rs.line = c }
func (rs *RasterSink) BeginPath()                   { rs.path.reset() }
func (rs *RasterSink) MoveTo(x, y float64)          { rs.path.moveTo(x, y) }
func (rs *RasterSink) LineTo(x, y float64)          { rs.path.lineTo(x, y) }
func (rs *RasterSink) Arc(x, y, radius float64)     { rs.path.circle(x, y, radius) }
func (rs *RasterSink) ClosePath()                   { rs.path.closePath() }

// Fill fills the current path with the fill color. Overlapping sub-paths
// are filled once.
func (rs *RasterSink) Fill() {
	if rs.path.isEmpty() {
		return
	}
	rs.reset()
	open := false
	for _, s := range rs.path.segments() {
		switch s.kind {
		case segMove:
			if open {
				rs.ras.ClosePath()
			}
			rs.ras.MoveTo(f32(s.x), f32(s.y))
			open = true
		case segLine:
			if !open {
				rs.ras.MoveTo(f32(s.x), f32(s.y))
				open = true
				continue
			}
			rs.ras.LineTo(f32(s.x), f32(s.y))
		case segCircle:
			if open {
				rs.ras.ClosePath()
				open = false
			}
			rs.circle(s.x, s.y, s.r, 1)
		case segClose:
			if open {
				rs.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		rs.ras.ClosePath()
	}
	rs.paint(rs.fill)
}

// Stroke outlines the current path with the stroke color and LineWidth.
func (rs *RasterSink) Stroke() {
	if rs.path.isEmpty() {
		return
	}
	rs.reset()
	hw := rs.LineWidth / 2
	for _, s := range rs.path.segments() {
		if s.kind == segCircle {
			rs.circle(s.x, s.y, s.r+hw, 1)
			if s.r > hw {
				rs.circle(s.x, s.y, s.r-hw, -1)
			}
		}
	}
	for _, line := range rs.path.polylines() {
		for i := 1; i < len(line); i++ {
			rs.quad(line[i-1].x, line[i-1].y, line[i].x, line[i].y, hw)
		}
	}
	rs.paint(rs.line)
}

func (rs *RasterSink) reset() {
	b := rs.dst.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
}

func (rs *RasterSink) paint(c color.Color) {
	rs.ras.Draw(rs.dst, rs.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// circle adds a closed circle of 4 cubic arcs. dir -1 reverses the
// orientation, which cuts the circle out of an enclosing one.
func (rs *RasterSink) circle(x, y, r, dir float64) {
	k := kappa * r
	ry, ky := dir*r, dir*k
	rs.ras.MoveTo(f32(x+r), f32(y))
	rs.ras.CubeTo(f32(x+r), f32(y+ky), f32(x+k), f32(y+ry), f32(x), f32(y+ry))
	rs.ras.CubeTo(f32(x-k), f32(y+ry), f32(x-r), f32(y+ky), f32(x-r), f32(y))
	rs.ras.CubeTo(f32(x-r), f32(y-ky), f32(x-k), f32(y-ry), f32(x), f32(y-ry))
	rs.ras.CubeTo(f32(x+k), f32(y-ry), f32(x+r), f32(y-ky), f32(x+r), f32(y))
	rs.ras.ClosePath()
}

// quad adds a rectangle of half width hw around the line (x0,y0)–(x1,y1).
func (rs *RasterSink) quad(x0, y0, x1, y1, hw float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	rs.ras.MoveTo(f32(x0+nx), f32(y0+ny))
	rs.ras.LineTo(f32(x1+nx), f32(y1+ny))
	rs.ras.LineTo(f32(x1-nx), f32(y1-ny))
	rs.ras.LineTo(f32(x0-nx), f32(y0-ny))
	rs.ras.ClosePath()
}

func f32(x float64) float32 {
	return float32(x)
}
