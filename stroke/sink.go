package stroke

import (
	"image/color"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/bezier"
)

// Sink is an external drawing surface, modelled after a 2D canvas context.
// The stroke machinery emits path primitives to a sink, but owns no pixels.
type Sink interface {
	Clear()                       // clear to background
	SetFillColor(c color.Color)   // fill color for subsequent Fill calls
	SetStrokeColor(c color.Color) // line color for subsequent Stroke calls
	BeginPath()                   // start a new path
	MoveTo(x, y float64)          // move the pen
	LineTo(x, y float64)          // straight line from the pen position
	Arc(x, y, radius float64)     // full circle around (x,y)
	ClosePath()                   // close the current sub-path
	Fill()                        // fill the current path
	Stroke()                      // outline the current path
}

// Discard is a sink which ignores all drawing.
var Discard Sink = discard{}

type discard struct{}

func (discard) Clear()                     {}
func (discard) SetFillColor(color.Color)   {}
func (discard) SetStrokeColor(color.Color) {}
func (discard) BeginPath()                 {}
func (discard) MoveTo(x, y float64)        {}
func (discard) LineTo(x, y float64)        {}
func (discard) Arc(x, y, radius float64)   {}
func (discard) ClosePath()                 {}
func (discard) Fill()                      {}
func (discard) Stroke()                    {}

// DrawFragment renders f as a sequence of discs with widths eased from
// w.Start to w.End. Malformed fragments are skipped.
func DrawFragment(sink Sink, f bezier.Fragment, w bezier.Widths) {
	if f.IsNaN() {
		tracer().Debugf("skipping malformed fragment %s", f)
		return
	}
	sink.BeginPath()
	for _, st := range f.Stamps(w.Start, w.End) {
		sink.MoveTo(st.X, st.Y)
		sink.Arc(st.X, st.Y, st.Width)
	}
	sink.ClosePath()
	sink.Fill()
}

// DrawDot renders a single filled disc.
func DrawDot(sink Sink, x, y, size float64) {
	sink.BeginPath()
	sink.MoveTo(x, y)
	sink.Arc(x, y, size)
	sink.ClosePath()
	sink.Fill()
}

// DrawBox outlines a region, e.g. the bounding box of a selection.
// Empty regions are not drawn.
func DrawBox(sink Sink, r ink.Region, c color.Color) {
	if r.IsEmpty() {
		return
	}
	sink.SetStrokeColor(c)
	sink.BeginPath()
	sink.MoveTo(r.Left, r.Top)
	sink.LineTo(r.Right, r.Top)
	sink.LineTo(r.Right, r.Bottom)
	sink.LineTo(r.Left, r.Bottom)
	sink.LineTo(r.Left, r.Top)
	sink.ClosePath()
	sink.Stroke()
}

// DrawRing outlines a circle, used as cursor feedback while drawing a lasso.
func DrawRing(sink Sink, x, y, radius float64, c color.Color) {
	sink.SetStrokeColor(c)
	sink.BeginPath()
	sink.Arc(x, y, radius)
	sink.ClosePath()
	sink.Stroke()
}
