package stroke

import (
	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/bezier"
)

// Element is one unit of a rendered stroke: either a curve fragment with its
// end point widths, or a dot for a stroke too short to form a curve.
// A sequence of elements is all an exporter needs to produce vector or
// raster output.
type Element struct {
	Color    string
	Fragment *bezier.Fragment // nil for a dot
	Widths   bezier.Widths    // fragment widths
	Center   ink.Sample       // dot center
	Radius   float64          // dot radius
}

// IsDot is a predicate: is el a dot rather than a fragment?
func (el Element) IsDot() bool {
	return el.Fragment == nil
}

// Draw renders el to a sink. The fill color is left untouched.
func (el Element) Draw(sink Sink) {
	if el.IsDot() {
		DrawDot(sink, el.Center.X, el.Center.Y, el.Radius)
		return
	}
	DrawFragment(sink, *el.Fragment, el.Widths)
}
