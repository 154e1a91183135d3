package ink

import (
	"fmt"
	"math"
)

// EdgeTolerance is the default distance within which a position counts as
// being on an edge of a region.
const EdgeTolerance = 2.0

// Region is an axis-aligned bounding box. The zero value is the empty region,
// which is the identity for Merge. A non-empty region always satisfies
// Left ≤ Right and Top ≤ Bottom.
//
// Regions are used for incremental redraw bounds, for the bounding boxes of
// strokes and for the spatial pre-checks of hit-testing and selection.
type Region struct {
	Left, Right float64
	Top, Bottom float64
	valid       bool
}

// NewRegion creates the region spanned by two corner samples.
func NewRegion(a, b Sample) Region {
	return Region{
		Left:   math.Min(a.X, b.X),
		Right:  math.Max(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Bottom: math.Max(a.Y, b.Y),
		valid:  true,
	}
}

// Rect creates a region from explicit bounds, normalizing their order.
func Rect(left, top, right, bottom float64) Region {
	return NewRegion(Sample{X: left, Y: top}, Sample{X: right, Y: bottom})
}

// Pretty Stringer for regions.
func (r Region) String() string {
	if !r.valid {
		return "[empty]"
	}
	return fmt.Sprintf("[%g,%g – %g,%g]", r.Left, r.Top, r.Right, r.Bottom)
}

// IsEmpty is a predicate: has r never been set?
func (r Region) IsEmpty() bool {
	return !r.valid
}

// Clear makes r the empty region.
func (r *Region) Clear() {
	*r = Region{}
}

// Width of r; 0 for the empty region.
func (r Region) Width() float64 {
	return r.Right - r.Left
}

// Height of r; 0 for the empty region.
func (r Region) Height() float64 {
	return r.Bottom - r.Top
}

// Contains is a predicate: is (x,y) inside r or on its border?
func (r Region) Contains(x, y float64) bool {
	return r.valid && x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Intersects is a predicate: do r and o overlap with a positive area?
// Regions which merely touch do not intersect.
func (r Region) Intersects(o Region) bool {
	if !r.valid || !o.valid {
		return false
	}
	xl, xr := math.Max(r.Left, o.Left), math.Min(r.Right, o.Right)
	yt, yb := math.Max(r.Top, o.Top), math.Min(r.Bottom, o.Bottom)
	return xl-xr < 0 && yt-yb < 0
}

// Merge extends r in place to the union of r and o.
func (r *Region) Merge(o Region) {
	if !o.valid {
		return
	}
	if !r.valid {
		*r = o
		return
	}
	r.Left = math.Min(r.Left, o.Left)
	r.Right = math.Max(r.Right, o.Right)
	r.Top = math.Min(r.Top, o.Top)
	r.Bottom = math.Max(r.Bottom, o.Bottom)
}

// Extend expands r in place to include (x,y). Extending the empty region
// yields a region of size zero at (x,y).
func (r *Region) Extend(x, y float64) {
	if !r.valid {
		*r = Region{Left: x, Right: x, Top: y, Bottom: y, valid: true}
		return
	}
	r.Left = math.Min(r.Left, x)
	r.Right = math.Max(r.Right, x)
	r.Top = math.Min(r.Top, y)
	r.Bottom = math.Max(r.Bottom, y)
}

// NearVerticalEdge is a predicate: is x within tol of the left or right edge?
func (r Region) NearVerticalEdge(x, tol float64) bool {
	return r.valid && (math.Abs(x-r.Left) <= tol || math.Abs(x-r.Right) <= tol)
}

// NearHorizontalEdge is a predicate: is y within tol of the top or bottom edge?
func (r Region) NearHorizontalEdge(y, tol float64) bool {
	return r.valid && (math.Abs(y-r.Top) <= tol || math.Abs(y-r.Bottom) <= tol)
}

// Translate moves r in place by (dx,dy).
func (r *Region) Translate(dx, dy float64) {
	if !r.valid {
		return
	}
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy
}

// Transformed returns the bounding region of r's corners transformed by m.
func (r Region) Transformed(m AT) Region {
	if !r.valid {
		return r
	}
	a := m.Transform(P(r.Left, r.Top))
	b := m.Transform(P(r.Right, r.Bottom))
	return Rect(a.X(), a.Y(), b.X(), b.Y())
}
