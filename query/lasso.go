package query

import (
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/stroke"
)

// AngleTolerance is the maximum absolute angle sum for a point to count as
// inside a lasso.
const AngleTolerance = 0.01

// Lasso is a freehand selection outline. Its vertices form an implicitly
// closed contour.
type Lasso struct {
	contour polyclip.Contour
}

// NewLasso creates an empty lasso.
func NewLasso() *Lasso {
	return &Lasso{}
}

// Add appends a vertex. A vertex equal to its predecessor is dropped.
func (l *Lasso) Add(x, y float64) {
	if n := len(l.contour); n > 0 && l.contour[n-1].X == x && l.contour[n-1].Y == y {
		return
	}
	l.contour.Add(polyclip.Point{X: x, Y: y})
}

// Reset removes all vertices.
func (l *Lasso) Reset() {
	l.contour = l.contour[:0]
}

// Len is the number of vertices.
func (l *Lasso) Len() int {
	return len(l.contour)
}

// Vertices returns the vertices of l as pairs.
func (l *Lasso) Vertices() []ink.Pair {
	pts := make([]ink.Pair, len(l.contour))
	for i, p := range l.contour {
		pts[i] = ink.P(p.X, p.Y)
	}
	return pts
}

// Region returns the bounding box of all vertices.
func (l *Lasso) Region() ink.Region {
	if len(l.contour) == 0 {
		return ink.Region{}
	}
	bb := l.contour.BoundingBox()
	return ink.Rect(bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
}

// Contains tests pt against l by summing the angle differences between
// consecutive vertices, as seen from pt. Angles are taken in [0, 2π).
// The difference from the last back to the first vertex is wrapped by 2π
// if it is below -π. pt is inside if the sum is (almost) zero.
func (l *Lasso) Contains(pt ink.Pair) bool {
	n := len(l.contour)
	if n == 0 {
		return false
	}
	angles := make([]float64, n)
	for i, v := range l.contour {
		a := math.Atan2(v.Y-pt.Y(), v.X-pt.X())
		if a < 0 {
			a += 2 * math.Pi
		}
		angles[i] = a
	}
	sum := 0.0
	for i := range angles {
		j := (i + 1) % n
		diff := angles[j] - angles[i]
		if j == 0 && diff < -math.Pi {
			diff += 2 * math.Pi
		}
		sum += diff
	}
	return math.Abs(sum) < AngleTolerance
}

// Encloses tests pt against l with a conventional crossing-number test.
// It does not take part in selection.
func (l *Lasso) Encloses(pt ink.Pair) bool {
	if len(l.contour) < 3 {
		return false
	}
	return l.contour.Contains(polyclip.Point{X: pt.X(), Y: pt.Y()})
}

// Select returns the visible strokes selected by l, together with the
// union of their bounding boxes. A stroke is selected if its bounding box
// intersects the lasso's and at least one of its smoothed samples within
// the lasso's bounding box is contained in l.
func (l *Lasso) Select(strokes []*stroke.Stroke) ([]*stroke.Stroke, ink.Region) {
	var selected []*stroke.Stroke
	var bounds ink.Region
	region := l.Region()
	if region.IsEmpty() {
		return nil, bounds
	}
	for _, st := range strokes {
		if st.Hidden || !st.Bounds().Intersects(region) {
			continue
		}
		for _, s := range st.Smoothed() {
			if region.Contains(s.X, s.Y) && l.Contains(s.Pair()) {
				selected = append(selected, st)
				bounds.Merge(st.Bounds())
				break
			}
		}
	}
	tracer().Infof("lasso of %d vertices selected %d strokes in %s", len(l.contour), len(selected), bounds)
	return selected, bounds
}

// Select is a shortcut for selecting strokes with a lasso through the
// given vertices.
func Select(strokes []*stroke.Stroke, vertices []ink.Pair) ([]*stroke.Stroke, ink.Region) {
	l := NewLasso()
	for _, v := range vertices {
		l.Add(v.X(), v.Y())
	}
	return l.Select(strokes)
}
