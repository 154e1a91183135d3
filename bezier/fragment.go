package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/ink"
)

// LengthSteps is the number of chords used to approximate a fragment's length.
const LengthSteps = 10

// Fragment is a cubic Bézier segment from P0 to P3 with control points C1
// and C2. Only the pressure of the end points is meaningful; control points
// carry no pressure.
type Fragment struct {
	P0, C1, C2, P3 ink.Sample
}

// Widths are the stroke widths at the start and end of a fragment.
type Widths struct {
	Start, End float64
}

// Stamp is a single disc of a rendered fragment.
type Stamp struct {
	X, Y  float64
	Width float64
}

// Pretty Stringer for fragments, in MetaPost-like notation.
func (f Fragment) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		f.P0.Pair(), f.C1.Pair(), f.C2.Pair(), f.P3.Pair())
}

// ControlPoints calculates the control points around s2 for the triple
// (s1, s2, s3): c1 is the incoming control point at s2, c2 the outgoing one.
// If all three samples coincide, the result contains NaN coordinates.
func ControlPoints(s1, s2, s3 ink.Sample) (c1, c2 ink.Sample) {
	z1, z2, z3 := s1.Pair(), s2.Pair(), s3.Pair()
	m1, m2 := z1.Mid(z2), z2.Mid(z3)
	l1, l2 := (z1 - z2).Abs(), (z2 - z3).Abs()
	k := l2 / (l1 + l2)
	cm := m2 + (m1 - m2).Scaled(k)
	t := z2 - cm
	return ink.Sample{}.At(m1 + t), ink.Sample{}.At(m2 + t)
}

// Create builds the fragment at position index of a sequence of smoothed
// samples. At least 3 samples must be available from index onwards:
//
//   - with exactly 3 samples the first one is replicated, and the fragment
//     spans points[index] → points[index+1];
//   - otherwise the fragment spans points[index+1] → points[index+2].
//
// With fewer samples Create returns false.
func Create(points []ink.Sample, index int) (Fragment, bool) {
	if index < 0 || len(points)-index < 3 {
		return Fragment{}, false
	}
	var p1, p2, p3, p4 ink.Sample
	if len(points)-index == 3 {
		p1, p2, p3, p4 = points[index], points[index], points[index+1], points[index+2]
	} else {
		p1, p2, p3, p4 = points[index], points[index+1], points[index+2], points[index+3]
	}
	return From4(p1, p2, p3, p4), true
}

// From4 builds the fragment p2 → p3, using p1 and p4 as neighbours for
// tangent estimation.
func From4(p1, p2, p3, p4 ink.Sample) Fragment {
	_, c1 := ControlPoints(p1, p2, p3)
	c2, _ := ControlPoints(p2, p3, p4)
	return Fragment{P0: p2, C1: c1, C2: c2, P3: p3}
}

// IsNaN is a predicate: does f contain a malformed coordinate? NaN values
// pop up for coincident samples; such fragments must not be drawn.
func (f Fragment) IsNaN() bool {
	return f.P0.Pair().IsNaN() || f.C1.Pair().IsNaN() ||
		f.C2.Pair().IsNaN() || f.P3.Pair().IsNaN()
}

// Eval returns the position on f at parameter t ∈ [0…1].
func (f Fragment) Eval(t float64) ink.Pair {
	u := 1 - t
	uu, tt := u*u, t*t
	uuu, ttt := uu*u, tt*t
	x := uuu * f.P0.X
	x += 3 * uu * t * f.C1.X
	x += 3 * u * tt * f.C2.X
	x += ttt * f.P3.X
	y := uuu * f.P0.Y
	y += 3 * uu * t * f.C1.Y
	y += 3 * u * tt * f.C2.Y
	y += ttt * f.P3.Y
	return ink.P(x, y)
}

// Length approximates the arc length of f by the length of a polyline
// through LengthSteps+1 points on f.
func (f Fragment) Length() float64 {
	length := 0.0
	prev := f.Eval(0)
	for i := 1; i <= LengthSteps; i++ {
		z := f.Eval(float64(i) / LengthSteps)
		length += (z - prev).Abs()
		prev = z
	}
	return length
}

// Steps is the number of stamps used to render f: its length, rounded down.
func (f Fragment) Steps() int {
	l := f.Length()
	if math.IsNaN(l) || l < 1 {
		return 0
	}
	return int(math.Floor(l))
}

// Stamps returns the discs to render f with widths varying from w0 to w1.
// Width changes are eased cubically, biasing them toward the fragment's end.
func (f Fragment) Stamps(w0, w1 float64) []Stamp {
	steps := f.Steps()
	if steps == 0 {
		return nil
	}
	stamps := make([]Stamp, steps)
	delta := w1 - w0
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		z := f.Eval(t)
		stamps[i] = Stamp{X: z.X(), Y: z.Y(), Width: w0 + t*t*t*delta}
	}
	return stamps
}

// Width maps pen pressure to a stroke width for a pen of the given radius:
//
//	2r / (1 + e^(−2r(pressure − 0.5)))
//
// The mapping is monotonic in pressure and bounded by [0, 2r].
func Width(pressure, radius float64) float64 {
	e := math.Exp(-2 * radius * (pressure - 0.5))
	return 2 * radius / (1 + e)
}

// FragmentWidths returns the widths at the end points of f.
func FragmentWidths(f Fragment, radius float64) Widths {
	w := Widths{
		Start: Width(f.P0.Pressure, radius),
		End:   Width(f.P3.Pressure, radius),
	}
	tracer().Debugf("fragment widths %.3f → %.3f", w.Start, w.End)
	return w
}
