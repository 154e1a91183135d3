package stroke

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/bezier"
)

// DefaultRadius is the pen radius used when none is given.
const DefaultRadius = 1.5

var lastID atomic.Int64

// NextID returns a new stroke ID, unique for the lifetime of the process.
// IDs are increasing monotonically.
func NextID() int64 {
	return lastID.Add(1)
}

// Stroke is one continuous pen-down-to-pen-up gesture. It holds the raw
// samples as captured, the smoothed samples derived from them and the
// running bounding box of the raw samples.
//
// Strokes are never removed from a drawing; erasing sets Hidden.
type Stroke struct {
	ID       int64
	Color    string  // pen color, see ink.ParseColor
	Radius   float64 // pen radius
	Hidden   bool    // soft-deleted
	raw      []ink.Sample
	smoothed []ink.Sample
	bbox     ink.Region
}

// New creates an empty stroke with a fresh ID.
func New(color string, radius float64) *Stroke {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Stroke{
		ID:     NextID(),
		Color:  color,
		Radius: radius,
	}
}

// Pretty Stringer for strokes.
func (st *Stroke) String() string {
	return fmt.Sprintf("stroke#%d(%d/%d samples, %s)", st.ID, len(st.raw), len(st.smoothed), st.bbox)
}

func (st *Stroke) reset() {
	st.raw = st.raw[:0]
	st.smoothed = st.smoothed[:0]
	st.bbox.Clear()
}

// Append adds a raw sample and extends the bounding box.
func (st *Stroke) Append(s ink.Sample) {
	st.raw = append(st.raw, s)
	st.bbox.Extend(s.X, s.Y)
}

// AppendSmoothed adds a smoothed sample.
func (st *Stroke) AppendSmoothed(s ink.Sample) {
	st.smoothed = append(st.smoothed, s)
}

// Raw returns the raw samples. Clients must not modify the slice.
func (st *Stroke) Raw() []ink.Sample {
	return st.raw
}

// Smoothed returns the smoothed samples. Clients must not modify the slice.
func (st *Stroke) Smoothed() []ink.Sample {
	return st.smoothed
}

// Bounds returns the bounding box of the raw samples.
func (st *Stroke) Bounds() ink.Region {
	return st.bbox
}

// Len is the number of raw samples.
func (st *Stroke) Len() int {
	return len(st.raw)
}

// Last returns the latest raw sample, if any.
func (st *Stroke) Last() (ink.Sample, bool) {
	if len(st.raw) == 0 {
		return ink.Sample{}, false
	}
	return st.raw[len(st.raw)-1], true
}

// Contains is a predicate: is (x,y) within the bounding box of st?
func (st *Stroke) Contains(x, y float64) bool {
	return st.bbox.Contains(x, y)
}

// Transform moves all raw samples of st by an affine transformation.
// Pressure and time are unchanged. The smoothed samples and the bounding box
// are derived again from the moved raw samples, exactly as on capture, so a
// moved stroke survives persisting unchanged.
func (st *Stroke) Transform(m ink.AT) {
	raw := make([]ink.Sample, len(st.raw))
	for i, s := range st.raw {
		raw[i] = s.Transformed(m)
	}
	st.recapture(raw)
}

// recapture replaces the samples of st by pushing raw through an engine.
func (st *Stroke) recapture(raw []ink.Sample) {
	e := NewEngine(nil, 0)
	e.Begin(st)
	for _, s := range raw {
		e.Add(s)
	}
	e.Finish()
}

// Fragments returns the curve fragments of st, built from its smoothed
// samples. Both ends of the smoothed sequence are padded by replicating
// the end point, so m smoothed samples yield m-1 fragments. Malformed
// fragments are left out. Fewer than 3 smoothed samples yield no fragments.
func (st *Stroke) Fragments() []bezier.Fragment {
	m := len(st.smoothed)
	if m < 3 {
		return nil
	}
	padded := make([]ink.Sample, 0, m+2)
	padded = append(padded, st.smoothed[0])
	padded = append(padded, st.smoothed...)
	padded = append(padded, st.smoothed[m-1])
	frags := make([]bezier.Fragment, 0, m-1)
	for j := 0; j <= m-2; j++ {
		f := bezier.From4(padded[j], padded[j+1], padded[j+2], padded[j+3])
		if f.IsNaN() {
			continue
		}
		frags = append(frags, f)
	}
	return frags
}

// Elements returns the render elements of st: its fragments with widths,
// or a single dot for strokes too short for a curve. The hidden flag is not
// considered.
func (st *Stroke) Elements(dotSize float64) []Element {
	if len(st.smoothed) == 0 {
		return nil
	}
	if len(st.smoothed) < 3 {
		return []Element{st.dot(dotSize)}
	}
	frags := st.Fragments()
	elems := make([]Element, len(frags))
	for i := range frags {
		elems[i] = st.fragment(frags[i])
	}
	return elems
}

// Draw renders st to a sink, unless it is hidden.
func (st *Stroke) Draw(sink Sink, dotSize float64) {
	if st.Hidden {
		return
	}
	sink.SetFillColor(ink.ColorOrBlack(st.Color))
	for _, el := range st.Elements(dotSize) {
		el.Draw(sink)
	}
}

func (st *Stroke) fragment(f bezier.Fragment) Element {
	return Element{
		Color:    st.Color,
		Fragment: &f,
		Widths:   bezier.FragmentWidths(f, st.Radius),
	}
}

func (st *Stroke) dot(size float64) Element {
	if size <= 0 {
		size = st.Radius
	}
	var center ink.Sample
	if len(st.smoothed) > 0 {
		center = st.smoothed[0]
	} else if len(st.raw) > 0 {
		center = st.raw[0]
	}
	return Element{
		Color:  st.Color,
		Center: center,
		Radius: size,
	}
}
