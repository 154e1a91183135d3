package query

import (
	"math"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/stroke"
)

// SlopeTolerance is the slope below which a point counts as lying on a
// segment.
const SlopeTolerance = 0.3

// Eraser hit-tests the points of an erase gesture against strokes.
// It remembers the previous point of the gesture. Erasers are not safe for
// concurrent use.
type Eraser struct {
	last    ink.Sample
	hasLast bool
}

// NewEraser creates an eraser for a new gesture.
func NewEraser() *Eraser {
	return &Eraser{}
}

// Reset forgets the previous point. Call it between gestures.
func (er *Eraser) Reset() {
	er.hasLast = false
}

// Previous returns the previous point of the gesture, if any.
func (er *Eraser) Previous() (ink.Sample, bool) {
	return er.last, er.hasLast
}

// HitTest returns the strokes hit by pt, in stroke order and each at most
// once, or nil if nothing is hit. Hidden strokes are never hit.
//
// For the first point of a gesture a stroke is hit if pt lies on one of its
// segments. For subsequent points a stroke is hit if the move from the
// previous point to pt crosses or touches one of its segments. In any case
// pt becomes the previous point.
func (er *Eraser) HitTest(strokes []*stroke.Stroke, pt ink.Sample) []*stroke.Stroke {
	var hits []*stroke.Stroke
	var move ink.Region
	if er.hasLast {
		move = ink.NewRegion(er.last, pt)
	}
	for _, st := range strokes {
		if st.Hidden || !st.Contains(pt.X, pt.Y) {
			continue
		}
		if er.hitsStroke(st, pt, move) {
			tracer().Debugf("eraser at %s hits %s", pt, st)
			hits = append(hits, st)
		}
	}
	er.last, er.hasLast = pt, true
	return hits
}

func (er *Eraser) hitsStroke(st *stroke.Stroke, pt ink.Sample, move ink.Region) bool {
	data := st.Smoothed()
	for i := 0; i+1 < len(data); i++ {
		seg := Segment{P1: data[i], P2: data[i+1]}
		box := seg.Region()
		if !er.hasLast {
			if box.Contains(pt.X, pt.Y) && onLine(seg.Slope(pt.X, pt.Y)) {
				return true
			}
			continue
		}
		if !box.Intersects(move) {
			continue
		}
		first := seg.Slope(er.last.X, er.last.Y)
		second := seg.Slope(pt.X, pt.Y)
		if first*second < 0 || onLine(first) || onLine(second) {
			return true
		}
	}
	return false
}

func onLine(slope float64) bool {
	return math.Abs(slope) < SlopeTolerance
}
