package export

import "math"

type segKind int

const (
	segMove segKind = iota
	segLine
	segCircle
	segClose
)

type segment struct {
	kind    segKind
	x, y, r float64
}

// path collects the primitives between BeginPath and Fill or Stroke, as
// sinks receive them.
type path struct {
	segs []segment
}

func (p *path) reset()                 { p.segs = p.segs[:0] }
func (p *path) moveTo(x, y float64)    { p.segs = append(p.segs, segment{kind: segMove, x: x, y: y}) }
func (p *path) lineTo(x, y float64)    { p.segs = append(p.segs, segment{kind: segLine, x: x, y: y}) }
func (p *path) circle(x, y, r float64) { p.segs = append(p.segs, segment{kind: segCircle, x: x, y: y, r: r}) }
func (p *path) closePath()             { p.segs = append(p.segs, segment{kind: segClose}) }
func (p *path) isEmpty() bool          { return len(p.segs) == 0 }
func (p *path) segments() []segment    { return p.segs }

// polylines splits the straight parts of p into sub-paths. Circles are not
// part of any polyline. A closed sub-path ends with a copy of its first
// point.
func (p *path) polylines() [][]segment {
	var lines [][]segment
	var cur []segment
	flush := func() {
		if len(cur) > 1 {
			lines = append(lines, cur)
		}
		cur = nil
	}
	for _, s := range p.segs {
		switch s.kind {
		case segMove:
			flush()
			cur = []segment{s}
		case segLine:
			if len(cur) == 0 {
				cur = []segment{{kind: segMove, x: s.x, y: s.y}}
			}
			cur = append(cur, s)
		case segClose:
			if len(cur) > 1 {
				cur = append(cur, segment{kind: segLine, x: cur[0].x, y: cur[0].y})
			}
			flush()
		case segCircle:
			flush()
		}
	}
	flush()
	return lines
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
var kappa = 4 * (math.Sqrt2 - 1) / 3
