package stroke

import (
	"fmt"
	"image/color"
)

// Op is a drawing primitive recorded by a Recorder.
type Op struct {
	Name    string
	X, Y, R float64
	Color   color.Color
}

func (op Op) String() string {
	switch op.Name {
	case "moveto", "lineto":
		return fmt.Sprintf("%s(%g,%g)", op.Name, op.X, op.Y)
	case "arc":
		return fmt.Sprintf("arc(%g,%g,%g)", op.X, op.Y, op.R)
	case "fillcolor", "strokecolor":
		return fmt.Sprintf("%s(%v)", op.Name, op.Color)
	}
	return op.Name
}

// Recorder is a sink which records all drawing primitives. It is useful for
// replaying drawing onto another sink and for inspecting what has been drawn.
type Recorder struct {
	Ops []Op
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) add(op Op) {
	r.Ops = append(r.Ops, op)
}

// Reset forgets all recorded primitives.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Clear()                       { r.add(Op{Name: "clear"}) }
func (r *Recorder) SetFillColor(c color.Color)   { r.add(Op{Name: "fillcolor", Color: c}) }
func (r *Recorder) SetStrokeColor(c color.Color) { r.add(Op{Name: "strokecolor", Color: c}) }
func (r *Recorder) BeginPath()                   { r.add(Op{Name: "begin"}) }
func (r *Recorder) MoveTo(x, y float64)          { r.add(Op{Name: "moveto", X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64)          { r.add(Op{Name: "lineto", X: x, Y: y}) }
func (r *Recorder) Arc(x, y, radius float64)     { r.add(Op{Name: "arc", X: x, Y: y, R: radius}) }
func (r *Recorder) ClosePath()                   { r.add(Op{Name: "close"}) }
func (r *Recorder) Fill()                        { r.add(Op{Name: "fill"}) }
func (r *Recorder) Stroke()                      { r.add(Op{Name: "stroke"}) }

// Count returns how often a primitive has been recorded.
func (r *Recorder) Count(name string) int {
	cnt := 0
	for _, op := range r.Ops {
		if op.Name == name {
			cnt++
		}
	}
	return cnt
}

// Replay draws all recorded primitives onto another sink.
func (r *Recorder) Replay(sink Sink) {
	for _, op := range r.Ops {
		switch op.Name {
		case "clear":
			sink.Clear()
		case "fillcolor":
			sink.SetFillColor(op.Color)
		case "strokecolor":
			sink.SetStrokeColor(op.Color)
		case "begin":
			sink.BeginPath()
		case "moveto":
			sink.MoveTo(op.X, op.Y)
		case "lineto":
			sink.LineTo(op.X, op.Y)
		case "arc":
			sink.Arc(op.X, op.Y, op.R)
		case "close":
			sink.ClosePath()
		case "fill":
			sink.Fill()
		case "stroke":
			sink.Stroke()
		}
	}
}
