package canvas

import (
	"math"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/stroke"
)

// Handle is the part of a selection box under the pointer.
type Handle int

// Selection handles. Dragging the inside moves the selection, dragging a
// vertical edge resizes it horizontally, a horizontal edge vertically.
const (
	HandleNone Handle = iota
	HandleMove
	HandleResizeX
	HandleResizeY
)

func (h Handle) String() string {
	switch h {
	case HandleMove:
		return "move"
	case HandleResizeX:
		return "resize-x"
	case HandleResizeY:
		return "resize-y"
	}
	return "none"
}

// Cursor returns the CSS cursor name for h.
func (h Handle) Cursor() string {
	switch h {
	case HandleMove:
		return "move"
	case HandleResizeX:
		return "e-resize"
	case HandleResizeY:
		return "n-resize"
	}
	return "auto"
}

// minExtent is the smallest width or height a resize may produce.
const minExtent = 1.0

type selection struct {
	strokes []*stroke.Stroke
	box     ink.Region
	handle  Handle     // handle being dragged
	from    ink.Sample // latest drag position
	low     bool       // dragging the left or top edge
}

func (sel *selection) isEmpty() bool {
	return len(sel.strokes) == 0
}

func (sel *selection) set(strokes []*stroke.Stroke, box ink.Region) {
	sel.strokes, sel.box = strokes, box
	sel.endDrag()
}

func (sel *selection) clear() {
	sel.set(nil, ink.Region{})
}

func (sel *selection) dragging() bool {
	return sel.handle != HandleNone
}

func (sel *selection) endDrag() {
	sel.handle = HandleNone
}

// handleAt finds the handle at (x,y). Edges take precedence over the inside.
func (sel *selection) handleAt(x, y, tol float64) Handle {
	if sel.isEmpty() || !sel.box.Contains(x, y) {
		return HandleNone
	}
	if sel.box.NearVerticalEdge(x, tol) {
		return HandleResizeX
	}
	if sel.box.NearHorizontalEdge(y, tol) {
		return HandleResizeY
	}
	return HandleMove
}

func (sel *selection) startDrag(h Handle, at ink.Sample) {
	sel.handle, sel.from = h, at
	switch h {
	case HandleResizeX:
		sel.low = math.Abs(at.X-sel.box.Left) < math.Abs(at.X-sel.box.Right)
	case HandleResizeY:
		sel.low = math.Abs(at.Y-sel.box.Top) < math.Abs(at.Y-sel.box.Bottom)
	}
	tracer().Debugf("start %s drag of %d strokes at %s", h, len(sel.strokes), at)
}

// dragTo transforms the selection following the pointer. It returns false if
// nothing changed.
func (sel *selection) dragTo(at ink.Sample) bool {
	dx, dy := at.X-sel.from.X, at.Y-sel.from.Y
	if dx == 0 && dy == 0 {
		return false
	}
	var m ink.AT
	switch sel.handle {
	case HandleMove:
		m = ink.Translation(ink.P(dx, dy))
	case HandleResizeX:
		fix, w := sel.box.Left, sel.box.Width()+dx
		if sel.low {
			fix, w = sel.box.Right, sel.box.Width()-dx
		}
		if sel.box.Width() <= 0 || w < minExtent {
			return false
		}
		m = ink.ScalingAround(ink.P(fix, 0), w/sel.box.Width(), 1)
	case HandleResizeY:
		fix, h := sel.box.Top, sel.box.Height()+dy
		if sel.low {
			fix, h = sel.box.Bottom, sel.box.Height()-dy
		}
		if sel.box.Height() <= 0 || h < minExtent {
			return false
		}
		m = ink.ScalingAround(ink.P(0, fix), 1, h/sel.box.Height())
	default:
		return false
	}
	for _, st := range sel.strokes {
		st.Transform(m)
	}
	sel.box = sel.box.Transformed(m)
	sel.from = at
	return true
}
