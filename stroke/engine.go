package stroke

import (
	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/bezier"
)

// SmoothLength is the width of the trailing window of raw samples averaged
// into a smoothed sample. The very first window is 3 samples wide.
const SmoothLength = 5

// State is the capture state of an Engine.
type State int

// Engine states.
const (
	Empty State = iota
	Capturing
)

func (s State) String() string {
	if s == Capturing {
		return "capturing"
	}
	return "empty"
}

// Engine turns the raw samples of a stroke into smoothed samples and emits
// curve fragments for incremental drawing. An engine handles one stroke at a
// time, from Begin to End (or Finish). Engines are not safe for concurrent
// use.
type Engine struct {
	sink      Sink
	dotSize   float64
	stroke    *Stroke
	win       window
	primed    bool // first smoothed sample has been replicated into the window
	fragments int  // fragments emitted for the current stroke
}

// NewEngine creates an engine drawing to sink. A nil sink discards all drawing.
// Taps are rendered as dots of dotSize; a dotSize ≤ 0 means "pen radius".
func NewEngine(sink Sink, dotSize float64) *Engine {
	if sink == nil {
		sink = Discard
	}
	return &Engine{sink: sink, dotSize: dotSize}
}

// State returns the capture state of e.
func (e *Engine) State() State {
	if e.stroke == nil {
		return Empty
	}
	return Capturing
}

// Stroke returns the stroke currently captured, or nil.
func (e *Engine) Stroke() *Stroke {
	return e.stroke
}

// Reset drops all transient capture state without drawing anything.
func (e *Engine) Reset() {
	e.stroke = nil
	e.win.reset()
	e.primed = false
	e.fragments = 0
}

// Begin starts capturing into st. Samples already present in st are
// discarded.
func (e *Engine) Begin(st *Stroke) {
	e.Reset()
	st.reset()
	e.stroke = st
	e.sink.SetFillColor(ink.ColorOrBlack(st.Color))
	tracer().Debugf("begin %s", st)
}

// Add consumes the next raw sample of the stroke and returns the elements
// drawn in response, if any. A sample at the same position as its
// predecessor is dropped.
func (e *Engine) Add(s ink.Sample) []Element {
	st := e.stroke
	if st == nil {
		tracer().Errorf("sample %s outside of a stroke, ignored", s)
		return nil
	}
	if last, ok := st.Last(); ok && last.Equal(s) {
		return nil
	}
	st.Append(s)
	n := len(st.raw)
	switch {
	case n < 2:
		if len(st.smoothed) == 0 {
			return e.pushSmoothed(s)
		}
		return nil
	case n == 2:
		return nil
	}
	width := SmoothLength
	if n == 3 {
		width = 3
	}
	return e.pushSmoothed(ink.Smooth(st.raw, max(n-SmoothLength, 0), width))
}

// End finishes the stroke at a release position. A synthetic sample with
// ink.TaperPressure is appended to taper the stroke's end, then the stroke is
// finished.
func (e *Engine) End(release ink.Sample) []Element {
	out := e.Add(release.WithPressure(ink.TaperPressure))
	return append(out, e.Finish()...)
}

// Finish flushes the tail of the stroke and returns the engine to state
// Empty. Strokes too short for a curve are drawn as a single dot.
func (e *Engine) Finish() []Element {
	st := e.stroke
	if st == nil {
		return nil
	}
	var out []Element
	// flush the stabilizer tail, never letting smoothed outgrow raw
	n := len(st.raw)
	if n > 2 && len(st.smoothed)+1 < n {
		out = append(out, e.pushTail(ink.Smooth(st.raw, n-3, 3))...)
	}
	if n >= 2 && len(st.smoothed) < n {
		out = append(out, e.pushTail(st.raw[n-1])...)
	}
	// drain the window, padding it with the final sample
	for e.primed && e.win.len() >= 3 {
		last := e.win.last()
		e.win.push(last)
		done := e.win.at(2).Equal(last)
		out = append(out, e.emit()...)
		e.win.dropFirst()
		if done {
			break
		}
	}
	if len(st.smoothed) < 3 && n > 0 {
		dot := st.dot(e.dotSize)
		dot.Draw(e.sink)
		out = append(out, dot)
	}
	tracer().Infof("finished %s with %d fragments", st, e.fragments)
	e.Reset()
	return out
}

func (e *Engine) pushTail(s ink.Sample) []Element {
	if m := len(e.stroke.smoothed); m > 0 && e.stroke.smoothed[m-1].Equal(s) {
		return nil
	}
	return e.pushSmoothed(s)
}

func (e *Engine) pushSmoothed(s ink.Sample) []Element {
	e.stroke.AppendSmoothed(s)
	e.win.push(s)
	if !e.primed && e.win.len() == 3 {
		// there is no predecessor for the first sample yet
		e.win.pushFront(e.win.at(0))
		e.primed = true
	}
	if e.win.len() < 4 {
		return nil
	}
	out := e.emit()
	e.win.dropFirst()
	return out
}

// emit draws the fragment of a full window.
func (e *Engine) emit() []Element {
	f := e.win.fragment()
	if f.IsNaN() {
		tracer().Debugf("skipping malformed fragment %s", f)
		return nil
	}
	el := Element{
		Color:    e.stroke.Color,
		Fragment: &f,
		Widths:   bezier.FragmentWidths(f, e.stroke.Radius),
	}
	el.Draw(e.sink)
	e.fragments++
	return []Element{el}
}
