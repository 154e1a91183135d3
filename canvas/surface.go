package canvas

import (
	"fmt"
	"io"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/query"
	"github.com/npillmayer/ink/stroke"
)

// Button identifies the pointer button of an event.
type Button int

// Pointer buttons. Pens and touches report as primary.
const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// PointerEvent is a pointer event in device coordinates. A pressure ≤ 0 means
// the device does not report pressure. A time of 0 means "now".
type PointerEvent struct {
	X, Y     float64
	Pressure float64
	Button   Button
	Time     int64
}

// RingRadius is the radius of the ring drawn at lasso vertices.
const RingRadius = 3.0

// Surface is a drawing surface. It owns the strokes drawn on it and renders
// them to a sink. Surfaces are not safe for concurrent use.
type Surface struct {
	cfg       Config
	samples   ink.Config
	sink      stroke.Sink
	mode      Mode
	active    bool    // a gesture is in progress
	pressure  float64 // sticky pressure of the pointer device
	strokes   []*stroke.Stroke
	engine    *stroke.Engine
	eraser    *query.Eraser
	lasso     *query.Lasso
	selection selection
	throttle  *Throttle
	replaying bool  // time is taken from replayed events
	eventTime int64 // time of the latest replayed event
}

// NewSurface creates an empty surface drawing to sink. The clock stamps
// samples and drives the move throttle; nil means wall clock. An invalid
// initial mode in cfg is replaced by Pen.
func NewSurface(sink stroke.Sink, cfg Config, clock ink.Clock) *Surface {
	if sink == nil {
		sink = stroke.Discard
	}
	cfg.Radius = ClampRadius(cfg.Radius)
	s := &Surface{
		cfg:     cfg,
		samples: cfg.sampleConfig(clock),
		sink:    sink,
		engine:  stroke.NewEngine(sink, cfg.DotSize),
		eraser:  query.NewEraser(),
		lasso:   query.NewLasso(),
	}
	s.pressure = s.samples.DefaultPressure
	clock = s.samples.Clock
	s.samples.Clock = func() int64 {
		if s.replaying {
			return s.eventTime
		}
		return clock()
	}
	s.throttle = NewThrottle(cfg.Throttle, s.samples.Clock, s.moved)
	if m, err := ParseMode(cfg.Mode); err == nil {
		s.mode = m
	} else {
		tracer().Errorf("%v, using pen", err)
	}
	sink.Clear()
	return s
}

// Config returns the current settings of s.
func (s *Surface) Config() Config {
	return s.cfg
}

// Mode returns the active mode.
func (s *Surface) Mode() Mode {
	return s.mode
}

// SetMode switches to mode m. A gesture in progress is finished first.
// Leaving Select mode drops the selection. Unknown modes are ignored.
func (s *Surface) SetMode(m Mode) {
	if !m.valid() {
		tracer().Errorf("%v: %s, keeping %s", ErrUnknownMode, m, s.mode)
		return
	}
	if m == s.mode {
		return
	}
	s.finish(PointerEvent{}, false)
	if s.mode == Select && !s.selection.isEmpty() {
		s.selection.clear()
		s.Redraw()
	}
	tracer().Infof("mode %s -> %s", s.mode, m)
	s.mode = m
	s.cfg.Mode = m.String()
}

// SetRadius sets the pen radius for new strokes, see ClampRadius.
func (s *Surface) SetRadius(r float64) {
	s.cfg.Radius = ClampRadius(r)
}

// SetPenColor sets the color of new strokes.
func (s *Surface) SetPenColor(color string) error {
	if _, err := ink.ParseColor(color); err != nil {
		return fmt.Errorf("setting pen color: %w", err)
	}
	s.cfg.PenColor = color
	return nil
}

// Strokes returns all strokes, including hidden ones, in drawing order.
// Clients must not modify the slice.
func (s *Surface) Strokes() []*stroke.Stroke {
	return s.strokes
}

// Selection returns the selected strokes and their bounding box.
func (s *Surface) Selection() ([]*stroke.Stroke, ink.Region) {
	return s.selection.strokes, s.selection.box
}

// IsEmpty is a predicate: has nothing been drawn since the last Clear?
func (s *Surface) IsEmpty() bool {
	return len(s.strokes) == 0
}

// Clear removes all strokes and clears the sink.
func (s *Surface) Clear() {
	s.abort()
	s.strokes = nil
	s.selection.clear()
	s.sink.Clear()
	tracer().Infof("surface cleared")
}

// Redraw clears the sink and draws all visible strokes, plus the box of
// the current selection.
func (s *Surface) Redraw() {
	s.sink.Clear()
	for _, st := range s.strokes {
		st.Draw(s.sink, s.cfg.DotSize)
	}
	if !s.selection.isEmpty() {
		stroke.DrawBox(s.sink, s.selection.box, ink.ColorOrBlack(s.cfg.SelectionColor))
	}
}

// Elements returns the render elements of all visible strokes.
func (s *Surface) Elements() []stroke.Element {
	var elems []stroke.Element
	for _, st := range s.strokes {
		if st.Hidden {
			continue
		}
		elems = append(elems, st.Elements(s.cfg.DotSize)...)
	}
	return elems
}

// Save writes all strokes in YAML format.
func (s *Surface) Save(w io.Writer) error {
	if len(s.strokes) == 0 {
		return ErrNoStrokes
	}
	return stroke.Save(w, s.strokes)
}

// Load replaces all strokes by strokes read in YAML format and redraws.
func (s *Surface) Load(r io.Reader) error {
	strokes, err := stroke.Load(r)
	if err != nil {
		return err
	}
	s.abort()
	s.selection.clear()
	s.strokes = strokes
	s.Redraw()
	return nil
}

// --- Pointer events --------------------------------------------------------

// PointerDown starts a gesture. Only the primary button starts gestures.
func (s *Surface) PointerDown(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	if s.active {
		// a lost release; finish the old gesture where it was
		s.finish(PointerEvent{}, false)
	}
	s.active = true
	s.dispatch(down, s.sample(ev))
}

// PointerMove continues a gesture. Moves are throttled.
func (s *Surface) PointerMove(ev PointerEvent) {
	if !s.active {
		return
	}
	s.throttle.Call(ev)
}

// PointerUp finishes a gesture at the release position. A retained move is
// delivered first.
func (s *Surface) PointerUp(ev PointerEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	s.finish(ev, true)
}

// LostCapture finishes a gesture whose release will never be delivered.
func (s *Surface) LostCapture(ev PointerEvent) {
	s.finish(ev, true)
}

// Tick delivers a retained pointer move, if its time has come. Hosts call
// it from their event loop.
func (s *Surface) Tick() {
	s.throttle.Tick()
}

// Hover reports the selection handle under a pointer without a pressed
// button. Outside Select mode there is no handle.
func (s *Surface) Hover(ev PointerEvent) Handle {
	if s.mode != Select || s.active {
		return HandleNone
	}
	pt := s.sample(ev)
	return s.selection.handleAt(pt.X, pt.Y, s.cfg.EdgeTolerance)
}

func (s *Surface) moved(ev PointerEvent) {
	if s.active {
		s.dispatch(move, s.sample(ev))
	}
}

// finish ends an active gesture. If release is set, the gesture ends at the
// position of ev, otherwise where it was last seen.
func (s *Surface) finish(ev PointerEvent, release bool) {
	if !s.active {
		return
	}
	s.throttle.Flush()
	s.active = false
	if release {
		s.dispatch(up, s.sample(ev))
		return
	}
	s.dispatch(up, s.lastSeen())
}

// abort drops a gesture in progress without finishing it.
func (s *Surface) abort() {
	s.throttle.Cancel()
	s.active = false
	s.engine.Reset()
	s.eraser.Reset()
	s.lasso.Reset()
	s.selection.endDrag()
}

// lastSeen returns the latest position of the gesture in progress.
func (s *Surface) lastSeen() ink.Sample {
	if st := s.engine.Stroke(); st != nil {
		if last, ok := st.Last(); ok {
			return last
		}
	}
	if last, ok := s.eraser.Previous(); ok {
		return last
	}
	if s.selection.dragging() {
		return s.selection.from
	}
	if v := s.lasso.Vertices(); len(v) > 0 {
		return s.samples.NewSample(v[len(v)-1].X(), v[len(v)-1].Y(), s.pressure)
	}
	return s.samples.NewSample(0, 0, s.pressure)
}

// sample converts ev to a sample in surface coordinates. A reported pressure
// sticks for subsequent events without pressure.
func (s *Surface) sample(ev PointerEvent) ink.Sample {
	if ev.Pressure > 0 {
		s.pressure = ev.Pressure
	}
	return s.samples.SampleAt(ev.X-s.cfg.OriginX, ev.Y-s.cfg.OriginY, s.pressure, ev.Time)
}

// --- Mode transitions ------------------------------------------------------

func (s *Surface) dispatch(ph phase, pt ink.Sample) {
	tracer().Debugf("%s %s at %s", s.mode, ph, pt)
	switch s.mode {
	case Pen:
		s.pen(ph, pt)
	case Eraser:
		s.erase(ph, pt)
	case Select:
		s.sel(ph, pt)
	default:
		panic(fmt.Sprintf("canvas: invalid mode %d", int(s.mode)))
	}
}

func (s *Surface) pen(ph phase, pt ink.Sample) {
	switch ph {
	case down:
		st := stroke.New(s.cfg.PenColor, s.cfg.Radius)
		s.strokes = append(s.strokes, st)
		s.engine.Begin(st)
		s.engine.Add(pt)
	case move:
		s.engine.Add(pt)
	case up:
		s.engine.End(pt)
	}
}

func (s *Surface) erase(ph phase, pt ink.Sample) {
	switch ph {
	case down:
		s.eraser.Reset()
		fallthrough
	case move:
		hits := s.eraser.HitTest(s.strokes, pt)
		if len(hits) == 0 {
			return
		}
		for _, st := range hits {
			st.Hidden = true
		}
		tracer().Infof("erased %d strokes", len(hits))
		s.Redraw()
	case up:
		s.eraser.Reset()
	}
}

func (s *Surface) sel(ph phase, pt ink.Sample) {
	switch ph {
	case down:
		if h := s.selection.handleAt(pt.X, pt.Y, s.cfg.EdgeTolerance); h != HandleNone {
			s.selection.startDrag(h, pt)
			return
		}
		if !s.selection.isEmpty() {
			s.selection.clear()
			s.Redraw()
		}
		s.lasso.Reset()
		s.lassoTo(pt)
	case move:
		if s.selection.dragging() {
			if s.selection.dragTo(pt) {
				s.Redraw()
			}
			return
		}
		s.lassoTo(pt)
	case up:
		if s.selection.dragging() {
			s.selection.dragTo(pt)
			s.selection.endDrag()
			s.Redraw()
			return
		}
		s.lasso.Add(pt.X, pt.Y)
		strokes, box := s.lasso.Select(s.strokes)
		s.selection.set(strokes, box)
		s.lasso.Reset()
		s.Redraw()
	}
}

func (s *Surface) lassoTo(pt ink.Sample) {
	n := s.lasso.Len()
	s.lasso.Add(pt.X, pt.Y)
	if s.lasso.Len() > n {
		stroke.DrawRing(s.sink, pt.X, pt.Y, RingRadius, ink.ColorOrBlack(s.cfg.SelectionColor))
	}
}
