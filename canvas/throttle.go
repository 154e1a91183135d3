package canvas

import "github.com/npillmayer/ink"

// Throttle limits the rate of pointer moves. The first event after a quiet
// interval is delivered at once; events arriving within the interval are
// retained, and only the latest one is delivered later by Tick or Flush.
type Throttle struct {
	interval int64 // ms
	clock    ink.Clock
	fn       func(PointerEvent)
	last     int64 // time of the latest delivery
	ran      bool
	pending  PointerEvent
	waiting  bool
}

// NewThrottle creates a throttle delivering events to fn at most once per
// interval milliseconds. An interval ≤ 0 delivers every event. A nil clock
// means wall clock.
func NewThrottle(interval int64, clock ink.Clock, fn func(PointerEvent)) *Throttle {
	if clock == nil {
		clock = ink.WallClock
	}
	return &Throttle{interval: interval, clock: clock, fn: fn}
}

// Call delivers ev if the interval has elapsed, otherwise retains it.
// A clock going backwards counts as an elapsed interval.
func (th *Throttle) Call(ev PointerEvent) {
	now := th.clock()
	if th.due(now) {
		th.run(ev, now)
		return
	}
	th.pending, th.waiting = ev, true
}

// Tick delivers a retained event if the interval has elapsed.
func (th *Throttle) Tick() {
	if !th.waiting {
		return
	}
	if now := th.clock(); th.due(now) {
		th.run(th.pending, now)
	}
}

// Flush delivers a retained event at once.
func (th *Throttle) Flush() {
	if th.waiting {
		th.run(th.pending, th.clock())
	}
}

// Cancel drops a retained event.
func (th *Throttle) Cancel() {
	th.waiting = false
}

// Pending is a predicate: is an event retained?
func (th *Throttle) Pending() bool {
	return th.waiting
}

func (th *Throttle) due(now int64) bool {
	return !th.ran || th.interval <= 0 || now-th.last >= th.interval || now < th.last
}

func (th *Throttle) run(ev PointerEvent, now int64) {
	th.waiting = false
	th.last, th.ran = now, true
	th.fn(ev)
}
