/*
Package canvas connects the inking machinery to a pointer source and a
drawing sink.

A Surface receives pointer events from the host (down, move, up, lost
capture and hover), converts them to samples and dispatches them to the
active mode: drawing with a pen, erasing, or selecting strokes with a lasso.
Selected strokes can be moved and resized by dragging the selection box.

Surfaces are single-threaded. Pointer moves are throttled; there are no
goroutines or timers, so the host's event loop has to call Tick regularly to
deliver a retained move event.

	surf := canvas.NewSurface(sink, canvas.DefaultConfig(), nil)
	surf.PointerDown(canvas.PointerEvent{X: 10, Y: 10, Pressure: 0.4})
	surf.PointerMove(canvas.PointerEvent{X: 12, Y: 15})
	surf.PointerUp(canvas.PointerEvent{X: 14, Y: 19})

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package canvas

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink.canvas'
func tracer() tracing.Trace {
	return tracing.Select("ink.canvas")
}
