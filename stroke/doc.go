/*
Package stroke captures freehand strokes and renders them as chains of
variable-width Bézier fragments.

An Engine consumes the raw samples of one stroke, stabilizes them into
smoothed samples and emits fragments to a Sink as soon as enough smoothed
samples are available. On pointer release the tail of the stroke is tapered
and flushed. Strokes can be redrawn later from their smoothed samples, giving
exactly the fragments emitted during capture.

Strokes are persisted as an ordered list of records holding their raw samples;
replaying a record through an Engine reconstructs the stroke.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stroke

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink.stroke'
func tracer() tracing.Trace {
	return tracing.Select("ink.stroke")
}
