// Package query answers geometric questions about drawn strokes: which
// strokes an eraser gesture hits, and which strokes a lasso selects.
/*
Both queries first narrow the candidates down by bounding boxes, then look
at the segments between consecutive smoothed samples of a stroke.

An eraser is stateful: it remembers the previous query point of a gesture,
so that fast pointer movements, which deliver points far apart, still hit
strokes lying between them. Clients have to call Reset between gestures.

	er := query.NewEraser()
	for _, pt := range gesture {
	    for _, st := range er.HitTest(strokes, pt) {
	        st.Hidden = true
	    }
	}
	er.Reset()

A lasso collects the vertices of a freehand outline. Its containment test
sums the angles under which the vertices are seen from a point.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink.query'
func tracer() tracing.Trace {
	return tracing.Select("ink.query")
}
