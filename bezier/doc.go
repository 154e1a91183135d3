// Package bezier builds cubic Bézier fragments from a sequence of smoothed
// samples and computes their pressure-dependent widths.
/*
A fragment connects two consecutive smoothed samples p2 and p3. Its control
points are derived from the neighbouring samples p1 and p4 by a tangent
estimation: for a triple (s1, s2, s3) the midpoints of the chords s1s2 and
s2s3 are shifted such that the point between them, weighted by the ratio of
the chord lengths, falls onto s2. Consecutive fragments therefore join
smoothly without solving a global spline system.

	frag, ok := bezier.Create(points, i)
	if ok && !frag.IsNaN() {
	    w := bezier.FragmentWidths(frag, radius)
	    for _, st := range frag.Stamps(w.Start, w.End) {
	        ...
	    }
	}

Widths follow a logistic mapping of pressure, centered at 0.5 and bounded by
[0, 2·radius]. Rendering steps are derived from an approximated arc length,
so longer fragments get proportionally more stamps.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink.bezier'
func tracer() tracing.Trace {
	return tracing.Select("ink.bezier")
}
