/*
Package ink implements the geometric primitives for capturing and inking
freehand pointer strokes: samples, pairs, regions, the sample stabilizer
and affine transformations.

Higher level functionality lives in sub-packages: bezier builds variable-width
curve fragments, stroke captures and renders strokes, query answers erase and
lasso-selection queries, and canvas wires everything to a pointer source.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package ink

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink'
func tracer() tracing.Trace {
	return tracing.Select("ink")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D-point or vector, stored as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Abs is the length of p, interpreted as a vector.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// IsNaN is a predicate: has either part of p gone NaN?
func (p Pair) IsNaN() bool {
	return math.IsNaN(p.X()) || math.IsNaN(p.Y())
}

// Mid returns the midpoint between p and q.
func (p Pair) Mid(q Pair) Pair {
	return P((p.X()+q.X())/2.0, (p.Y()+q.Y())/2.0)
}
