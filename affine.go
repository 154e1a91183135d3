package ink

import "fmt"

// === Affine Transformations ================================================

// AT is an affine transform of positions, used e.g. when moving or resizing
// a selection of strokes. It maps (x,y) to (a·x + b·y + tx, c·x + d·y + ty).
// The zero value collapses every position onto the origin; start from
// Identity.
type AT struct {
	a, b, tx float64
	c, d, ty float64
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{a: 1, d: 1}
}

// Translation transform. Moves a point by vector p.
func Translation(p Pair) AT {
	return AT{a: 1, d: 1, tx: p.X(), ty: p.Y()}
}

// Scaling transform. Scales a point relative to the origin by sx and sy.
func Scaling(sx, sy float64) AT {
	return AT{a: sx, d: sy}
}

// ScalingAround returns a transform scaling by sx and sy while keeping
// the point fix in place.
func ScalingAround(fix Pair, sx, sy float64) AT {
	return Translation(-fix).Combine(Scaling(sx, sy)).Combine(Translation(fix))
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m.a, m.b, m.tx, m.c, m.d, m.ty)
}

// Combine m and n to a new transform, applying m first and n second.
func (m AT) Combine(n AT) AT {
	return AT{
		a:  n.a*m.a + n.b*m.c,
		b:  n.a*m.b + n.b*m.d,
		tx: n.a*m.tx + n.b*m.ty + n.tx,
		c:  n.c*m.a + n.d*m.c,
		d:  n.c*m.b + n.d*m.d,
		ty: n.c*m.tx + n.d*m.ty + n.ty,
	}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m.a*x+m.b*y+m.tx, m.c*x+m.d*y+m.ty)
}
