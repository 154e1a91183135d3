package query

import (
	"fmt"

	"github.com/npillmayer/ink"
)

// Segment is the straight connection of two consecutive smoothed samples.
type Segment struct {
	P1, P2 ink.Sample
}

// Pretty Stringer for segments.
func (seg Segment) String() string {
	return fmt.Sprintf("(%g,%g)--(%g,%g)", seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y)
}

// Region returns the bounding box of seg.
func (seg Segment) Region() ink.Region {
	return ink.NewRegion(seg.P1, seg.P2)
}

// Slope measures how far (x,y) is off the line through seg. It compares
// the relative position of (x,y) within the segment's box along both axes;
// points on the line have slope 0, and points on opposite sides of the
// line have slopes of opposite sign.
//
// Horizontal or vertical segments produce infinite or NaN slopes.
func (seg Segment) Slope(x, y float64) float64 {
	dx := seg.P2.X - seg.P1.X
	dy := seg.P2.Y - seg.P1.Y
	tx := (x - seg.P1.X) / dx
	ty := (y - seg.P1.Y) / dy
	return tx - ty
}
