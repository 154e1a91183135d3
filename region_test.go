package ink

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRegionFromCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRegion(Sample{X: 5, Y: 1}, Sample{X: 1, Y: 4})
	assert.Equal(t, 1.0, r.Left)
	assert.Equal(t, 5.0, r.Right)
	assert.Equal(t, 1.0, r.Top)
	assert.Equal(t, 4.0, r.Bottom)
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 3.0, r.Height())
	assert.True(t, Region{}.IsEmpty())
}

func TestRegionContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Rect(0, 0, 10, 10)
	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(10, 5))
	assert.False(t, r.Contains(10.1, 5))
	assert.False(t, Region{}.Contains(0, 0))
}

func TestRegionMerge(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Rect(0, 0, 2, 2)
	b := Rect(1, -1, 5, 1)
	ab, ba := a, b
	ab.Merge(b)
	ba.Merge(a)
	assert.Equal(t, ab, ba, "merge must be commutative")
	assert.Equal(t, Rect(0, -1, 5, 2), ab)
	again := ab
	again.Merge(b)
	assert.Equal(t, ab, again, "merge must be idempotent")
	var e Region
	e.Merge(a)
	assert.Equal(t, a, e, "empty region is the identity")
	a2 := a
	a2.Merge(Region{})
	assert.Equal(t, a, a2)
}

func TestRegionIntersects(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		a, b Region
		want bool
	}{
		{Rect(0, 0, 2, 2), Rect(1, 1, 3, 3), true},
		{Rect(0, 0, 2, 2), Rect(2, 0, 4, 2), false}, // touching only
		{Rect(0, 0, 2, 2), Rect(5, 5, 6, 6), false},
		{Rect(0, 0, 10, 10), Rect(4, 4, 5, 5), true},
		{Rect(0, 0, 2, 2), Region{}, false},
	}
	for i, c := range cases {
		assert.Equal(t, c.want, c.a.Intersects(c.b), "case %d", i)
		assert.Equal(t, c.a.Intersects(c.b), c.b.Intersects(c.a), "case %d must be symmetric", i)
	}
}

func TestRegionExtendAndClear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var r Region
	r.Extend(3, 4)
	assert.Equal(t, Rect(3, 4, 3, 4), r)
	r.Extend(-1, 8)
	assert.Equal(t, Rect(-1, 4, 3, 8), r)
	r.Translate(1, 1)
	assert.Equal(t, Rect(0, 5, 4, 9), r)
	r.Clear()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, "[empty]", r.String())
}

func TestRegionEdges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Rect(10, 10, 50, 30)
	assert.True(t, r.NearVerticalEdge(11.5, EdgeTolerance))
	assert.True(t, r.NearVerticalEdge(52, EdgeTolerance))
	assert.False(t, r.NearVerticalEdge(30, EdgeTolerance))
	assert.True(t, r.NearHorizontalEdge(29, EdgeTolerance))
	assert.False(t, r.NearHorizontalEdge(20, EdgeTolerance))
}

func TestRegionTransformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Rect(0, 0, 2, 4).Transformed(ScalingAround(P(0, 0), -1, 1))
	assert.Equal(t, Rect(-2, 0, 0, 4), r)
}
