package stroke

import (
	"image/color"
	"testing"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/bezier"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagonal(n int) []ink.Sample {
	pts := make([]ink.Sample, n)
	for i := range pts {
		pts[i] = ink.Sample{
			X:        float64(i) * 10,
			Y:        float64(i) * 10,
			Pressure: 0.3 + 0.05*float64(i%5),
			Time:     int64(i) * 16,
		}
	}
	return pts
}

// capture feeds samples through an engine and collects every element drawn.
func capture(e *Engine, st *Stroke, samples []ink.Sample) []Element {
	e.Begin(st)
	var elems []Element
	for _, s := range samples {
		elems = append(elems, e.Add(s)...)
	}
	return append(elems, e.Finish()...)
}

func fragmentsOf(elems []Element) []bezier.Fragment {
	var frags []bezier.Fragment
	for _, el := range elems {
		if !el.IsDot() {
			frags = append(frags, *el.Fragment)
		}
	}
	return frags
}

func TestEngineSingleSampleIsDot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &Recorder{}
	e := NewEngine(rec, 2)
	st := New("red", 1.5)
	elems := capture(e, st, []ink.Sample{{X: 5, Y: 5, Pressure: 0.5, Time: 1}})
	require.Len(t, elems, 1)
	assert.True(t, elems[0].IsDot())
	assert.Equal(t, 5.0, elems[0].Center.X)
	assert.Equal(t, 2.0, elems[0].Radius)
	assert.Equal(t, 1, rec.Count("arc"))
	assert.Equal(t, 1, rec.Count("fill"))
	assert.Equal(t, 1, rec.Count("fillcolor"))
	assert.Equal(t, Empty, e.State())
}

func TestEngineTapWithRelease(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &Recorder{}
	e := NewEngine(rec, 0)
	st := New("black", 1.5)
	e.Begin(st)
	assert.Equal(t, Capturing, e.State())
	assert.Empty(t, e.Add(ink.Sample{X: 3, Y: 4, Pressure: 0.5, Time: 1}))
	elems := e.End(ink.Sample{X: 3, Y: 4, Pressure: 0.5, Time: 9})
	require.Len(t, elems, 1, "release at the same position is dropped")
	assert.True(t, elems[0].IsDot())
	assert.Equal(t, st.Radius, elems[0].Radius, "dot size defaults to pen radius")
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, 1, rec.Count("arc"))
}

func TestEngineTwoSamplesIsDot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := New("black", 1.5)
	elems := capture(NewEngine(nil, 1), st, diagonal(2))
	require.Len(t, elems, 1)
	assert.True(t, elems[0].IsDot())
	assert.Equal(t, 0.0, elems[0].Center.X)
	assert.Len(t, st.Smoothed(), 2)
}

func TestEngineThreeCollinearSamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []ink.Sample{
		{X: 0, Y: 0, Pressure: 0.5, Time: 0},
		{X: 1, Y: 0, Pressure: 0.5, Time: 10},
		{X: 2, Y: 0, Pressure: 0.5, Time: 20},
	}
	st := New("black", 1.5)
	elems := capture(NewEngine(nil, 0), st, pts)
	require.NotEmpty(t, elems)
	for _, el := range elems {
		require.False(t, el.IsDot())
		assert.Equal(t, el.Widths.Start, el.Widths.End)
		assert.Equal(t, 0.0, el.Fragment.C1.Y)
		assert.Equal(t, 0.0, el.Fragment.C2.Y)
	}
	assert.Equal(t, pts[0], elems[0].Fragment.P0)
	assert.Equal(t, pts[2].X, elems[len(elems)-1].Fragment.P3.X)
}

func TestEngineIncrementalEqualsRedraw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 3; n <= 12; n++ {
		st := New("blue", 2)
		elems := capture(NewEngine(nil, 0), st, diagonal(n))
		assert.Equal(t, st.Fragments(), fragmentsOf(elems), "stroke of %d samples", n)
		assert.Len(t, st.Fragments(), len(st.Smoothed())-1)
		redrawn := fragmentsOf(st.Elements(0))
		assert.Equal(t, st.Fragments(), redrawn)
	}
}

func TestEngineSmoothedNeverOutgrowsRaw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(nil, 0)
	st := New("black", 1.5)
	e.Begin(st)
	for _, s := range diagonal(20) {
		e.Add(s)
		assert.LessOrEqual(t, len(st.Smoothed()), len(st.Raw()))
	}
	e.End(ink.Sample{X: 500, Y: 180, Time: 400})
	assert.LessOrEqual(t, len(st.Smoothed()), len(st.Raw()))
	last, ok := st.Last()
	require.True(t, ok)
	assert.Equal(t, ink.TaperPressure, last.Pressure)
	assert.True(t, st.Smoothed()[len(st.Smoothed())-1].Equal(last))
}

func TestEngineDropsDuplicates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(nil, 0)
	st := New("black", 1.5)
	e.Begin(st)
	s := ink.Sample{X: 1, Y: 1, Pressure: 0.5, Time: 1}
	e.Add(s)
	e.Add(s.WithPressure(0.9))
	assert.Equal(t, 1, st.Len())
}

func TestEngineSampleOutsideStroke(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(nil, 0)
	assert.Nil(t, e.Add(ink.Sample{X: 1, Y: 1}))
	assert.Nil(t, e.Finish())
	assert.Nil(t, e.Stroke())
}

func TestEngineBoundsFollowRaw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := New("black", 1.5)
	capture(NewEngine(nil, 0), st, diagonal(6))
	b := st.Bounds()
	assert.Equal(t, 0.0, b.Left)
	assert.Equal(t, 50.0, b.Right)
	assert.Equal(t, 50.0, b.Bottom)
	assert.True(t, st.Contains(25, 25))
	assert.False(t, st.Contains(60, 25))
}

func TestHiddenStrokeIsNotDrawn(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := New("black", 1.5)
	capture(NewEngine(nil, 0), st, diagonal(8))
	rec := &Recorder{}
	st.Hidden = true
	st.Draw(rec, 0)
	assert.Empty(t, rec.Ops)
	st.Hidden = false
	st.Draw(rec, 0)
	assert.Equal(t, len(st.Fragments()), rec.Count("fill"))
}

func TestStrokeTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := New("black", 1.5)
	capture(NewEngine(nil, 0), st, diagonal(6))
	before := append([]ink.Sample(nil), st.Smoothed()...)
	st.Transform(ink.Translation(ink.P(100, -10)))
	b := st.Bounds()
	assert.Equal(t, 100.0, b.Left)
	assert.Equal(t, -10.0, b.Top)
	assert.Equal(t, 150.0, b.Right)
	for i, s := range st.Smoothed() {
		assert.InDelta(t, before[i].X+100, s.X, 1e-9)
		assert.InDelta(t, before[i].Y-10, s.Y, 1e-9)
		assert.Equal(t, before[i].Pressure, s.Pressure)
	}
}

func TestStrokeIDsIncrease(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := New("black", 0), New("black", 0)
	assert.Greater(t, b.ID, a.ID)
	assert.Equal(t, DefaultRadius, a.Radius)
}

func TestRecorderReplay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := New("green", 1.5)
	rec := &Recorder{}
	capture(NewEngine(rec, 0), st, diagonal(7))
	copied := &Recorder{}
	rec.Replay(copied)
	assert.Equal(t, rec.Ops, copied.Ops)
	rec.Reset()
	assert.Empty(t, rec.Ops)
}

func TestDrawBoxClosesPathBeforeStroking(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &Recorder{}
	DrawBox(rec, ink.Rect(1, 2, 3, 4), color.Black)
	require.Len(t, rec.Ops, 9)
	assert.Equal(t, "close", rec.Ops[7].Name)
	assert.Equal(t, "stroke", rec.Ops[8].Name)
	rec.Reset()
	DrawBox(rec, ink.Region{}, color.Black)
	assert.Empty(t, rec.Ops)
}
