package stroke

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ink"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(nil, 0)
	var strokes []*Stroke
	for _, n := range []int{1, 2, 5, 11} {
		st := New("#336699", 2.5)
		e.Begin(st)
		pts := diagonal(n)
		for _, s := range pts[:n-1] {
			e.Add(s)
		}
		e.End(pts[n-1].At(ink.P(pts[n-1].X+3, pts[n-1].Y+1)))
		strokes = append(strokes, st)
	}
	strokes[1].Hidden = true
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, strokes))
	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, len(strokes))
	for i, st := range loaded {
		orig := strokes[i]
		assert.Equal(t, orig.Color, st.Color)
		assert.Equal(t, orig.Radius, st.Radius)
		assert.Equal(t, orig.Hidden, st.Hidden)
		assert.NotEqual(t, orig.ID, st.ID, "replayed strokes get fresh IDs")
		if diff := cmp.Diff(orig.Raw(), st.Raw()); diff != "" {
			t.Errorf("raw samples of stroke #%d differ (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(orig.Smoothed(), st.Smoothed()); diff != "" {
			t.Errorf("smoothed samples of stroke #%d differ (-want +got):\n%s", i, diff)
		}
		assert.Equal(t, orig.Bounds(), st.Bounds())
		assert.Equal(t, orig.Fragments(), st.Fragments())
	}
}

func TestRecordLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := New("red", 1.5)
	st.Append(ink.Sample{X: 1, Y: 2, Pressure: 0.25, Time: 7})
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, []*Stroke{st}))
	var recs []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, st.Record(), recs[0])
	var layout []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &layout))
	require.Len(t, layout, 1)
	assert.ElementsMatch(t, []string{"id", "color", "radius", "points"}, keys(layout[0]))
	points, ok := layout[0]["points"].([]any)
	require.True(t, ok)
	require.Len(t, points, 1)
	point, ok := points[0].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"x", "y", "pressure", "time"}, keys(point))
	assert.Equal(t, 2, point["y"])
	assert.Equal(t, 0.25, point["pressure"])
}

func keys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

func TestSaveLoadMovedStroke(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := diagonal(13)
	for i := range pts {
		pts[i].X += 0.37 * float64(i%3)
		pts[i].Y += 1.0 / 3.0
	}
	moved := New("black", 1.5)
	capture(NewEngine(nil, 0), moved, pts)
	moved.Transform(ink.Translation(ink.P(0.1, 0.7)))
	resized := New("black", 1.5)
	capture(NewEngine(nil, 0), resized, pts)
	resized.Transform(ink.ScalingAround(ink.P(3.3, 1.1), 1.7, 0.9))
	strokes := []*Stroke{moved, resized}
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, strokes))
	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Len(t, loaded, len(strokes))
	for i, st := range loaded {
		if diff := cmp.Diff(strokes[i].Smoothed(), st.Smoothed()); diff != "" {
			t.Errorf("smoothed samples of stroke #%d differ (-want +got):\n%s", i, diff)
		}
		assert.Equal(t, strokes[i].Fragments(), st.Fragments())
		assert.Equal(t, strokes[i].Bounds(), st.Bounds())
	}
}

func TestLoadEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	strokes, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, strokes)
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Load(strings.NewReader("- id: 1\n  color: red\n  points: []\n"))
	assert.True(t, errors.Is(err, ErrEmptyRecord))
	_, err = Load(strings.NewReader("{not: [a list"))
	assert.Error(t, err)
	_, err = Replay(Record{})
	assert.ErrorIs(t, err, ErrEmptyRecord)
}
