package ink

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.Equal(t, 0.0, Zap(a))
	assert.Equal(t, 0.1, Zap(0.1))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	if r := p + q; r != Origin {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, P(0, 2), P(-1, 1).Mid(P(1, 3)))
	assert.Equal(t, 5.0, P(3, 4).Abs())
	assert.Equal(t, P(6, 4), p.Scaled(2))
	assert.True(t, P(math.NaN(), 0).IsNaN())
	assert.Equal(t, "(3,2)", p.String())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if Translation(P(-1, -1)).Transform(P(1, 1)) != Origin {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	s := Sample{X: 2, Y: 3, Pressure: 0.7, Time: 5}.Transformed(Translation(P(1, -1)))
	assert.Equal(t, Sample{X: 3, Y: 2, Pressure: 0.7, Time: 5}, s)
}

func TestScalingAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := ScalingAround(P(10, 10), 2, 1)
	assert.Equal(t, P(10, 10), m.Transform(P(10, 10)), "fix point must stay in place")
	assert.Equal(t, P(14, 12), m.Transform(P(12, 12)))
	assert.Equal(t, P(6, 8), m.Transform(P(8, 8)))
}

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then translate
	m := Scaling(2, 2).Combine(Translation(P(1, 0)))
	assert.Equal(t, P(3, 2), m.Transform(P(1, 1)))
	assert.Equal(t, Identity().String(), Identity().Combine(Identity()).String())
}
