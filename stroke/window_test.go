package stroke

import (
	"testing"

	"github.com/npillmayer/ink"
	"github.com/stretchr/testify/assert"
)

func TestWindowOrder(t *testing.T) {
	var w window
	for i := 0; i < 3; i++ {
		w.push(ink.Sample{X: float64(i)})
	}
	w.pushFront(ink.Sample{X: -1})
	assert.Equal(t, 4, w.len())
	assert.Equal(t, -1.0, w.at(0).X)
	assert.Equal(t, 2.0, w.last().X)
	// wrap around a couple of times
	for i := 3; i < 10; i++ {
		w.dropFirst()
		w.push(ink.Sample{X: float64(i)})
		assert.Equal(t, float64(i-3), w.at(0).X)
		assert.Equal(t, float64(i), w.last().X)
	}
	assert.Panics(t, func() { w.push(ink.Sample{}) })
	w.reset()
	assert.Equal(t, 0, w.len())
	w.dropFirst()
	assert.Equal(t, 0, w.len())
}
