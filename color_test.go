package ink

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := ParseColor("black")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 0xff}, c)
	c, err = ParseColor("#f00")
	assert.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)
	c, err = ParseColor("#00FF0080")
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)
	assert.Equal(t, uint8(0x80), c.G, "colors are alpha-premultiplied")
	_, err = ParseColor("no-such-color")
	assert.True(t, errors.Is(err, ErrUnknownColor))
	_, err = ParseColor("#12345")
	assert.True(t, errors.Is(err, ErrUnknownColor))
	assert.Equal(t, color.RGBA{A: 0xff}, ColorOrBlack("#zzzzzz"))
}
