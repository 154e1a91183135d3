/*
Package export writes strokes to vector and raster formats.

WriteSVG serializes the render elements of strokes as SVG paths. PDFSink and
RasterSink are drawing sinks, so strokes may be drawn onto a PDF page or an
image exactly as onto an interactive surface.

	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	sink := export.NewRasterSink(img, color.White)
	for _, st := range strokes {
	    st.Draw(sink, 0)
	}

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package export

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ink.export'
func tracer() tracing.Trace {
	return tracing.Select("ink.export")
}
