package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/npillmayer/ink/stroke"
)

// PDFSink draws onto a single PDF page. Coordinates are PDF points, with the
// origin in the top left corner, just like on a surface.
type PDFSink struct {
	pdf        *gofpdf.Fpdf
	width      float64
	height     float64
	background color.Color
	fill, line color.Color
	path       path
	LineWidth  float64 // width of outlines
}

var _ stroke.Sink = (*PDFSink)(nil)

// NewPDFSink creates a PDF document with one page of the given size.
// A nil background means transparent.
func NewPDFSink(width, height float64, background color.Color) *PDFSink {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	if background == nil {
		background = color.Transparent
	}
	return &PDFSink{
		pdf:        pdf,
		width:      width,
		height:     height,
		background: background,
		fill:       color.Black,
		line:       color.Black,
		LineWidth:  1,
	}
}

// Clear paints the page with the background color. PDF pages cannot be
// erased, so a transparent background leaves previous drawing visible.
func (ps *PDFSink) Clear() {
	ps.path.reset()
	if _, _, _, a := ps.background.RGBA(); a == 0 {
		return
	}
	ps.useFill(ps.background)
	ps.pdf.Rect(0, 0, ps.width, ps.height, "F")
}

func (ps *PDFSink) SetFillColor(c color.Color)   { ps.fill = c }
func (ps *PDFSink) SetStrokeColor(c color.Color) { ps.line = c }
func (ps *PDFSink) BeginPath()                   { ps.path.reset() }
func (ps *PDFSink) MoveTo(x, y float64)          { ps.path.moveTo(x, y) }
func (ps *PDFSink) LineTo(x, y float64)          { ps.path.lineTo(x, y) }
func (ps *PDFSink) Arc(x, y, radius float64)     { ps.path.circle(x, y, radius) }
func (ps *PDFSink) ClosePath()                   { ps.path.closePath() }

// Fill fills the current path with the fill color.
func (ps *PDFSink) Fill() {
	ps.useFill(ps.fill)
	ps.draw("F")
}

// Stroke outlines the current path with the stroke color.
func (ps *PDFSink) Stroke() {
	r, g, b, a := rgb8(ps.line)
	ps.pdf.SetDrawColor(r, g, b)
	ps.pdf.SetAlpha(a, "Normal")
	ps.pdf.SetLineWidth(ps.LineWidth)
	ps.draw("D")
}

// Output writes the PDF document.
func (ps *PDFSink) Output(w io.Writer) error {
	if err := ps.pdf.Output(w); err != nil {
		tracer().Errorf("writing pdf: %v", err)
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func (ps *PDFSink) useFill(c color.Color) {
	r, g, b, a := rgb8(c)
	ps.pdf.SetFillColor(r, g, b)
	ps.pdf.SetAlpha(a, "Normal")
}

// draw renders circles and polylines of the current path with a gofpdf
// style string. The path is kept, as on a 2D canvas.
func (ps *PDFSink) draw(style string) {
	for _, s := range ps.path.segments() {
		if s.kind == segCircle {
			ps.pdf.Circle(s.x, s.y, s.r, style)
		}
	}
	for _, line := range ps.path.polylines() {
		ps.pdf.MoveTo(line[0].x, line[0].y)
		for _, s := range line[1:] {
			ps.pdf.LineTo(s.x, s.y)
		}
		ps.pdf.DrawPath(style)
	}
}

// rgb8 converts c to non-premultiplied 8-bit components and an alpha
// in [0…1].
func rgb8(c color.Color) (r, g, b int, a float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}
