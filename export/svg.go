package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/stroke"
)

// SVGWidthFactor scales the end width of a fragment to the stroke width of
// its SVG path.
const SVGWidthFactor = 2.25

// WriteSVG writes elements as an SVG document of the given size.
// Fragments become cubic paths with round caps, dots become circles.
// Malformed fragments are left out. A background other than "" or
// "transparent" is painted first.
func WriteSVG(w io.Writer, elems []stroke.Element, width, height float64, background string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`+
		` viewBox="0 0 %s %s" width="%s" height="%s">`+"\n", num(width), num(height), num(width), num(height))
	if bg := strings.TrimSpace(background); bg != "" && bg != "transparent" {
		if _, err := ink.ParseColor(bg); err != nil {
			return fmt.Errorf("svg background: %w", err)
		}
		fmt.Fprintf(bw, `<rect x="0" y="0" width="100%%" height="100%%" fill="%s"/>`+"\n", attr(bg))
	}
	skipped := 0
	for _, el := range elems {
		color := el.Color
		if color == "" {
			color = "black"
		}
		if el.IsDot() {
			fmt.Fprintf(bw, `<circle r="%s" cx="%s" cy="%s" fill="%s"/>`+"\n",
				num(el.Radius), num(el.Center.X), num(el.Center.Y), attr(color))
			continue
		}
		f := el.Fragment
		if f.IsNaN() {
			skipped++
			continue
		}
		fmt.Fprintf(bw, `<path d="M %s,%s C %s,%s %s,%s %s,%s" stroke-width="%s" stroke="%s" fill="none" stroke-linecap="round"/>`+"\n",
			fix(f.P0.X), fix(f.P0.Y), fix(f.C1.X), fix(f.C1.Y), fix(f.C2.X), fix(f.C2.Y), fix(f.P3.X), fix(f.P3.Y),
			fix(el.Widths.End*SVGWidthFactor), attr(color))
	}
	fmt.Fprintln(bw, "</svg>")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("writing svg: %v", err)
		return fmt.Errorf("writing svg: %w", err)
	}
	tracer().Infof("wrote %d svg elements, skipped %d", len(elems)-skipped, skipped)
	return nil
}

func num(x float64) string {
	return fmt.Sprintf("%g", x)
}

func fix(x float64) string {
	return fmt.Sprintf("%.3f", x)
}

func attr(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
