// Command inkrender renders ink strokes to SVG, PDF or PNG.
//
// Strokes are either loaded from a stroke file, or produced by replaying a
// recorded pointer session:
//
//	inkrender -strokes drawing.yaml -out drawing.svg
//	inkrender -events session.yaml -config pen.toml -out drawing.png -width 800 -height 600
//
// The output format is chosen by the file extension of -out.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ink"
	"github.com/npillmayer/ink/canvas"
	"github.com/npillmayer/ink/export"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	var (
		strokes = flag.String("strokes", "", "stroke file (YAML)")
		events  = flag.String("events", "", "recorded pointer session (YAML)")
		config  = flag.String("config", "", "surface configuration (TOML)")
		output  = flag.String("out", "ink.svg", "output file: .svg, .pdf or .png")
		save    = flag.String("save", "", "write the strokes to this file (YAML)")
		width   = flag.Int("width", 640, "output width")
		height  = flag.Int("height", 480, "output height")
		verbose = flag.Bool("v", false, "trace progress")
	)
	flag.Parse()
	if *verbose {
		for _, key := range []string{"ink", "ink.bezier", "ink.stroke", "ink.query", "ink.canvas", "ink.export"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		}
	}
	if (*strokes == "") == (*events == "") {
		log.Fatalf("exactly one of -strokes or -events is required")
	}
	cfg := canvas.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = loadConfig(*config); err != nil {
			log.Fatalf("%v", err)
		}
	}
	surf := canvas.NewSurface(nil, cfg, nil)
	var err error
	if *strokes != "" {
		err = withFile(*strokes, surf.Load)
	} else {
		err = withFile(*events, func(r io.Reader) error {
			evs, err := canvas.ReadEvents(r)
			if err != nil {
				return err
			}
			return surf.Play(evs)
		})
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *save != "" {
		if err := create(*save, surf.Save); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := render(surf, *output, float64(*width), float64(*height)); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("rendered %d strokes to %s (%dx%d)", len(surf.Strokes()), *output, *width, *height)
}

func loadConfig(name string) (canvas.Config, error) {
	var cfg canvas.Config
	err := withFile(name, func(r io.Reader) error {
		var err error
		cfg, err = canvas.LoadConfig(r)
		return err
	})
	return cfg, err
}

// render writes the visible strokes of surf in the format given by the
// extension of name.
func render(surf *canvas.Surface, name string, width, height float64) error {
	elems := surf.Elements()
	if len(elems) == 0 {
		return canvas.ErrNoStrokes
	}
	cfg := surf.Config()
	bg, err := ink.ParseColor(cfg.Background)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".svg":
		return create(name, func(w io.Writer) error {
			return export.WriteSVG(w, elems, width, height, cfg.Background)
		})
	case ".pdf":
		sink := export.NewPDFSink(width, height, bg)
		sink.Clear()
		for _, st := range surf.Strokes() {
			st.Draw(sink, cfg.DotSize)
		}
		return create(name, sink.Output)
	case ".png":
		img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
		sink := export.NewRasterSink(img, bg)
		sink.Clear()
		for _, st := range surf.Strokes() {
			st.Draw(sink, cfg.DotSize)
		}
		return create(name, func(w io.Writer) error {
			return png.Encode(w, img)
		})
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func withFile(name string, f func(io.Reader) error) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := f(file); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func create(name string, f func(io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := f(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return file.Close()
}
