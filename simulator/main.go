// Command simulator computes the flag layout for a window size without opening a
// display and prints the geometry every paint would emit.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/rook-computer/oldglory/internal/render"
	"github.com/rook-computer/oldglory/internal/render/layout"
	"github.com/rook-computer/oldglory/internal/render/rendertest"
	"github.com/rook-computer/oldglory/internal/usflag"
)

func main() {
	width := flag.Int("width", render.CanvasWidth, "window width in pixels")
	height := flag.Int("height", render.CanvasHeight, "window height in pixels")
	margin := flag.Int("margin", 0, "uniform inset around the flag in pixels")
	verbose := flag.Bool("v", false, "also print every star's vertices")
	flag.Parse()

	if *margin < 0 {
		fmt.Println("margin must not be negative")
		os.Exit(2)
	}
	report(os.Stdout, image.Pt(*width, *height), layout.Uniform(*margin), *verbose)
}

func report(w io.Writer, window image.Point, insets usflag.Insets, verbose bool) {
	rec := rendertest.NewRecorder(window.X, window.Y)
	canvas := usflag.Paint(rec, window, insets)

	fmt.Fprintf(w, "window  %dx%d\n", window.X, window.Y)
	fmt.Fprintf(w, "canvas  %dx%d at (%d,%d)", canvas.Width, canvas.Height, canvas.X, canvas.Y)
	if canvas.Height > 0 {
		fmt.Fprintf(w, " ratio %.4f", float64(canvas.Width)/float64(canvas.Height))
	}
	fmt.Fprintln(w)
	if canvas.Empty() {
		fmt.Fprintln(w, "nothing to paint")
		return
	}

	rects := rec.Filter(rendertest.OpRect)
	// rects: background, 13 stripes, 7 union bands.
	stripes := rects[1 : 1+usflag.StripeCount]
	union := rects[1+usflag.StripeCount:]
	covered := 0
	for i, op := range stripes {
		name := "white"
		if op.Color == usflag.OldGloryRed {
			name = "red"
		}
		fmt.Fprintf(w, "stripe  %2d %-5s %v\n", i, name, op.Rect)
		covered += op.Rect.Dy()
	}
	fmt.Fprintf(w, "stripes cover %d of %d rows\n", covered, canvas.Height)
	fmt.Fprintf(w, "union   %d bands, %dx%d\n", len(union), union[0].Rect.Dx(), union[len(union)-1].Rect.Max.Y-union[0].Rect.Min.Y)

	outer, inner := usflag.StarRadii(canvas.Height)
	stars := rec.Filter(rendertest.OpPolygon)
	fmt.Fprintf(w, "stars   %d, outer radius %.2f, inner radius %.2f\n", len(stars), outer, inner)
	for i, center := range usflag.StarCenters(canvas) {
		fmt.Fprintf(w, "star    %2d center %v", i, center)
		if verbose {
			fmt.Fprintf(w, " vertices %v", stars[i].Points)
		}
		fmt.Fprintln(w)
	}
}
