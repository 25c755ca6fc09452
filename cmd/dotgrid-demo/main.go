// Command dotgrid-demo demonstrates the dotgrid drawing core: it paints
// a small scene with every brush shape and tool, then quantizes it down
// to a handful of colors.
package main

import (
	"flag"
	"log"

	"github.com/dotgrid/dotgrid"
)

func main() {
	var (
		width  = flag.Int("width", 256, "canvas width")
		height = flag.Int("height", 256, "canvas height")
		colors = flag.Int("colors", 8, "palette size for the quantized copy")
		output = flag.String("output", "demo.png", "output file")
		quant  = flag.String("quantized", "demo_quantized.png", "quantized output file")
	)
	flag.Parse()

	pm := dotgrid.NewPixmap(*width, *height)
	pm.Clear(dotgrid.White)

	history := dotgrid.NewHistory(32)
	history.Push(pm)
	events := dotgrid.NewEventQueue(64)

	drawBrushSampler(pm, events)
	drawShapes(pm, events)
	fillBackground(pm, events)
	history.Push(pm)

	for _, ev := range events.Drain() {
		log.Printf("edit: %s region=%v", ev.Kind, ev.Region)
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	reduced := dotgrid.ReducePalette(pm, dotgrid.ReduceOptions{
		Colors:    *colors,
		Algorithm: dotgrid.AlgorithmMedianCut,
		Dither:    true,
	})
	if err := reduced.SavePNG(*quant); err != nil {
		log.Fatalf("Failed to save quantized copy: %v", err)
	}

	log.Printf("Demo saved to %s and %s (%dx%d)\n", *output, *quant, *width, *height)
}

// drawBrushSampler stamps one column per brush shape at a few sizes.
func drawBrushSampler(pm *dotgrid.Pixmap, events *dotgrid.EventQueue) {
	shapes := []dotgrid.BrushShape{
		dotgrid.ShapeSquare,
		dotgrid.ShapeCircle,
		dotgrid.ShapeDiamond,
		dotgrid.ShapeHorizontal,
		dotgrid.ShapeVertical,
		dotgrid.ShapeSlash,
		dotgrid.ShapeBackslash,
	}
	hues := []dotgrid.Color{
		dotgrid.Red, dotgrid.Green, dotgrid.Blue,
		dotgrid.Yellow, dotgrid.Cyan, dotgrid.Magenta, dotgrid.Black,
	}

	for i, shape := range shapes {
		x := 20 + i*32
		for j, size := range []int{3, 7, 13} {
			b := dotgrid.Brush{Shape: shape, Size: size, Color: hues[i], Opacity: 1}
			region := dotgrid.StampBrush(pm, b, x, 24+j*28)
			events.Push(dotgrid.EditEvent{Kind: dotgrid.EditStamp, Region: region})
		}
	}
}

// drawShapes exercises the line, rectangle and ellipse tools.
func drawShapes(pm *dotgrid.Pixmap, events *dotgrid.EventQueue) {
	pen := dotgrid.Brush{Shape: dotgrid.ShapeCircle, Size: 3, Color: dotgrid.Hex("#333333"), Opacity: 1}

	region := dotgrid.DrawLine(pm, pen, 16, 120, 240, 140)
	events.Push(dotgrid.EditEvent{Kind: dotgrid.EditLine, Region: region})

	region = dotgrid.DrawRectangleOutline(pm, pen, 24, 156, 116, 232)
	events.Push(dotgrid.EditEvent{Kind: dotgrid.EditRectangle, Region: region})

	region = dotgrid.DrawEllipseOutline(pm, pen, 140, 156, 232, 232)
	events.Push(dotgrid.EditEvent{Kind: dotgrid.EditEllipse, Region: region})

	// Freehand-style polyline through a few samples.
	samples := [][2]int{{16, 110}, {60, 96}, {120, 112}, {200, 92}, {240, 104}}
	for i := 1; i < len(samples); i++ {
		region = dotgrid.StrokeTo(pm, pen,
			samples[i-1][0], samples[i-1][1], samples[i][0], samples[i][1])
		events.Push(dotgrid.EditEvent{Kind: dotgrid.EditStroke, Region: region})
	}
}

// fillBackground flood-fills the rectangle interior drawn by
// drawShapes.
func fillBackground(pm *dotgrid.Pixmap, events *dotgrid.EventQueue) {
	region := dotgrid.FloodFill(pm, 70, 194, dotgrid.Hex("#88CCFF"))
	events.Push(dotgrid.EditEvent{Kind: dotgrid.EditFill, Region: region})
}
