// Package dotgrid provides the algorithmic core of a pixel-art editor.
//
// # Overview
//
// dotgrid operates on an in-memory RGBA raster buffer ([Pixmap]) and
// implements the two subsystems a pixel editor cannot fake: deterministic
// geometric rasterization (brush stamping, stroke interpolation, shape
// outlines, flood fill) and color-palette quantization (median-cut,
// k-means and frequency palette extraction, remapping, Floyd-Steinberg
// dithering).
//
// # Quick Start
//
//	import "github.com/dotgrid/dotgrid"
//
//	pm := dotgrid.NewPixmap(64, 64)
//	pm.Clear(dotgrid.White)
//
//	brush := dotgrid.Brush{Shape: dotgrid.ShapeCircle, Size: 5, Color: dotgrid.Black, Opacity: 1}
//	dotgrid.DrawLine(pm, brush, 4, 4, 60, 60)
//	dotgrid.FloodFill(pm, 0, 0, dotgrid.Hex("#88CCFF"))
//
//	reduced := dotgrid.ReducePalette(pm, dotgrid.ReduceOptions{
//	    Colors:    8,
//	    Algorithm: dotgrid.AlgorithmMedianCut,
//	    Dither:    true,
//	})
//	_ = reduced.SavePNG("out.png")
//
// # Architecture
//
// The library is organized into:
//   - Rasterizer: StampBrush, StrokeTo, DrawLine, DrawRectangleOutline,
//     DrawEllipseOutline, FloodFill
//   - Quantizer: ExtractPalette, ReducePalette, CountUniqueColors
//   - Host helpers: History (bounded undo/redo), EventQueue (polled
//     edit notifications)
//
// The rasterizer and quantizer never call each other; both are pure
// procedures over a Pixmap with no hidden state.
//
// # Contracts
//
// All operations are total over their documented input ranges:
// out-of-bounds coordinates are silently skipped per pixel, degenerate
// shapes collapse to a single stamp, and quantizing an empty or fully
// transparent image returns a copy of the input. Callers clamp brush
// sizes to [1, 32] and palette color counts to [2, 256] before invoking
// the core; the core does not re-validate these bounds.
//
// Rasterization mutates the buffer in place and reports the touched
// region; quantization always allocates a new buffer and never mutates
// its input.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
package dotgrid

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
