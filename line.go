package dotgrid

import "image"

// forEachLinePoint visits every point of the Bresenham line from
// (x0, y0) to (x1, y1), endpoints included. Consecutive points are
// always 8-adjacent.
func forEachLinePoint(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	x, y := x0, y0
	for {
		visit(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawLine stamps the brush along the line from (x0, y0) to (x1, y1)
// and returns the touched region. Identical endpoints collapse to a
// single stamp.
func DrawLine(p *Pixmap, b Brush, x0, y0, x1, y1 int) image.Rectangle {
	return StrokeTo(p, b, x0, y0, x1, y1)
}

// DrawRectangleOutline stamps the brush along the four edges of the
// axis-aligned rectangle with opposite corners (x0, y0) and (x1, y1)
// and returns the touched region. Corners may be given in any order; a
// degenerate rectangle collapses to a line or a single stamp.
func DrawRectangleOutline(p *Pixmap, b Brush, x0, y0, x1, y1 int) image.Rectangle {
	offs := b.Footprint()

	var dirty image.Rectangle
	edge := func(ax, ay, bx, by int) {
		forEachLinePoint(ax, ay, bx, by, func(x, y int) {
			dirty = dirty.Union(stampOffsets(p, b, offs, x, y))
		})
	}
	edge(x0, y0, x1, y0)
	edge(x1, y0, x1, y1)
	edge(x1, y1, x0, y1)
	edge(x0, y1, x0, y0)
	return dirty
}
