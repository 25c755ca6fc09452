package dotgrid

import (
	"image"
	"math"
)

// DrawEllipseOutline stamps the brush along the outline of the ellipse
// inscribed in the bounding box with opposite corners (x0, y0) and
// (x1, y1), and returns the touched region.
//
// Uses the two-region midpoint ellipse algorithm: region 1 steps in x
// while 2*ry²*x < 2*rx²*y, region 2 steps in y until y reaches 0. Each
// step plots four points reflected across both axes; every plotted
// point is a full brush stamp, so brush size and shape apply to the
// ellipse tool exactly as to freehand strokes.
//
// If either radius is below 1 pixel the ellipse degenerates to a single
// stamp at the box center.
func DrawEllipseOutline(p *Pixmap, b Brush, x0, y0, x1, y1 int) image.Rectangle {
	rx := math.Abs(float64(x1-x0)) / 2
	ry := math.Abs(float64(y1-y0)) / 2
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2

	if rx < 1 || ry < 1 {
		return StampBrush(p, b, int(math.Round(cx)), int(math.Round(cy)))
	}

	offs := b.Footprint()
	var dirty image.Rectangle
	plot4 := func(x, y float64) {
		for _, s := range [4][2]float64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
			px := int(math.Round(cx + s[0]*x))
			py := int(math.Round(cy + s[1]*y))
			dirty = dirty.Union(stampOffsets(p, b, offs, px, py))
		}
	}

	rx2 := rx * rx
	ry2 := ry * ry

	x, y := 0.0, ry
	dx := 2 * ry2 * x
	dy := 2 * rx2 * y

	// Region 1: slope magnitude < 1, step along x.
	p1 := ry2 - rx2*ry + 0.25*rx2
	for dx < dy {
		plot4(x, y)
		if p1 < 0 {
			x++
			dx += 2 * ry2
			p1 += dx + ry2
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			p1 += dx - dy + ry2
		}
	}

	// Region 2: slope magnitude >= 1, step along y.
	p2 := ry2*(x+0.5)*(x+0.5) + rx2*(y-1)*(y-1) - rx2*ry2
	for y >= 0 {
		plot4(x, y)
		if p2 > 0 {
			y--
			dy -= 2 * rx2
			p2 += rx2 - dy
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			p2 += dx - dy + rx2
		}
	}

	return dirty
}
