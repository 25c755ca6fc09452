package dotgrid

import "image"

// StampBrush stamps the brush once, centered at (x, y), and returns the
// bounding rectangle of the pixels actually written. Offsets that land
// outside the pixmap are skipped; the returned rectangle is empty when
// nothing was touched.
//
// Painting overwrites: the written pixel is the brush RGB with alpha
// round(Opacity*255). It does not composite with the existing pixel, so
// repeated stamps at partial opacity do not accumulate. Erase brushes
// clear all four channels.
func StampBrush(p *Pixmap, b Brush, x, y int) image.Rectangle {
	return stampOffsets(p, b, b.Footprint(), x, y)
}

// stampOffsets applies a pre-resolved footprint. Stroke and shape tools
// resolve the footprint once and reuse it for every stamp.
func stampOffsets(p *Pixmap, b Brush, offs []Offset, x, y int) image.Rectangle {
	c := Color{}
	if !b.Erase {
		c = Color{R: b.Color.R, G: b.Color.G, B: b.Color.B, A: effectiveAlpha(b.Opacity)}
	}

	var dirty image.Rectangle
	for _, o := range offs {
		px, py := x+o.DX, y+o.DY
		if !p.InBounds(px, py) {
			continue
		}
		p.SetPixel(px, py, c)
		dirty = dirty.Union(image.Rect(px, py, px+1, py+1))
	}
	return dirty
}

// effectiveAlpha converts a [0, 1] opacity to the byte alpha written by
// a stamp.
func effectiveAlpha(opacity float64) uint8 {
	a := int(opacity*255 + 0.5)
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	return uint8(a)
}

// StrokeTo stamps the brush along every integer point of the line from
// (fromX, fromY) to (toX, toY), including both endpoints. Hosts call it
// between consecutive pointer samples so a freehand stroke stays
// gap-free regardless of sampling rate.
func StrokeTo(p *Pixmap, b Brush, fromX, fromY, toX, toY int) image.Rectangle {
	offs := b.Footprint()

	var dirty image.Rectangle
	forEachLinePoint(fromX, fromY, toX, toY, func(x, y int) {
		dirty = dirty.Union(stampOffsets(p, b, offs, x, y))
	})
	return dirty
}
