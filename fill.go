package dotgrid

import "image"

// FloodFill replaces the 4-connected region of pixels matching the
// color under the seed with fill, and returns the touched region.
//
// The fill is a no-op when the seed is out of bounds or when the seed's
// color already equals fill (the latter would otherwise re-fill the
// same region forever under repeated clicks). Matching is exact over
// all four channels.
//
// The traversal uses an explicit LIFO stack and a visited mask, so the
// largest fillable region (the whole buffer) costs W*H visits and no
// call-stack depth.
func FloodFill(p *Pixmap, seedX, seedY int, fill Color) image.Rectangle {
	if !p.InBounds(seedX, seedY) {
		return image.Rectangle{}
	}
	target := p.PixelAt(seedX, seedY)
	if target == fill {
		return image.Rectangle{}
	}

	visited := make([]bool, p.width*p.height)
	stack := []Offset{{seedX, seedY}}

	var dirty image.Rectangle
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, y := pt.DX, pt.DY
		if !p.InBounds(x, y) {
			continue
		}
		idx := y*p.width + x
		if visited[idx] {
			continue
		}
		if p.PixelAt(x, y) != target {
			continue
		}

		visited[idx] = true
		p.SetPixel(x, y, fill)
		dirty = dirty.Union(image.Rect(x, y, x+1, y+1))

		stack = append(stack,
			Offset{x + 1, y},
			Offset{x - 1, y},
			Offset{x, y + 1},
			Offset{x, y - 1},
		)
	}
	return dirty
}
