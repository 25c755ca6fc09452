package dotgrid

import (
	"math"
	"sync"
)

// BrushShape selects the footprint geometry of a brush.
type BrushShape int

// Supported brush shapes.
const (
	ShapeSquare BrushShape = iota
	ShapeCircle
	ShapeDiamond
	ShapeHorizontal
	ShapeVertical
	ShapeSlash
	ShapeBackslash
)

// String returns the shape name.
func (s BrushShape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	case ShapeDiamond:
		return "diamond"
	case ShapeHorizontal:
		return "horizontal"
	case ShapeVertical:
		return "vertical"
	case ShapeSlash:
		return "slash"
	case ShapeBackslash:
		return "backslash"
	default:
		return "unknown"
	}
}

// Brush describes what a stamp paints: a footprint (shape and size), a
// color, an opacity and an erase mode.
//
// Size must be in [1, 32] and Opacity in [0, 1]; the host clamps both
// before handing a brush to the core.
type Brush struct {
	Shape   BrushShape
	Size    int
	Color   Color
	Opacity float64
	Erase   bool
}

// Offset is a footprint cell relative to the stamp center.
type Offset struct {
	DX, DY int
}

// footprintKey identifies a memoized footprint. Footprints depend only
// on shape and size, never on color or opacity.
type footprintKey struct {
	shape BrushShape
	size  int
}

var (
	footprintMu    sync.Mutex
	footprintCache = map[footprintKey][]Offset{}
)

// Footprint resolves the brush to its set of integer offsets relative
// to the stamp center. The result is deterministic for a given
// (shape, size) pair and is memoized; callers must not mutate the
// returned slice.
func (b Brush) Footprint() []Offset {
	key := footprintKey{shape: b.Shape, size: b.Size}

	footprintMu.Lock()
	defer footprintMu.Unlock()
	if offs, ok := footprintCache[key]; ok {
		return offs
	}

	offs := resolveFootprint(b.Shape, b.Size)
	footprintCache[key] = offs
	Logger().Debug("footprint resolved", "shape", b.Shape.String(), "size", b.Size, "cells", len(offs))
	return offs
}

// resolveFootprint computes the offset set for a shape and size.
//
// Offsets span [-half, size-half) in each axis with half = size/2, so
// even sizes bias one cell toward the top-left. The circle predicate
// measures from the continuous footprint center so that even-sized
// circles stay symmetric about that center.
func resolveFootprint(shape BrushShape, size int) []Offset {
	half := size / 2
	lo, hi := -half, size-half // hi exclusive

	var offs []Offset
	switch shape {
	case ShapeSquare:
		for dy := lo; dy < hi; dy++ {
			for dx := lo; dx < hi; dx++ {
				offs = append(offs, Offset{dx, dy})
			}
		}
	case ShapeCircle:
		// Continuous center of the footprint box, in offset space.
		c := float64(size-1)/2 - float64(half)
		r := float64(size) / 2
		for dy := lo; dy < hi; dy++ {
			for dx := lo; dx < hi; dx++ {
				fx := float64(dx) - c
				fy := float64(dy) - c
				if math.Sqrt(fx*fx+fy*fy) <= r {
					offs = append(offs, Offset{dx, dy})
				}
			}
		}
	case ShapeDiamond:
		for dy := lo; dy < hi; dy++ {
			for dx := lo; dx < hi; dx++ {
				if abs(dx)+abs(dy) <= half {
					offs = append(offs, Offset{dx, dy})
				}
			}
		}
	case ShapeHorizontal:
		for dx := lo; dx < hi; dx++ {
			offs = append(offs, Offset{dx, 0})
		}
	case ShapeVertical:
		for dy := lo; dy < hi; dy++ {
			offs = append(offs, Offset{0, dy})
		}
	case ShapeSlash:
		for i := lo; i < hi; i++ {
			offs = append(offs, Offset{i, -i})
		}
	case ShapeBackslash:
		for i := lo; i < hi; i++ {
			offs = append(offs, Offset{i, i})
		}
	}
	return offs
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
