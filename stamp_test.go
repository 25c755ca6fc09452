package dotgrid

import (
	"image"
	"testing"
)

// TestStampBrushWritesColor verifies a stamp writes the brush RGB with
// the opacity-derived alpha.
func TestStampBrushWritesColor(t *testing.T) {
	pm := NewPixmap(8, 8)
	b := Brush{Shape: ShapeSquare, Size: 1, Color: Red, Opacity: 0.5}

	StampBrush(pm, b, 3, 3)

	got := pm.PixelAt(3, 3)
	want := Color{R: 255, G: 0, B: 0, A: 128}
	if got != want {
		t.Errorf("stamped pixel = %v, want %v", got, want)
	}
}

// TestStampBrushOverwrites verifies that stamping is an overwrite, not
// a composite: repeated partial-opacity stamps do not accumulate.
func TestStampBrushOverwrites(t *testing.T) {
	pm := NewPixmap(8, 8)
	b := Brush{Shape: ShapeSquare, Size: 1, Color: Blue, Opacity: 0.25}

	StampBrush(pm, b, 2, 2)
	first := pm.PixelAt(2, 2)
	StampBrush(pm, b, 2, 2)
	second := pm.PixelAt(2, 2)

	if first != second {
		t.Errorf("repeated stamp changed pixel: %v then %v", first, second)
	}
	if second.A != 64 {
		t.Errorf("alpha = %d, want 64", second.A)
	}
}

// TestStampBrushErase verifies an erase stamp clears all channels.
func TestStampBrushErase(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(Magenta)

	b := Brush{Shape: ShapeSquare, Size: 1, Color: Red, Opacity: 1, Erase: true}
	StampBrush(pm, b, 4, 4)

	if got := pm.PixelAt(4, 4); got != (Color{}) {
		t.Errorf("erased pixel = %v, want zero color", got)
	}
	if got := pm.PixelAt(4, 5); got != Magenta {
		t.Errorf("neighbor pixel = %v, want %v", got, Magenta)
	}
}

// TestStampBrushOutOfBounds verifies off-buffer stamps touch nothing
// and report an empty region.
func TestStampBrushOutOfBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	before := pm.Clone()

	b := Brush{Shape: ShapeSquare, Size: 3, Color: Black, Opacity: 1}
	region := StampBrush(pm, b, -10, -10)

	if !region.Empty() {
		t.Errorf("region = %v, want empty", region)
	}
	if !pm.Equal(before) {
		t.Error("out-of-bounds stamp modified the buffer")
	}
}

// TestStampBrushClipsAtEdge verifies a stamp overlapping the border
// writes only the in-bounds cells.
func TestStampBrushClipsAtEdge(t *testing.T) {
	pm := NewPixmap(4, 4)
	b := Brush{Shape: ShapeSquare, Size: 3, Color: Black, Opacity: 1}

	region := StampBrush(pm, b, 0, 0)

	want := image.Rect(0, 0, 2, 2)
	if region != want {
		t.Errorf("region = %v, want %v", region, want)
	}
	if pm.PixelAt(1, 1).A == 0 {
		t.Error("in-bounds cell not written")
	}
}

// TestStampBrushDirtyRegion verifies the reported region matches the
// footprint bounds.
func TestStampBrushDirtyRegion(t *testing.T) {
	pm := NewPixmap(9, 9)
	b := Brush{Shape: ShapeSquare, Size: 3, Color: Black, Opacity: 1}

	region := StampBrush(pm, b, 4, 4)

	want := image.Rect(3, 3, 6, 6)
	if region != want {
		t.Errorf("region = %v, want %v", region, want)
	}
}

// TestStrokeToGapFree verifies a stroke between two distant samples
// leaves no gaps along the connecting line.
func TestStrokeToGapFree(t *testing.T) {
	pm := NewPixmap(32, 32)
	b := Brush{Shape: ShapeSquare, Size: 1, Color: Black, Opacity: 1}

	StrokeTo(pm, b, 2, 2, 29, 13)

	// Both endpoints are stamped.
	if pm.PixelAt(2, 2).A == 0 || pm.PixelAt(29, 13).A == 0 {
		t.Fatal("stroke endpoints not stamped")
	}

	// Every painted row between the endpoints holds at least one pixel,
	// so the mark has no holes at the sampling rate of one stamp per
	// line point.
	for y := 2; y <= 13; y++ {
		found := false
		for x := 0; x < 32; x++ {
			if pm.PixelAt(x, y).A != 0 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("row %d has no painted pixel", y)
		}
	}
}
