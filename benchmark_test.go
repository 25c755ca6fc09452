package dotgrid

import "testing"

// BenchmarkStampBrush measures a single size-16 circle stamp.
func BenchmarkStampBrush(b *testing.B) {
	pm := NewPixmap(256, 256)
	brush := Brush{Shape: ShapeCircle, Size: 16, Color: Red, Opacity: 1}
	brush.Footprint() // warm the cache

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StampBrush(pm, brush, 128, 128)
	}
}

// BenchmarkFloodFill measures a whole-buffer fill, alternating colors
// so every iteration does full work.
func BenchmarkFloodFill(b *testing.B) {
	pm := NewPixmap(256, 256)
	pm.Clear(White)
	colors := [2]Color{Black, White}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FloodFill(pm, 0, 0, colors[i%2])
	}
}

// BenchmarkReducePaletteMedianCut measures extraction plus remap on a
// gradient image.
func BenchmarkReducePaletteMedianCut(b *testing.B) {
	pm := NewPixmap(128, 128)
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			pm.SetPixel(x, y, RGB(uint8(x*2), uint8(y*2), uint8(x+y)))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReducePalette(pm, ReduceOptions{Colors: 16, Algorithm: AlgorithmMedianCut})
	}
}

// BenchmarkReducePaletteDither measures the dithered variant.
func BenchmarkReducePaletteDither(b *testing.B) {
	pm := NewPixmap(128, 128)
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			pm.SetPixel(x, y, RGB(uint8(x*2), uint8(y*2), uint8(x+y)))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReducePalette(pm, ReduceOptions{Colors: 16, Algorithm: AlgorithmMedianCut, Dither: true})
	}
}
