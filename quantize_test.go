package dotgrid

import "testing"

// containsRGB reports whether the palette holds the RGB triple of c.
func containsRGB(pal Palette, c Color) bool {
	for _, pc := range pal {
		if pc.R == c.R && pc.G == c.G && pc.B == c.B {
			return true
		}
	}
	return false
}

// TestReducePaletteNewBuffer verifies quantization never mutates its
// input and returns a buffer of identical dimensions.
func TestReducePaletteNewBuffer(t *testing.T) {
	pm := checkerboard(4, 4, Red, Blue)
	before := pm.Clone()

	out := ReducePalette(pm, ReduceOptions{Colors: 2, Algorithm: AlgorithmMedianCut})

	if !pm.Equal(before) {
		t.Error("input buffer was mutated")
	}
	if out == pm {
		t.Error("output aliases the input")
	}
	if out.Width() != pm.Width() || out.Height() != pm.Height() {
		t.Errorf("output is %dx%d, want %dx%d", out.Width(), out.Height(), pm.Width(), pm.Height())
	}
}

// TestReducePaletteCheckerboard verifies the concrete two-color
// scenario: reducing a red/blue checkerboard to two colors is lossless
// for every algorithm.
func TestReducePaletteCheckerboard(t *testing.T) {
	pm := checkerboard(4, 4, Red, Blue)

	for _, alg := range []Algorithm{AlgorithmMedianCut, AlgorithmKMeans, AlgorithmFrequency} {
		t.Run(alg.String(), func(t *testing.T) {
			out := ReducePalette(pm, ReduceOptions{Colors: 2, Algorithm: alg})
			if !out.Equal(pm) {
				t.Error("two-color reduction of a two-color image changed pixels")
			}
		})
	}
}

// TestReducePaletteIdempotent verifies remapping an already-remapped
// buffer with the same options returns an identical buffer.
func TestReducePaletteIdempotent(t *testing.T) {
	pm := NewPixmap(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pm.SetPixel(x, y, RGB(uint8(x*32), uint8(y*32), uint8((x*y)%256)))
		}
	}

	opts := ReduceOptions{Colors: 4, Algorithm: AlgorithmMedianCut}
	once := ReducePalette(pm, opts)
	twice := ReducePalette(once, opts)

	if !twice.Equal(once) {
		t.Error("second reduction changed an already-reduced buffer")
	}
}

// TestReducePalettePreservesAlpha verifies every output pixel keeps its
// original alpha exactly, with and without dithering.
func TestReducePalettePreservesAlpha(t *testing.T) {
	pm := NewPixmap(4, 4)
	alphas := []uint8{255, 200, 77, 1}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pm.SetPixel(x, y, RGBA(uint8(x*60), uint8(y*60), 128, alphas[y]))
		}
	}

	for _, dither := range []bool{false, true} {
		out := ReducePalette(pm, ReduceOptions{Colors: 2, Algorithm: AlgorithmMedianCut, Dither: dither})
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if got, want := out.PixelAt(x, y).A, alphas[y]; got != want {
					t.Errorf("dither=%v pixel (%d,%d) alpha = %d, want %d", dither, x, y, got, want)
				}
			}
		}
	}
}

// TestReducePaletteTransparentStaysZero verifies fully transparent
// pixels come out zeroed regardless of their input RGB.
func TestReducePaletteTransparentStaysZero(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(1, 0, Color{R: 123, G: 45, B: 67, A: 0})

	for _, dither := range []bool{false, true} {
		out := ReducePalette(pm, ReduceOptions{Colors: 2, Algorithm: AlgorithmFrequency, Dither: dither})
		if got := out.PixelAt(1, 0); got != (Color{}) {
			t.Errorf("dither=%v transparent pixel = %v, want zero", dither, got)
		}
	}
}

// TestReducePaletteEmptyInput verifies an image with no opaque pixels
// is returned as an unchanged copy.
func TestReducePaletteEmptyInput(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 1, Color{R: 50, G: 60, B: 70, A: 0})

	out := ReducePalette(pm, ReduceOptions{Colors: 4, Algorithm: AlgorithmMedianCut})

	if out == pm {
		t.Error("output aliases the input")
	}
	if !out.Equal(pm) {
		t.Error("empty-palette reduction changed the buffer")
	}
}

// TestReducePaletteOutputInPalette verifies every opaque output pixel's
// RGB comes from the extracted palette.
func TestReducePaletteOutputInPalette(t *testing.T) {
	pm := NewPixmap(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pm.SetPixel(x, y, RGB(uint8(x*30), uint8(y*30), 99))
		}
	}

	opts := ReduceOptions{Colors: 4, Algorithm: AlgorithmMedianCut}
	pal := ExtractPalette(pm, ExtractOptions{Colors: opts.Colors, Algorithm: opts.Algorithm})

	for _, dither := range []bool{false, true} {
		opts.Dither = dither
		out := ReducePalette(pm, opts)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				c := out.PixelAt(x, y)
				if c.Transparent() {
					continue
				}
				if !containsRGB(pal, c) {
					t.Fatalf("dither=%v pixel (%d,%d) = %v not in palette %v", dither, x, y, c, pal)
				}
			}
		}
	}
}

// TestDitherDiffusesError verifies dithering a mid-gray image with a
// black/white palette produces both palette colors, while the plain
// remap collapses to one.
func TestDitherDiffusesError(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(RGB(128, 128, 128))
	pal := Palette{Black, White}

	flat := remapToPalette(pm, pal)
	dithered := ditherToPalette(pm, pal)

	countWhite := func(p *Pixmap) int {
		n := 0
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if p.PixelAt(x, y).R == 255 {
					n++
				}
			}
		}
		return n
	}

	if got := countWhite(flat); got != 64 && got != 0 {
		t.Errorf("flat remap produced %d white pixels, want all-or-nothing", got)
	}
	if got := countWhite(dithered); got == 0 || got == 64 {
		t.Errorf("dither produced %d white pixels, want a mix", got)
	}
}
