package dotgrid

import "math/rand"

// ReduceOptions configures ReducePalette.
type ReduceOptions struct {
	// Colors is the target palette size. Callers clamp it to [2, 256].
	Colors int
	// Algorithm selects the extraction strategy.
	Algorithm Algorithm
	// Dither enables Floyd-Steinberg error diffusion during the remap.
	Dither bool
	// Rand seeds k-means centroid initialization; see ExtractOptions.
	Rand *rand.Rand
}

// ReducePalette extracts a palette from the pixmap and remaps every
// pixel onto it, returning a new pixmap of identical dimensions. The
// input is never mutated. If extraction yields no palette (empty or
// fully transparent input), a plain copy of the input is returned.
//
// Fully transparent pixels stay zeroed. All other pixels keep their
// original alpha exactly; only RGB is replaced.
func ReducePalette(p *Pixmap, opts ReduceOptions) *Pixmap {
	pal := ExtractPalette(p, ExtractOptions{
		Colors:    opts.Colors,
		Algorithm: opts.Algorithm,
		Rand:      opts.Rand,
	})
	if len(pal) == 0 {
		return p.Clone()
	}

	if opts.Dither {
		return ditherToPalette(p, pal)
	}
	return remapToPalette(p, pal)
}

// remapToPalette maps each opaque pixel to its nearest palette color.
func remapToPalette(p *Pixmap, pal Palette) *Pixmap {
	out := NewPixmap(p.width, p.height)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.PixelAt(x, y)
			if c.Transparent() {
				continue
			}
			n := pal.Nearest(c)
			out.SetPixel(x, y, Color{R: n.R, G: n.G, B: n.B, A: c.A})
		}
	}
	return out
}

// Floyd-Steinberg error weights, in sixteenths: right 7, bottom-left 3,
// bottom 5, bottom-right 1.
var fsKernel = []struct {
	dx, dy int
	weight float64
}{
	{1, 0, 7.0 / 16},
	{-1, 1, 3.0 / 16},
	{0, 1, 5.0 / 16},
	{1, 1, 1.0 / 16},
}

// ditherToPalette maps each opaque pixel to its nearest palette color
// while diffusing the per-channel quantization error into unprocessed
// neighbors. RGB is carried in floats until a pixel is finalized; alpha
// is copied through untouched and transparent pixels neither receive a
// palette color nor emit error.
func ditherToPalette(p *Pixmap, pal Palette) *Pixmap {
	w, h := p.width, p.height

	work := make([]float64, w*h*3)
	for i := 0; i < w*h; i++ {
		work[i*3+0] = float64(p.data[i*4+0])
		work[i*3+1] = float64(p.data[i*4+1])
		work[i*3+2] = float64(p.data[i*4+2])
	}

	out := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := p.PixelAt(x, y)
			if c.Transparent() {
				continue
			}

			i := (y*w + x) * 3
			r := clampChannel(work[i+0])
			g := clampChannel(work[i+1])
			b := clampChannel(work[i+2])

			n := pal.Nearest(Color{R: r, G: g, B: b, A: c.A})
			out.SetPixel(x, y, Color{R: n.R, G: n.G, B: n.B, A: c.A})

			errR := float64(r) - float64(n.R)
			errG := float64(g) - float64(n.G)
			errB := float64(b) - float64(n.B)

			for _, k := range fsKernel {
				nx, ny := x+k.dx, y+k.dy
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				j := (ny*w + nx) * 3
				work[j+0] += errR * k.weight
				work[j+1] += errG * k.weight
				work[j+2] += errB * k.weight
			}
		}
	}
	return out
}

// clampChannel rounds a working channel value to the nearest byte,
// clamped to [0, 255].
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
