// Command dotgrid-view shows an image and its palette-reduced copy side
// by side in two SDL windows. The display path is the editor contract
// in miniature: upload the pixel buffer to a streaming texture, draw it,
// repeat.
package main

import (
	"flag"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	_ "golang.org/x/image/bmp"

	"github.com/dotgrid/dotgrid"
)

func main() {
	var (
		colors    = flag.Int("colors", 16, "palette size (2-256)")
		algorithm = flag.String("algorithm", "median-cut", "median-cut, k-means or frequency")
		dither    = flag.Bool("dither", false, "apply Floyd-Steinberg dithering")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: dotgrid-view [flags] <image>")
	}
	if *colors < 2 || *colors > 256 {
		log.Fatalf("colors must be in [2, 256], got %d", *colors)
	}

	pm, err := loadPixmap(flag.Arg(0))
	if err != nil {
		log.Fatalf("could not load image: %v", err)
	}

	reduced := dotgrid.ReducePalette(pm, dotgrid.ReduceOptions{
		Colors:    *colors,
		Algorithm: parseAlgorithm(*algorithm),
		Dither:    *dither,
	})

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("could not initialize SDL: %v", err)
	}
	defer sdl.Quit()

	orig, err := newView("Original", pm, 100, 100)
	if err != nil {
		log.Fatal(err)
	}
	defer orig.destroy()

	conv, err := newView("Quantized", reduced, 140+pm.Width(), 100)
	if err != nil {
		log.Fatal(err)
	}
	defer conv.destroy()

	run(orig, conv)
}

func loadPixmap(path string) (*dotgrid.Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return dotgrid.FromImage(img), nil
}

func parseAlgorithm(name string) dotgrid.Algorithm {
	switch name {
	case "k-means":
		return dotgrid.AlgorithmKMeans
	case "frequency":
		return dotgrid.AlgorithmFrequency
	default:
		return dotgrid.AlgorithmMedianCut
	}
}

// view bundles one window with its streaming texture.
type view struct {
	win  *sdl.Window
	rend *sdl.Renderer
	tex  *sdl.Texture
}

// newView creates a window sized to the pixmap and uploads the buffer
// to a streaming texture.
func newView(title string, pm *dotgrid.Pixmap, x, y int) (*view, error) {
	w, h := pm.Width(), pm.Height()

	win, err := sdl.CreateWindow(title, int32(x), int32(y), int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	rend, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	tex, err := rend.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		rend.Destroy()
		win.Destroy()
		return nil, err
	}

	v := &view{win: win, rend: rend, tex: tex}
	if err := v.upload(pm); err != nil {
		v.destroy()
		return nil, err
	}
	return v, nil
}

// upload copies the pixmap into the streaming texture row by row,
// honoring the texture pitch.
func (v *view) upload(pm *dotgrid.Pixmap) error {
	pixels, pitch, err := v.tex.Lock(nil)
	if err != nil {
		return err
	}
	defer v.tex.Unlock()

	w, h := pm.Width(), pm.Height()
	data := pm.Data()
	for row := 0; row < h; row++ {
		src := row * w * 4
		dst := row * pitch
		copy(pixels[dst:dst+w*4], data[src:src+w*4])
	}
	return nil
}

func (v *view) render() {
	v.rend.SetDrawColor(0, 0, 0, 255)
	v.rend.Clear()
	v.rend.Copy(v.tex, nil, nil)
	v.rend.Present()
}

func (v *view) destroy() {
	if v.tex != nil {
		v.tex.Destroy()
	}
	if v.rend != nil {
		v.rend.Destroy()
	}
	if v.win != nil {
		v.win.Destroy()
	}
}

// run redraws both windows at ~60 FPS until the user quits.
func run(views ...*view) {
	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				return
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_CLOSE {
					return
				}
			case *sdl.KeyboardEvent:
				if e.Keysym.Sym == sdl.K_ESCAPE {
					return
				}
			}
		}
		for _, v := range views {
			v.render()
		}
		sdl.Delay(16) // ~60 FPS
	}
}
