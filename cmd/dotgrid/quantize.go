package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/dotgrid/dotgrid"
	"github.com/dotgrid/dotgrid/internal/parallel"
)

// QuantizeCmd reduces every image in a folder onto an extracted
// palette.
type QuantizeCmd struct {
	Scan      string `help:"Source folder to scan." default:"." type:"existingdir"`
	Dest      string `help:"Destination folder. Relative to scan dir if not absolute." default:"quantized"`
	Colors    int    `help:"Target palette size (2-256)." default:"16"`
	Algorithm string `help:"Palette extraction algorithm." enum:"median-cut,k-means,frequency" default:"median-cut"`
	Dither    bool   `help:"Apply Floyd-Steinberg dithering." default:"false"`
	Width     int    `help:"Scale to this width before quantizing (0 = keep)." default:"0"`
	Height    int    `help:"Scale to this height before quantizing (0 = keep)." default:"0"`
	Format    string `help:"Output format." enum:"png,gif,jpeg,bmp,tiff" default:"png"`
}

// Validate enforces the clamp contract of the dotgrid core: the core
// does not re-check color counts, so the CLI boundary must.
func (c *QuantizeCmd) Validate() error {
	if c.Colors < 2 || c.Colors > 256 {
		return fmt.Errorf("colors must be in [2, 256], got %d", c.Colors)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid scale dimensions %dx%d", c.Width, c.Height)
	}

	scanDir, err := filepath.Abs(c.Scan)
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}
	return nil
}

// Run processes all regular files in the scan folder on the pool.
func (c *QuantizeCmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o750); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	algorithm := parseAlgorithm(c.Algorithm)

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		pool.Submit(func() {
			logger := slog.Default().With("file", name)
			if err := c.processFile(name, algorithm); err != nil {
				errCount.Add(1)
				logger.Error("could not process image", "error", err)
				return
			}
			processedCount.Add(1)
		})
	}
	pool.Close()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *QuantizeCmd) processFile(name string, algorithm dotgrid.Algorithm) error {
	path := filepath.Join(c.Scan, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	if c.Width > 0 || c.Height > 0 {
		img = scale(img, c.Width, c.Height)
	}

	pm := dotgrid.FromImage(img)
	slog.Debug("quantizing", "file", name,
		"unique", dotgrid.CountUniqueColors(pm), "target", c.Colors)

	reduced := dotgrid.ReducePalette(pm, dotgrid.ReduceOptions{
		Colors:    c.Colors,
		Algorithm: algorithm,
		Dither:    c.Dither,
	})

	return c.save(reduced, name)
}

// scale resizes preserving aspect ratio when only one dimension is
// given, using the Catmull-Rom kernel.
func scale(img image.Image, width, height int) image.Image {
	src := img.Bounds()
	if width == 0 {
		width = src.Dx() * height / src.Dy()
	}
	if height == 0 {
		height = src.Dy() * width / src.Dx()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

func (c *QuantizeCmd) save(pm *dotgrid.Pixmap, srcName string) (err error) {
	ext := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", strings.TrimSuffix(srcName, ext), c.Format)
	destPath := filepath.Join(c.Dest, destName)

	out, err := os.Create(destPath) //nolint:gosec // destination is user-chosen
	if err != nil {
		return fmt.Errorf("could not create destination %q: %w", destName, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination %q: %w", destName, closeErr)
		}
	}()

	img := pm.ToImage()
	switch c.Format {
	case "gif":
		err = gif.Encode(out, img, nil)
	case "jpeg":
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 100})
	case "bmp":
		err = bmp.Encode(out, img)
	case "tiff":
		err = tiff.Encode(out, img, nil)
	default:
		err = png.Encode(out, img)
	}
	if err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", c.Format, destName, err)
	}
	return nil
}

// parseAlgorithm maps the CLI enum onto the core's Algorithm values.
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
