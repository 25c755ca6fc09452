package main

import (
	"fmt"
	"image"
	"os"

	"github.com/dotgrid/dotgrid"
)

// PaletteCmd extracts a palette from one image and prints it as hex
// triplets, one per line.
type PaletteCmd struct {
	Input     string `arg:"" help:"Image to analyze." type:"existingfile"`
	Colors    int    `help:"Target palette size (2-256)." default:"16"`
	Algorithm string `help:"Palette extraction algorithm." enum:"median-cut,k-means,frequency" default:"median-cut"`
}

// Validate enforces the core's clamp contract at the CLI boundary.
func (c *PaletteCmd) Validate() error {
	if c.Colors < 2 || c.Colors > 256 {
		return fmt.Errorf("colors must be in [2, 256], got %d", c.Colors)
	}
	return nil
}

// Run prints the extracted palette to stdout.
func (c *PaletteCmd) Run() error {
	f, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	pm := dotgrid.FromImage(img)
	pal := dotgrid.ExtractPalette(pm, dotgrid.ExtractOptions{
		Colors:    c.Colors,
		Algorithm: parseAlgorithm(c.Algorithm),
	})

	fmt.Printf("unique colors: %d\n", dotgrid.CountUniqueColors(pm))
	for _, col := range pal {
		fmt.Printf("#%02X%02X%02X\n", col.R, col.G, col.B)
	}
	return nil
}
