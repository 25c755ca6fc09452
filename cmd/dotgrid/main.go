// Command dotgrid batch-processes images with the dotgrid quantizer:
// it scans a folder, reduces every image onto an extracted palette and
// writes the results to a destination folder.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dotgrid/dotgrid"
	"github.com/dotgrid/dotgrid/internal/parallel"
)

var cli struct {
	Quantize QuantizeCmd `cmd:"" help:"Reduce images onto an extracted palette."`
	Palette  PaletteCmd  `cmd:"" help:"Extract a palette from an image and print it."`

	Workers int  `help:"Number of parallel workers (0 = all CPUs)." default:"0"`
	Verbose bool `short:"v" help:"Enable debug logging."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("dotgrid"),
		kong.Description("Palette quantization for pixel art images."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	dotgrid.SetLogger(logger)

	pool := parallel.New(cli.Workers)
	err := kctx.Run(pool)
	pool.Close()
	kctx.FatalIfErrorf(err)
}
