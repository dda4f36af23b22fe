// Command posterize blurs an image and maps every pixel to the nearest
// color of a palette.
//
// Usage:
//
//	posterize [flags] IMAGE OUT
//
// The output format follows the OUT extension: .png, .jpg, .bmp or .tif.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/posterize"
	"github.com/gogpu/posterize/internal/filter"
	"github.com/gogpu/posterize/internal/image"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	for _, a := range args {
		if a == "--help" || a == "-help" || a == "-h" {
			printUsage(stdout, nil)
			return 0
		}
	}

	fs := flag.NewFlagSet("posterize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	radius := fs.Int("radius", posterize.DefaultRadius, "blur radius in pixels")
	kernel := fs.String("kernel", "box", "kernel shape: box, disc, gaussian")
	edge := fs.String("edge", "transparent", "edge mode: transparent, clamp, noop")
	palette := fs.String("palette", "monokai", "built-in palette: "+strings.Join(posterize.PaletteNames(), ", "))
	colors := fs.String("colors", "", "comma-separated hex colors, overrides -palette")
	workers := fs.Int("workers", 0, "worker goroutines (0 = one per CPU)")
	quality := fs.Int("quality", image.DefaultJPEGQuality, "JPEG quality 1-100")
	verbose := fs.Bool("v", false, "debug logging to stderr")

	if err := fs.Parse(args); err != nil {
		printUsage(stderr, err)
		return 1
	}
	if fs.NArg() != 2 {
		printUsage(stderr, fmt.Errorf("wrong number of arguments: %d", fs.NArg()))
		return 1
	}
	in, out := fs.Arg(0), fs.Arg(1)

	if *verbose {
		posterize.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer posterize.SetLogger(nil)
	}

	if _, err := os.Stat(in); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "posterize: image %s does not exist\n", in)
		return 1
	}

	shape, err := filter.ParseShape(*kernel)
	if err != nil {
		fmt.Fprintf(stderr, "posterize: %v\n", err)
		return 1
	}
	mode, err := filter.ParseEdgeMode(*edge)
	if err != nil {
		fmt.Fprintf(stderr, "posterize: %v\n", err)
		return 1
	}
	pal, err := choosePalette(*palette, *colors)
	if err != nil {
		fmt.Fprintf(stderr, "posterize: %v\n", err)
		return 1
	}

	err = posterize.ProcessFile(ctx, in, out, pal,
		posterize.WithRadius(*radius),
		posterize.WithShape(shape),
		posterize.WithEdgeMode(mode),
		posterize.WithWorkers(*workers),
		posterize.WithQuality(*quality),
	)
	if err != nil {
		fmt.Fprintf(stderr, "posterize: %v\n", err)
		return 1
	}
	return 0
}

// choosePalette returns the palette from -colors if set, else by name.
func choosePalette(name, colors string) (posterize.Palette, error) {
	if colors == "" {
		return posterize.PaletteByName(name)
	}
	return posterize.ParsePalette(strings.Split(colors, ","))
}

func printUsage(w io.Writer, reason error) {
	if reason != nil {
		fmt.Fprintf(w, "%v\n\n", reason)
	}
	fmt.Fprintf(w, `Usage: posterize [flags] IMAGE OUT

Flags:
  -radius N      blur radius in pixels (default %d)
  -kernel NAME   box, disc or gaussian (default box)
  -edge NAME     transparent, clamp or noop (default transparent)
                 transparent pads with transparent black, so borders
                 darken; the library default is clamp
  -palette NAME  %s (default monokai)
  -colors LIST   comma-separated hex colors, e.g. "#000000,#ffffff"
  -workers N     worker goroutines, 0 = one per CPU
  -quality N     JPEG quality 1-100 (default %d)
  -v             debug logging
`, posterize.DefaultRadius, strings.Join(posterize.PaletteNames(), ", "), image.DefaultJPEGQuality)
}
