// Command xfercomp composites one image onto another with a Porter-Duff
// blend mode.
//
// Usage:
//
//	xfercomp -src logo.png -dst photo.jpg -mode src-atop -alpha 200 -out result.png
//	xfercomp -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/gogpu/xfermode"
)

var errUsage = errors.New("both -src and -dst are required")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if code := exitCode(err); code != 0 {
		log.Fatalf("xfercomp: %v", err)
	}
}

// exitCode maps the result of run to a process status. A help request
// has already printed usage and is not a failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xfercomp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		srcPath = fs.String("src", "", "source image (drawn on top)")
		dstPath = fs.String("dst", "", "destination image")
		output  = fs.String("out", "out.png", "output PNG file")
		mode    = fs.String("mode", "SRC_OVER", "blend mode name")
		alpha   = fs.Int("alpha", 255, "global alpha, 0..255")
		scale   = fs.Bool("scale", false, "scale the source to the destination size")
		list    = fs.Bool("list", false, "list blend modes and exit")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	xfermode.SetLogger(logger)
	defer xfermode.SetLogger(nil)

	if *list {
		return listModes(stdout)
	}
	if *srcPath == "" || *dstPath == "" {
		return errUsage
	}
	if *alpha < 0 || *alpha > 255 {
		return fmt.Errorf("alpha %d out of range [0, 255]", *alpha)
	}

	m, err := xfermode.ParseMode(*mode)
	if err != nil {
		return err
	}

	src, err := loadImage(*srcPath)
	if err != nil {
		return err
	}
	dstImg, err := loadImage(*dstPath)
	if err != nil {
		return err
	}

	dst := toRGBA(dstImg)

	var srcRGBA *image.RGBA
	if *scale && src.Bounds().Size() != dst.Bounds().Size() {
		srcRGBA = image.NewRGBA(dst.Bounds())
		draw.CatmullRom.Scale(srcRGBA, srcRGBA.Bounds(), src, src.Bounds(), draw.Src, nil)
		logger.Debug("scaled source", "from", src.Bounds().Size(), "to", srcRGBA.Bounds().Size())
	} else {
		srcRGBA = toRGBA(src)
	}

	op := xfermode.BuildOperator(m, *alpha)
	logger.Debug("compositing", "mode", m, "rule", op.Rule(), "opacity", op.Opacity())
	op.Draw(dst, dst.Bounds(), srcRGBA, srcRGBA.Bounds().Min)

	if err := savePNG(*output, dst); err != nil {
		return err
	}
	logger.Debug("saved", "path", *output)
	return nil
}

func listModes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tNATIVE\tRULE")
	for _, m := range xfermode.Modes() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", m, m.Native(), xfermode.ResolveRule(m))
	}
	return tw.Flush()
}

// toRGBA converts img to premultiplied RGBA with the same bounds.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
