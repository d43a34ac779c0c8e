// Command pixgray converts PNG or JPEG images to grayscale using the
// pixmat conversion core, optionally emitting every level of a
// downsampling pyramid.
//
// Usage:
//
//	pixgray [options] <input>          convert to grayscale (use "-" for stdin)
//
// Options:
//
//	-o path      output file (default: input name with .png suffix, "-" for stdout)
//	-pgm         write binary PGM instead of PNG
//	-levels n    build an n-level pyramid and write every level (default 1)
//	-v           verbose logging
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"go.uber.org/zap"

	"github.com/deepteams/pixmat"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pixgray: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pixgray", flag.ExitOnError)
	output := fs.String("o", "", "output file (default: input name with .png suffix)")
	pgm := fs.Bool("pgm", false, "write binary PGM instead of PNG")
	levels := fs.Int("levels", 1, "pyramid levels to build and write")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file")
	}
	input := fs.Arg(0)

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		log = l
		defer log.Sync()
		pixmat.SetLogger(log)
	}

	r, err := openInput(input)
	if err != nil {
		return err
	}
	defer r.Close()

	img, format, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	log.Info("decoded input",
		zap.String("format", format), zap.Int("width", w), zap.Int("height", h))

	// Flatten to interleaved RGBA bytes, the raw-source form the
	// conversion core consumes.
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != w*4 {
		tmp := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
		nrgba = tmp
	}

	gray, err := pixmat.NewMatrix(0, 0, pixmat.U8C1)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := pixmat.GrayScale(nrgba.Pix, w, h, gray, pixmat.FormatRGBA); err != nil {
		return fmt.Errorf("converting: %w", err)
	}
	log.Info("converted", zap.Duration("elapsed", time.Since(start)))

	out := *output
	if out == "" {
		ext := ".png"
		if *pgm {
			ext = ".pgm"
		}
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if input == "-" {
			base = "out"
		}
		out = base + "_gray" + ext
	}

	if *levels <= 1 {
		return writeLevel(out, gray, *pgm)
	}

	p := pixmat.NewPyramid(*levels)
	if err := p.Alloc(w, h, pixmat.U8C1); err != nil {
		return err
	}
	if err := p.Build(gray, pixmat.Downsample2x, false); err != nil {
		return fmt.Errorf("building pyramid: %w", err)
	}
	for i := 0; i < p.Levels(); i++ {
		m := p.Level(i)
		if m.Cols() == 0 || m.Rows() == 0 {
			log.Warn("skipping degenerate level", zap.Int("level", i))
			continue
		}
		name := levelName(out, i)
		if err := writeLevel(name, m, *pgm); err != nil {
			return err
		}
		log.Info("wrote level", zap.Int("level", i),
			zap.Int("width", m.Cols()), zap.Int("height", m.Rows()), zap.String("file", name))
	}
	return nil
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// levelName derives the per-level output name: out.png -> out_1.png.
func levelName(out string, level int) string {
	if level == 0 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(out, ext), level, ext)
}

// writeLevel writes a single-channel U8 matrix as PNG or binary PGM.
func writeLevel(path string, m *pixmat.Matrix, asPGM bool) error {
	var f io.WriteCloser
	if path == "-" {
		f = os.Stdout
	} else {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return err
		}
	}

	var err error
	if asPGM {
		err = writePGM(f, m)
	} else {
		img := &image.Gray{Pix: m.Pix(), Stride: m.Cols(), Rect: image.Rect(0, 0, m.Cols(), m.Rows())}
		err = png.Encode(f, img)
	}
	if path != "-" {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// writePGM emits the P5 binary PGM format.
func writePGM(w io.Writer, m *pixmat.Matrix) error {
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", m.Cols(), m.Rows()); err != nil {
		return err
	}
	_, err := w.Write(m.Pix())
	return err
}
