package pixmat

import (
	"errors"
	"fmt"

	"github.com/deepteams/pixmat/internal/dsp"
)

// ErrBadFormat is returned when a Format value has no defined pixel
// layout.
var ErrBadFormat = errors.New("pixmat: unknown pixel format")

// Format selects the byte layout of a raw interleaved pixel source.
type Format int

// Source pixel layouts.
const (
	FormatRGBA Format = iota
	FormatRGB
	FormatBGRA
	FormatBGR
)

func (f Format) String() string {
	switch f {
	case FormatRGBA:
		return "rgba"
	case FormatRGB:
		return "rgb"
	case FormatBGRA:
		return "bgra"
	case FormatBGR:
		return "bgr"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// layout decodes a format into its per-pixel stride and the red/blue
// byte offsets. Green sits at offset 1 in every supported layout.
func (f Format) layout() (step, rOff, bOff int, err error) {
	switch f {
	case FormatRGBA:
		return 4, 0, 2, nil
	case FormatRGB:
		return 3, 0, 2, nil
	case FormatBGRA:
		return 4, 2, 0, nil
	case FormatBGR:
		return 3, 2, 0, nil
	}
	return 0, 0, 0, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

// GrayScale converts a raw interleaved pixel source of w*h pixels into
// a single-channel 8-bit destination of the same dimensions. Luminance
// is 0.299*R + 0.587*G + 0.114*B, truncated toward zero; alpha bytes
// are never consulted.
//
// dst is resized to (w, h, 1 channel) through Resize, so a destination
// reused across frames of the same size never reallocates. dst must
// have U8 depth.
func GrayScale(src []byte, w, h int, dst *Matrix, f Format) error {
	step, rOff, bOff, err := f.layout()
	if err != nil {
		return err
	}
	if dst.Depth() != U8 {
		return fmt.Errorf("%w: grayscale destination must be u8, got %v", ErrTypeMismatch, dst.Depth())
	}
	if len(src) < w*h*step {
		return fmt.Errorf("%w: source holds %d bytes, need %d", ErrShortBuffer, len(src), w*h*step)
	}
	dst.Resize(w, h, 1)
	pix := dst.Pix()
	for y := 0; y < h; y++ {
		dsp.RowToGray(src[y*w*step:], pix[y*w:], w, step, rOff, 1, bOff)
	}
	return nil
}

// Downsample2x is a DownsampleFunc: a 2x2 box filter halving a U8
// matrix in each dimension, per channel, with edge rows and columns
// repeated for odd source sizes. Both matrices must be U8 with the same
// channel count.
func Downsample2x(src, dst *Matrix) error {
	if src.Depth() != U8 || dst.Depth() != U8 {
		return fmt.Errorf("%w: downsample needs u8 matrices, got %v and %v",
			ErrTypeMismatch, src.Depth(), dst.Depth())
	}
	if src.Channels() != dst.Channels() {
		return fmt.Errorf("%w: %d vs %d channels", ErrTypeMismatch, src.Channels(), dst.Channels())
	}
	dsp.Downsample2x(src.Pix(), src.Cols(), src.Rows(), src.Channels(),
		dst.Pix(), dst.Cols(), dst.Rows())
	return nil
}
