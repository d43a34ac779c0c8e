package pixmat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid builds w*h interleaved pixels with the given byte pattern.
func solid(w, h int, pixel ...byte) []byte {
	return bytes.Repeat(pixel, w*h)
}

func TestGrayScale_RGBA(t *testing.T) {
	// floor(0.299*200 + 0.587*100 + 0.114*50) = floor(124.2) = 124
	src := solid(8, 2, 200, 100, 50, 255)
	dst, err := NewMatrix(0, 0, U8C1)
	require.NoError(t, err)
	require.NoError(t, GrayScale(src, 8, 2, dst, FormatRGBA))

	assert.Equal(t, 8, dst.Cols())
	assert.Equal(t, 2, dst.Rows())
	assert.Equal(t, 1, dst.Channels())
	for i, v := range dst.Pix() {
		assert.Equal(t, byte(124), v, "pixel %d", i)
	}
}

func TestGrayScale_Truncation(t *testing.T) {
	dst, _ := NewMatrix(0, 0, U8C1)

	// Black maps to 0.
	require.NoError(t, GrayScale([]byte{0, 0, 0}, 1, 1, dst, FormatRGB))
	assert.Equal(t, byte(0), dst.Pix()[0])

	// White maps to 254: the weighted sum is 254.999..., and the
	// conversion truncates instead of rounding.
	require.NoError(t, GrayScale([]byte{255, 255, 255}, 1, 1, dst, FormatRGB))
	assert.Equal(t, byte(254), dst.Pix()[0])
}

func TestGrayScale_Formats(t *testing.T) {
	// An asymmetric pixel distinguishes channel orders:
	// floor(0.299*200 + 0.587*100 + 0.114*50) = 124 for (R,G,B)=(200,100,50),
	// floor(0.299*50 + 0.587*100 + 0.114*200) = floor(96.45) = 96 swapped.
	tests := []struct {
		name   string
		format Format
		pixel  []byte
		want   byte
	}{
		{"rgba", FormatRGBA, []byte{200, 100, 50, 7}, 124},
		{"rgb", FormatRGB, []byte{200, 100, 50}, 124},
		{"bgra", FormatBGRA, []byte{200, 100, 50, 7}, 96},
		{"bgr", FormatBGR, []byte{200, 100, 50}, 96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := NewMatrix(0, 0, U8C1)
			require.NoError(t, err)
			require.NoError(t, GrayScale(solid(3, 3, tt.pixel...), 3, 3, dst, tt.format))
			for i, v := range dst.Pix() {
				assert.Equal(t, tt.want, v, "pixel %d", i)
			}
		})
	}
}

func TestGrayScale_UnrollRemainder(t *testing.T) {
	// Widths straddling the 4-pixel unroll boundary: per-pixel results
	// must be identical regardless of which loop produced them.
	for _, w := range []int{1, 2, 3, 4, 5, 7, 8, 9, 13} {
		src := make([]byte, w*3)
		for x := 0; x < w; x++ {
			src[x*3] = byte(10 * x)
			src[x*3+1] = byte(5 * x)
			src[x*3+2] = byte(3 * x)
		}
		dst, _ := NewMatrix(0, 0, U8C1)
		require.NoError(t, GrayScale(src, w, 1, dst, FormatRGB))
		for x := 0; x < w; x++ {
			want := uint8(0.299*float64(src[x*3]) + 0.587*float64(src[x*3+1]) + 0.114*float64(src[x*3+2]))
			assert.Equal(t, want, dst.Pix()[x], "width %d pixel %d", w, x)
		}
	}
}

func TestGrayScale_ShortSource(t *testing.T) {
	dst, _ := NewMatrix(0, 0, U8C1)
	src := make([]byte, 10) // 2x2 RGBA needs 16
	require.ErrorIs(t, GrayScale(src, 2, 2, dst, FormatRGBA), ErrShortBuffer)
}

func TestGrayScale_BadFormat(t *testing.T) {
	dst, _ := NewMatrix(0, 0, U8C1)
	require.ErrorIs(t, GrayScale(make([]byte, 16), 2, 2, dst, Format(42)), ErrBadFormat)
}

func TestGrayScale_NonU8Destination(t *testing.T) {
	dst, _ := NewMatrix(2, 2, F32C1)
	require.ErrorIs(t, GrayScale(make([]byte, 16), 2, 2, dst, FormatRGBA), ErrTypeMismatch)
}

func TestGrayScale_ReusesDestination(t *testing.T) {
	// The per-frame contract: converting same-size frames into the same
	// destination never reallocates after the first frame.
	dst, _ := NewMatrix(0, 0, U8C1)
	frame := solid(16, 8, 1, 2, 3, 4)

	require.NoError(t, GrayScale(frame, 16, 8, dst, FormatRGBA))
	buf := dst.Buffer()

	for i := 0; i < 5; i++ {
		require.NoError(t, GrayScale(frame, 16, 8, dst, FormatRGBA))
		assert.Same(t, buf, dst.Buffer(), "frame %d reallocated", i)
	}

	// A smaller frame reuses the buffer too; only growth reallocates.
	require.NoError(t, GrayScale(frame, 8, 4, dst, FormatRGBA))
	assert.Same(t, buf, dst.Buffer())

	require.NoError(t, GrayScale(solid(32, 32, 9, 9, 9, 9), 32, 32, dst, FormatRGBA))
	assert.NotSame(t, buf, dst.Buffer())
}

func TestGrayScale_PooledDestination(t *testing.T) {
	// Matrix bound to a pooled buffer: the intended hot-path wiring.
	const w, h = 8, 8
	cache := NewCache(1, w*h)

	node, err := cache.GetBuffer(w * h)
	require.NoError(t, err)
	dst, err := NewMatrixBuffer(w, h, U8C1, node.Buffer())
	require.NoError(t, err)

	require.NoError(t, GrayScale(solid(w, h, 30, 60, 90, 255), w, h, dst, FormatRGBA))
	assert.Same(t, node.Buffer(), dst.Buffer(), "conversion must not detach the pooled buffer")
	// floor(0.299*30 + 0.587*60 + 0.114*90) = floor(54.45) = 54
	assert.Equal(t, byte(54), dst.Pix()[0])

	require.NoError(t, cache.PutBuffer(node))
}

func TestDownsample2x_Averages(t *testing.T) {
	src, _ := NewMatrix(4, 4, U8C1)
	copy(src.Pix(), []byte{
		10, 20, 30, 40,
		30, 40, 50, 60,
		0, 0, 200, 200,
		0, 0, 200, 200,
	})
	dst, _ := NewMatrix(2, 2, U8C1)
	require.NoError(t, Downsample2x(src, dst))
	assert.Equal(t, []byte{25, 45, 0, 200}, dst.Pix())
}

func TestDownsample2x_Mismatch(t *testing.T) {
	u8, _ := NewMatrix(4, 4, U8C1)
	f32, _ := NewMatrix(2, 2, F32C1)
	require.ErrorIs(t, Downsample2x(u8, f32), ErrTypeMismatch)

	c3, _ := NewMatrix(2, 2, U8C3)
	require.ErrorIs(t, Downsample2x(u8, c3), ErrTypeMismatch)
}
