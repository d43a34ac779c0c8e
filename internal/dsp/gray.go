// Package dsp holds the pixel loops behind the pixmat API: per-row
// luminance conversion and box-filter downsampling. Functions here
// operate on raw slices with explicit strides so callers can drive them
// row by row.
package dsp

// BT.601 luminance weights.
const (
	grayR = 0.299
	grayG = 0.587
	grayB = 0.114
)

// gray1 converts one pixel. Conversion to uint8 truncates toward zero;
// the weighted sum of in-range inputs cannot exceed 255, so no clamp is
// needed.
func gray1(r, g, b byte) uint8 {
	return uint8(grayR*float64(r) + grayG*float64(g) + grayB*float64(b))
}

// RowToGray converts one row of width interleaved pixels into 8-bit
// luminance values. Each source pixel occupies step bytes; rOff, gOff
// and bOff locate the color bytes within a pixel (BGR-family callers
// pass swapped red/blue offsets). Any alpha byte is ignored.
//
// The main loop handles four pixels per iteration; a scalar loop
// finishes the remainder. Output order matches input order.
func RowToGray(src, dst []byte, width, step, rOff, gOff, bOff int) {
	i := 0
	o := 0
	for ; o+4 <= width; o += 4 {
		dst[o] = gray1(src[i+rOff], src[i+gOff], src[i+bOff])
		dst[o+1] = gray1(src[i+step+rOff], src[i+step+gOff], src[i+step+bOff])
		dst[o+2] = gray1(src[i+2*step+rOff], src[i+2*step+gOff], src[i+2*step+bOff])
		dst[o+3] = gray1(src[i+3*step+rOff], src[i+3*step+gOff], src[i+3*step+bOff])
		i += 4 * step
	}
	for ; o < width; o++ {
		dst[o] = gray1(src[i+rOff], src[i+gOff], src[i+bOff])
		i += step
	}
}
