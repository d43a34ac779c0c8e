package dsp

// Downsample2x reduces an interleaved 8-bit plane by half in each
// dimension with a 2x2 box filter. src holds srcW*srcH pixels of
// channels bytes each; dst receives dstW*dstH pixels. Destination
// dimensions are taken as given (callers derive them by right-shifting
// the source dimensions). When a 2x2 block would read past the source
// edge, the edge row or column is repeated.
//
// Averages are rounded to nearest, matching the (a+b+1)>>1 convention
// used elsewhere in the package family.
func Downsample2x(src []byte, srcW, srcH, channels int, dst []byte, dstW, dstH int) {
	for y := 0; y < dstH; y++ {
		sy0 := 2 * y
		sy1 := sy0 + 1
		if sy1 >= srcH {
			sy1 = sy0
		}
		row0 := sy0 * srcW * channels
		row1 := sy1 * srcW * channels
		out := y * dstW * channels
		for x := 0; x < dstW; x++ {
			sx0 := 2 * x * channels
			sx1 := sx0 + channels
			if 2*x+1 >= srcW {
				sx1 = sx0
			}
			for c := 0; c < channels; c++ {
				sum := int(src[row0+sx0+c]) + int(src[row0+sx1+c]) +
					int(src[row1+sx0+c]) + int(src[row1+sx1+c])
				dst[out+x*channels+c] = uint8((sum + 2) >> 2)
			}
		}
	}
}
