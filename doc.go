// Package pixmat provides the memory substrate for real-time pixel
// processing pipelines: an aligned raw buffer with typed views, a 2D
// multi-channel matrix on top of it, a multi-level image pyramid, a
// free-list buffer pool for per-frame reuse, and a color-to-grayscale
// conversion routine showing the intended usage pattern.
//
// The package performs no I/O and holds no global state beyond an
// optional logger. Everything is a bounded, synchronous computation
// over memory already resident; concurrency, when wanted, is the
// caller's to arrange (independent Matrix instances are safe to use
// from different goroutines, a single Cache is not).
//
// Typical per-frame loop:
//
//	gray, _ := pixmat.NewMatrix(w, h, pixmat.U8C1)
//	for frame := range frames {
//		_ = pixmat.GrayScale(frame, w, h, gray, pixmat.FormatRGBA)
//		// consume gray.Pix() ...
//	}
//
// GrayScale resizes its destination through Matrix.Resize, which only
// reallocates on growth, so the loop above allocates on the first
// frame and never again.
package pixmat
