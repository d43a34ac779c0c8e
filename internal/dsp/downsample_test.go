package dsp

import (
	"bytes"
	"testing"
)

func TestDownsample2x_Even(t *testing.T) {
	src := []byte{
		10, 20, 30, 40,
		30, 40, 50, 60,
		100, 100, 0, 4,
		100, 100, 0, 0,
	}
	dst := make([]byte, 4)
	Downsample2x(src, 4, 4, 1, dst, 2, 2)

	want := []byte{25, 45, 100, 1}
	if !bytes.Equal(dst, want) {
		t.Errorf("Downsample2x = %v, want %v", dst, want)
	}
}

func TestDownsample2x_OddEdges(t *testing.T) {
	// 3x3 source, 2x2 destination: blocks that would read past the
	// right or bottom edge repeat the edge sample.
	src := []byte{
		10, 20, 6,
		30, 40, 6,
		5, 5, 9,
	}
	dst := make([]byte, 4)
	Downsample2x(src, 3, 3, 1, dst, 2, 2)

	want := []byte{25, 6, 5, 9}
	if !bytes.Equal(dst, want) {
		t.Errorf("Downsample2x = %v, want %v", dst, want)
	}
}

func TestDownsample2x_SingleRow(t *testing.T) {
	// 4x1 source: vertical neighbors collapse onto the only row.
	src := []byte{10, 30, 100, 200}
	dst := make([]byte, 2)
	Downsample2x(src, 4, 1, 1, dst, 2, 1)

	want := []byte{20, 150}
	if !bytes.Equal(dst, want) {
		t.Errorf("Downsample2x = %v, want %v", dst, want)
	}
}

func TestDownsample2x_Channels(t *testing.T) {
	// 2x2 RGBA-style 4-channel block averages per channel.
	src := []byte{
		10, 0, 200, 255, 20, 0, 200, 255,
		30, 0, 200, 255, 40, 4, 200, 255,
	}
	dst := make([]byte, 4)
	Downsample2x(src, 2, 2, 4, dst, 1, 1)

	want := []byte{25, 1, 200, 255}
	if !bytes.Equal(dst, want) {
		t.Errorf("Downsample2x = %v, want %v", dst, want)
	}
}

func TestDownsample2x_Rounding(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want byte
	}{
		{"exact", []byte{4, 4, 4, 4}, 4},
		{"half rounds up", []byte{0, 0, 1, 1}, 1},
		{"quarter rounds down", []byte{0, 0, 0, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 1)
			Downsample2x(tt.src, 2, 2, 1, dst, 1, 1)
			if dst[0] != tt.want {
				t.Errorf("got %d, want %d", dst[0], tt.want)
			}
		})
	}
}

func TestDownsample2x_EmptyDst(t *testing.T) {
	// Zero-sized destinations (degenerate pyramid levels) are a no-op.
	Downsample2x([]byte{1, 2, 3, 4}, 2, 2, 1, nil, 0, 0)
	Downsample2x([]byte{1}, 1, 1, 1, nil, 0, 1)
}

func BenchmarkDownsample2x(b *testing.B) {
	const w, h = 1920, 1080
	src := make([]byte, w*h)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, (w/2)*(h/2))
	b.SetBytes(int64(w * h))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Downsample2x(src, w, h, 1, dst, w/2, h/2)
	}
}
