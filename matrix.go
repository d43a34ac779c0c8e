package pixmat

import (
	"errors"
	"fmt"
)

// Errors reported by Matrix operations.
var (
	ErrShortBuffer  = errors.New("pixmat: buffer too small")
	ErrTypeMismatch = errors.New("pixmat: element type mismatch")
)

// Matrix is a 2D, 1-4 channel numeric array backed by a Buffer. Channels
// are interleaved: element (x, y, c) lives at index (y*cols+x)*channels+c
// of the active view. The active view is selected by the element depth;
// the accessor matching the depth returns it, the others panic.
//
// A Matrix may own a Buffer it allocated or wrap one supplied at
// construction. Resize keeps the current Buffer whenever it is large
// enough, so repeated per-frame resizes to the same or smaller
// dimensions never allocate.
type Matrix struct {
	cols     int
	rows     int
	channels int
	depth    Depth
	buf      *Buffer
}

// NewMatrix constructs a Matrix with the given dimensions and type code
// and allocates its backing Buffer.
func NewMatrix(cols, rows int, t Type) (*Matrix, error) {
	d, ch, err := t.components()
	if err != nil {
		return nil, err
	}
	m := &Matrix{cols: cols, rows: rows, channels: ch, depth: d}
	m.Alloc()
	return m, nil
}

// NewMatrixBuffer constructs a Matrix bound to an existing Buffer. No
// allocation occurs. The buffer must hold at least
// cols*rows*channels*elemSize bytes.
func NewMatrixBuffer(cols, rows int, t Type, buf *Buffer) (*Matrix, error) {
	d, ch, err := t.components()
	if err != nil {
		return nil, err
	}
	need := cols * rows * ch * d.Size()
	if buf.Size() < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, buf.Size(), need)
	}
	return &Matrix{cols: cols, rows: rows, channels: ch, depth: d, buf: buf}, nil
}

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Channels returns the interleaved channel count.
func (m *Matrix) Channels() int { return m.channels }

// Depth returns the element depth.
func (m *Matrix) Depth() Depth { return m.depth }

// Type returns the combined type code.
func (m *Matrix) Type() Type { return MakeType(m.depth, m.channels) }

// Len returns the logical element count, cols*rows*channels.
func (m *Matrix) Len() int { return m.cols * m.rows * m.channels }

// Buffer returns the backing Buffer.
func (m *Matrix) Buffer() *Buffer { return m.buf }

// Alloc replaces the backing Buffer with a fresh one sized to the
// current dimensions. It always reallocates; prefer Resize to reuse the
// existing Buffer across dimension changes.
func (m *Matrix) Alloc() {
	m.buf = NewBuffer(m.Len() * m.depth.Size())
}

// Resize updates the logical dimensions, and optionally the channel
// count. The backing Buffer is reallocated only when the new dimensions
// need more bytes than it holds; shrinking or equal-size resizes keep
// the Buffer and cost nothing. This is the per-frame reuse contract of
// the whole package.
//
// A channel count outside [1, 4] panics: dimensions are under program
// control, not input data.
func (m *Matrix) Resize(cols, rows int, channels ...int) {
	ch := m.channels
	if len(channels) > 0 {
		ch = channels[0]
		if ch < 1 || ch > 4 {
			panic(fmt.Sprintf("pixmat: Resize with %d channels", ch))
		}
	}
	m.cols, m.rows, m.channels = cols, rows, ch
	if m.Len()*m.depth.Size() > m.buf.Size() {
		m.Alloc()
	}
}

// CopyTo copies this matrix's cols*rows*channels elements into dst's
// view, index for index. The destination's logical dimensions are left
// untouched; only its view capacity matters. Fails if the element
// depths differ or dst's view holds fewer elements.
func (m *Matrix) CopyTo(dst *Matrix) error {
	if dst.depth != m.depth {
		return fmt.Errorf("%w: %v vs %v", ErrTypeMismatch, m.depth, dst.depth)
	}
	n := m.Len()
	if dst.buf.Size()/m.depth.Size() < n {
		return fmt.Errorf("%w: destination holds %d elements, need %d",
			ErrShortBuffer, dst.buf.Size()/m.depth.Size(), n)
	}
	switch m.depth {
	case U8:
		copy(dst.buf.Bytes()[:n], m.buf.Bytes()[:n])
	case S32:
		copy(dst.buf.Int32s()[:n], m.buf.Int32s()[:n])
	case F32:
		copy(dst.buf.Float32s()[:n], m.buf.Float32s()[:n])
	case S64:
		copy(dst.buf.Int64s()[:n], m.buf.Int64s()[:n])
	case F64:
		copy(dst.buf.Float64s()[:n], m.buf.Float64s()[:n])
	}
	return nil
}

// viewPanic reports an accessor used against the wrong element depth.
func (m *Matrix) viewPanic(want Depth) {
	panic(fmt.Sprintf("pixmat: %v view requested on %v matrix", want, m.depth))
}

// Pix returns the active view of a U8 matrix, truncated to Len
// elements. Panics if the matrix is not U8.
func (m *Matrix) Pix() []uint8 {
	if m.depth != U8 {
		m.viewPanic(U8)
	}
	return m.buf.Bytes()[:m.Len()]
}

// Int32s returns the active view of an S32 matrix.
func (m *Matrix) Int32s() []int32 {
	if m.depth != S32 {
		m.viewPanic(S32)
	}
	return m.buf.Int32s()[:m.Len()]
}

// Float32s returns the active view of an F32 matrix.
func (m *Matrix) Float32s() []float32 {
	if m.depth != F32 {
		m.viewPanic(F32)
	}
	return m.buf.Float32s()[:m.Len()]
}

// Int64s returns the active view of an S64 matrix. The cells occupy the
// same 8-byte slots the Float64s view would; only the interpretation
// differs.
func (m *Matrix) Int64s() []int64 {
	if m.depth != S64 {
		m.viewPanic(S64)
	}
	return m.buf.Int64s()[:m.Len()]
}

// Float64s returns the active view of an F64 matrix.
func (m *Matrix) Float64s() []float64 {
	if m.depth != F64 {
		m.viewPanic(F64)
	}
	return m.buf.Float64s()[:m.Len()]
}
