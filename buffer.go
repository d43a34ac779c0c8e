package pixmat

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrUnaligned is returned when a wrapped region cannot back the typed
// views: it is not 8-byte aligned or its length is not a multiple of 8.
var ErrUnaligned = errors.New("pixmat: region not 8-byte aligned")

// Buffer owns one contiguous byte region, aligned to an 8-byte boundary
// and sized to a multiple of 8 bytes. The same region is exposed through
// typed views (bytes, int32, float32, int64, float64); all views alias,
// so a write through one is visible through the others at the
// corresponding byte offsets.
//
// A Buffer never changes size after construction. Growing is modeled as
// constructing a new Buffer and rebinding.
type Buffer struct {
	size int
	data []byte
}

// align8 rounds n up to the next multiple of 8.
func align8(n int) int {
	return (n + 7) &^ 7
}

// NewBuffer allocates a Buffer of at least n bytes. The capacity is n
// rounded up to the next multiple of 8. The region is backed by a
// uint64 slice, so 8-byte alignment is guaranteed by the runtime.
func NewBuffer(n int) *Buffer {
	size := align8(n)
	if size == 0 {
		return &Buffer{}
	}
	words := make([]uint64, size/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	return &Buffer{size: size, data: data}
}

// NewBufferFrom wraps an externally owned region without allocating.
// The region must be 8-byte aligned and a multiple of 8 bytes long so
// that every typed view stays in bounds. The caller keeps ownership;
// the region must outlive the Buffer.
func NewBufferFrom(data []byte) (*Buffer, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 8", ErrUnaligned, len(data))
	}
	if len(data) > 0 && uintptr(unsafe.Pointer(&data[0]))%8 != 0 {
		return nil, fmt.Errorf("%w: base address %#x", ErrUnaligned, uintptr(unsafe.Pointer(&data[0])))
	}
	return &Buffer{size: len(data), data: data[:len(data):len(data)]}, nil
}

// Size returns the capacity in bytes. Always a multiple of 8.
func (b *Buffer) Size() int {
	return b.size
}

// Bytes returns the byte view over the whole region.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Int32s returns the 32-bit signed integer view over the whole region.
func (b *Buffer) Int32s() []int32 {
	if b.size == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&b.data[0])), b.size/4)
}

// Float32s returns the 32-bit float view over the whole region.
func (b *Buffer) Float32s() []float32 {
	if b.size == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b.data[0])), b.size/4)
}

// Int64s returns the 64-bit signed integer view over the whole region.
func (b *Buffer) Int64s() []int64 {
	if b.size == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&b.data[0])), b.size/8)
}

// Float64s returns the 64-bit float view over the whole region.
func (b *Buffer) Float64s() []float64 {
	if b.size == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b.data[0])), b.size/8)
}
