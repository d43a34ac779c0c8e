package pixmat

import (
	"errors"
	"fmt"
)

// ErrBadType is returned when a combined type code does not decode to a
// known element depth and a channel count in [1, 4].
var ErrBadType = errors.New("pixmat: unknown type code")

// Depth identifies the numeric representation of one matrix cell.
type Depth uint8

// Element depths. Each value is a single bit so that depths compose with
// a channel count into a Type code.
const (
	U8  Depth = 0x01 // 8-bit unsigned
	S32 Depth = 0x02 // 32-bit signed integer
	F32 Depth = 0x04 // 32-bit float
	S64 Depth = 0x08 // 64-bit signed integer
	F64 Depth = 0x10 // 64-bit float
)

// Size returns the width of one element in bytes, or 0 for an unknown depth.
func (d Depth) Size() int {
	switch d {
	case U8:
		return 1
	case S32, F32:
		return 4
	case S64, F64:
		return 8
	}
	return 0
}

func (d Depth) String() string {
	switch d {
	case U8:
		return "u8"
	case S32:
		return "s32"
	case F32:
		return "f32"
	case S64:
		return "s64"
	case F64:
		return "f64"
	}
	return fmt.Sprintf("depth(0x%02x)", uint8(d))
}

// Type is a combined element type and channel count code. The high byte
// holds the Depth bit, the low byte the channel count (1-4).
type Type uint16

// Predefined type codes for every depth and channel count.
const (
	U8C1 Type = Type(U8)<<8 | 1
	U8C2 Type = Type(U8)<<8 | 2
	U8C3 Type = Type(U8)<<8 | 3
	U8C4 Type = Type(U8)<<8 | 4

	S32C1 Type = Type(S32)<<8 | 1
	S32C2 Type = Type(S32)<<8 | 2
	S32C3 Type = Type(S32)<<8 | 3
	S32C4 Type = Type(S32)<<8 | 4

	F32C1 Type = Type(F32)<<8 | 1
	F32C2 Type = Type(F32)<<8 | 2
	F32C3 Type = Type(F32)<<8 | 3
	F32C4 Type = Type(F32)<<8 | 4

	S64C1 Type = Type(S64)<<8 | 1
	S64C2 Type = Type(S64)<<8 | 2
	S64C3 Type = Type(S64)<<8 | 3
	S64C4 Type = Type(S64)<<8 | 4

	F64C1 Type = Type(F64)<<8 | 1
	F64C2 Type = Type(F64)<<8 | 2
	F64C3 Type = Type(F64)<<8 | 3
	F64C4 Type = Type(F64)<<8 | 4
)

// MakeType composes a depth and a channel count into a Type code.
func MakeType(d Depth, channels int) Type {
	return Type(d)<<8 | Type(channels&0xff)
}

// components decodes a Type code into its depth and channel count.
func (t Type) components() (Depth, int, error) {
	d := Depth(t >> 8)
	ch := int(t & 0xff)
	if d.Size() == 0 {
		return 0, 0, fmt.Errorf("%w: depth 0x%02x", ErrBadType, uint8(d))
	}
	if ch < 1 || ch > 4 {
		return 0, 0, fmt.Errorf("%w: %d channels", ErrBadType, ch)
	}
	return d, ch, nil
}

func (t Type) String() string {
	d, ch, err := t.components()
	if err != nil {
		return fmt.Sprintf("type(0x%04x)", uint16(t))
	}
	return fmt.Sprintf("%vc%d", d, ch)
}
