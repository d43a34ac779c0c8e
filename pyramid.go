package pixmat

import (
	"errors"
	"fmt"
)

// ErrPyramidLevels is returned by Build on a pyramid with fewer than
// two levels: the first downsampling step always targets level 1.
var ErrPyramidLevels = errors.New("pixmat: pyramid needs at least 2 levels")

// DownsampleFunc reduces src's spatial resolution into dst, whose
// dimensions are already set. Downsample2x is the provided
// implementation; any function with matching semantics can be injected.
type DownsampleFunc func(src, dst *Matrix) error

// Pyramid is an ordered sequence of Matrix levels, each nominally half
// the width and height of the previous one. It sequences calls to an
// injected DownsampleFunc; it performs no filtering itself.
type Pyramid struct {
	levels []*Matrix
}

// NewPyramid constructs a Pyramid with the given number of levels. The
// level matrices are nil until Alloc.
func NewPyramid(levels int) *Pyramid {
	return &Pyramid{levels: make([]*Matrix, levels)}
}

// Levels returns the level count.
func (p *Pyramid) Levels() int { return len(p.levels) }

// Level returns the matrix at level i.
func (p *Pyramid) Level(i int) *Matrix { return p.levels[i] }

// Alloc constructs every level's Matrix. Level i gets dimensions
// (startW>>i, startH>>i); the right shift floors, so small bases
// produce degenerate (possibly zero-sized) coarse levels. That is
// accepted, not an error.
func (p *Pyramid) Alloc(startW, startH int, t Type) error {
	for i := range p.levels {
		m, err := NewMatrix(startW>>i, startH>>i, t)
		if err != nil {
			return err
		}
		p.levels[i] = m
	}
	return nil
}

// Build populates the levels by repeated downsampling: fn(input,
// level 1), then fn(level i-1, level i) for each coarser level. When
// skipFirst is true, level 0 is left untouched on the convention that
// it already holds the full-resolution frame; otherwise input is copied
// into it first.
func (p *Pyramid) Build(input *Matrix, fn DownsampleFunc, skipFirst bool) error {
	if len(p.levels) < 2 {
		return ErrPyramidLevels
	}
	if !skipFirst {
		if err := input.CopyTo(p.levels[0]); err != nil {
			return fmt.Errorf("pixmat: copying level 0: %w", err)
		}
	}
	if err := fn(input, p.levels[1]); err != nil {
		return fmt.Errorf("pixmat: downsampling level 1: %w", err)
	}
	for i := 2; i < len(p.levels); i++ {
		if err := fn(p.levels[i-1], p.levels[i]); err != nil {
			return fmt.Errorf("pixmat: downsampling level %d: %w", i, err)
		}
	}
	return nil
}
