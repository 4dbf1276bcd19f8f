// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "sync"

// This file implements the per-block predictor context of RFC 6386 chapter
// 11: the above row, left column, above-left pixel, and above-right row a
// block needs to run any intra mode, plus the synthetic 127/129 boundary
// substitutes used when a neighbor does not exist.

// row127 and col129 are the process-wide synthetic boundary samples of
// §4.4 and §9. They never mutate once built, so sync.OnceValue's trivial
// publication is all the thread-safety this needs.
var (
	row127 = sync.OnceValue(func() [16]uint8 {
		var r [16]uint8
		for i := range r {
			r[i] = 127
		}
		return r
	})
	col129 = sync.OnceValue(func() [16]uint8 {
		var c [16]uint8
		for i := range c {
			c[i] = 129
		}
		return c
	})
)

// Predictors is the snapshot a Block takes, at construction time, of which
// neighbors it has. What is actually snapshotted is the *topology*: for a
// present neighbor, Predictors holds a live reference into that neighbor's
// SubWindow (or, for the single above-left pixel, a live pointer), resolved
// only when above/left/east is queried — which by then is after the
// neighbor has been fully reconstructed by the decoder's raster-order walk
// (§5 Ownership: "Predictors hold references into already-constructed
// neighbor blocks"). For an absent neighbor, the substitute (127 or 129) is
// a true constant and is returned directly.
type Predictors struct {
	size int

	hasAbove, hasLeft bool
	useRow            bool // true iff the above-right neighbor exists

	above      *SubWindow[uint8] // neighbor's contents, read at row size-1; nil if absent
	left       *SubWindow[uint8] // neighbor's contents, read at column size-1; nil if absent
	aboveRight *SubWindow[uint8] // neighbor's contents, read at row size-1; nil unless useRow
	aboveLeft  *uint8            // neighbor's pixel at (size-1,size-1); nil if absent
}

// newPredictors builds the Predictors snapshot for a block of the given
// size from the Context its owning Grid2D<Block> produced.
func newPredictors(size int, ctx Context[Block]) *Predictors {
	p := &Predictors{
		size:     size,
		hasAbove: ctx.Above != nil,
		hasLeft:  ctx.Left != nil,
		useRow:   ctx.AboveRight != nil,
	}
	if ctx.Above != nil {
		p.above = ctx.Above.Contents
	}
	if ctx.Left != nil {
		p.left = ctx.Left.Contents
	}
	if ctx.AboveRight != nil {
		p.aboveRight = ctx.AboveRight.Contents
	}
	if ctx.AboveLeft != nil {
		p.aboveLeft = ctx.AboveLeft.Contents.At(size-1, size-1)
	}
	return p
}

// AboveRow returns above_row[i] for i in [0, size).
func (p *Predictors) AboveRow(i int) uint8 {
	if p.above != nil {
		return *p.above.At(i, p.size-1)
	}
	return row127()[i]
}

// LeftColumn returns left_column[i] for i in [0, size).
func (p *Predictors) LeftColumn(i int) uint8 {
	if p.left != nil {
		return *p.left.At(p.size-1, i)
	}
	return col129()[i]
}

// AboveLeftPixel returns the single above-left corner pixel, per the table
// in §4.4: the real neighbor pixel if above-left exists, else 129 if only
// above exists, else 127.
func (p *Predictors) AboveLeftPixel() uint8 {
	if p.aboveLeft != nil {
		return *p.aboveLeft
	}
	if p.hasAbove {
		return 129
	}
	return 127
}

// aboveRightAt returns above_right(k) for k in [0, size): the above-right
// neighbor's bottom row if it exists, else the above neighbor's
// bottom-right pixel, else 127.
func (p *Predictors) aboveRightAt(k int) uint8 {
	if p.useRow {
		return *p.aboveRight.At(k, p.size-1)
	}
	if p.above != nil {
		return *p.above.At(p.size-1, p.size-1)
	}
	return 127
}

// Above returns above(i) for i in [-1, 2*size), per §4.4.
func (p *Predictors) Above(i int) uint8 {
	switch {
	case i == -1:
		return p.AboveLeftPixel()
	case i < p.size:
		return p.AboveRow(i)
	default:
		return p.aboveRightAt(i - p.size)
	}
}

// Left returns left(i) for i in [-1, size), per §4.4.
func (p *Predictors) Left(i int) uint8 {
	if i == -1 {
		return p.AboveLeftPixel()
	}
	return p.LeftColumn(i)
}

// East returns east(k) for k in [0, 2*size], the L-shaped neighbor strip
// the diagonal 4x4 modes walk: four below-left samples, the corner, then
// up across the top. Only ever invoked for 4x4 blocks (§4.5); the formula
// is reproduced exactly as the reference decoder states it, with its
// literal 3/4/5 offsets (those are not scaled by size — this helper is not
// meaningful at any size other than 4).
func (p *Predictors) East(k int) uint8 {
	if k <= 4 {
		return p.Left(3 - k)
	}
	return p.Above(k - 5)
}

// HasAbove reports whether this block's above neighbor is in range.
func (p *Predictors) HasAbove() bool { return p.hasAbove }

// HasLeft reports whether this block's left neighbor is in range.
func (p *Predictors) HasLeft() bool { return p.hasLeft }

// sumAboveRow returns sum(above_row).
func (p *Predictors) sumAboveRow() int {
	sum := 0
	for i := 0; i < p.size; i++ {
		sum += int(p.AboveRow(i))
	}
	return sum
}

// sumLeftColumn returns sum(left_column).
func (p *Predictors) sumLeftColumn() int {
	sum := 0
	for i := 0; i < p.size; i++ {
		sum += int(p.LeftColumn(i))
	}
	return sum
}
